package ampfilter

import "regexp"

// filterableRoutes match documentation paths whose content differs per
// format. An optional host, with or without a scheme, and a language
// segment may precede them.
var filterableRoutes = []*regexp.Regexp{
	regexp.MustCompile(`^(?:(?:https?:)?//[^/]+)?(?:/[a-z]{2}(?:_[a-z]{2})?)?/documentation/guides-and-tutorials(?:[/#]|$)`),
	regexp.MustCompile(`^(?:(?:https?:)?//[^/]+)?(?:/[a-z]{2}(?:_[a-z]{2})?)?/documentation/components(?:[/#]|$)`),
	regexp.MustCompile(`^(?:(?:https?:)?//[^/]+)?(?:/[a-z]{2}(?:_[a-z]{2})?)?/documentation/examples(?:[/#]|$)`),
}

// IsFilterableRoute reports whether a link to path should carry a format
// query parameter.
func IsFilterableRoute(path string) bool {
	for _, re := range filterableRoutes {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
