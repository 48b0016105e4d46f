package ampfilter

import "strings"

// Format is a target output variant of a documentation page.
type Format string

// Supported formats.
const (
	FormatWebsites Format = "websites"
	FormatStories  Format = "stories"
	FormatAds      Format = "ads"
	FormatEmail    Format = "email"
)

// DefaultFormat is the format rendered pages are authored for. Toggle markup
// in the header names it until a page is filtered.
const DefaultFormat = FormatWebsites

// Formats lists every supported format in canonical order.
var Formats = []Format{FormatWebsites, FormatStories, FormatAds, FormatEmail}

// ParseFormat converts a user supplied string into a Format.
// Returns EINVALID if the value does not name a supported format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", Errorf(EINVALID, "unknown format %q (want one of %s)", s, formatList())
	}
	return f, nil
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// FilterClass returns the CSS class marking content that belongs to f.
func (f Format) FilterClass() string {
	return "ap--" + string(f)
}

// ToggleClass returns the CSS class of the format toggle link pointing at f.
func (f Format) ToggleClass() string {
	return "ap-m-format-toggle-link-" + string(f)
}

// FilterClasses returns the filter classes of all supported formats.
func FilterClasses() []string {
	classes := make([]string, 0, len(Formats))
	for _, f := range Formats {
		classes = append(classes, f.FilterClass())
	}
	return classes
}

func formatList() string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
