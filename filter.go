package ampfilter

// PageFilter produces the variant of a rendered page for a single format.
type PageFilter interface {
	// Filter returns html reduced to the content relevant for format.
	// Returns EUNAVAILABLE if the page does not declare format as available
	// and force is false.
	Filter(html string, format Format, force bool) (string, error)
}
