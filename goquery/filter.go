package goquery

import "github.com/fwojciec/ampfilter"

var _ ampfilter.PageFilter = (*Filter)(nil)

// Filter implements ampfilter.PageFilter using FilteredPage.
// Filter is safe for concurrent use; every call parses its own tree.
type Filter struct {
	opts []Option
}

// NewFilter creates a new Filter. The options are applied to every page.
func NewFilter(opts ...Option) *Filter {
	return &Filter{opts: opts}
}

// Filter returns html reduced to the content relevant for format.
func (f *Filter) Filter(html string, format ampfilter.Format, force bool) (string, error) {
	page, err := NewFilteredPage(format, html, force, f.opts...)
	if err != nil {
		return "", err
	}
	return page.Content()
}
