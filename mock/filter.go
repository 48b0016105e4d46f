package mock

import "github.com/fwojciec/ampfilter"

var _ ampfilter.PageFilter = (*PageFilter)(nil)

// PageFilter is a mock implementation of ampfilter.PageFilter.
type PageFilter struct {
	FilterFn func(html string, format ampfilter.Format, force bool) (string, error)
}

func (f *PageFilter) Filter(html string, format ampfilter.Format, force bool) (string, error) {
	return f.FilterFn(html, format, force)
}
