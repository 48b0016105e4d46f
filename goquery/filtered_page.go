package goquery

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ampfilter"
	"golang.org/x/net/html"
)

// Markup conventions shared with the page renderer.
const (
	navLevel1Class      = "nav-level-1"
	navLevel2Class      = "nav-level-2"
	navDividerClass     = "nav-divider"
	toggleSelectedClass = "ap-m-format-toggle-selected"
	toggleListClass     = "ap-m-format-toggle-list"
	filterBubbleClass   = "ap-m-filter-bubble"
	teaserClass         = "ap-m-teaser"
	categoryAttr        = "data-category"
)

// Option configures a FilteredPage.
type Option func(*FilteredPage)

// WithLogger sets the logger used for diagnostics during filtering.
func WithLogger(logger *slog.Logger) Option {
	return func(p *FilteredPage) {
		p.logger = logger
	}
}

// FilteredPage is a rendered page reduced to the content of a single format.
// The rewrite happens in NewFilteredPage; Content serializes the result.
// A FilteredPage owns its document tree and is not safe for concurrent use.
type FilteredPage struct {
	format ampfilter.Format
	doc    *goquery.Document
	logger *slog.Logger
}

// NewFilteredPage parses content and filters it down to format.
//
// Returns EINVALID if format is unknown and EUNAVAILABLE if the page does not
// list format in its data-available-formats attribute and force is false.
func NewFilteredPage(format ampfilter.Format, content string, force bool, opts ...Option) (*FilteredPage, error) {
	if !format.Valid() {
		return nil, ampfilter.Errorf(ampfilter.EINVALID, "unknown format %q", format)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, ampfilter.Errorf(ampfilter.EINVALID, "failed to parse HTML: %v", err)
	}

	p := &FilteredPage{
		format: format,
		doc:    doc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if !force && !declaresFormat(doc, format) {
		return nil, ampfilter.Errorf(ampfilter.EUNAVAILABLE, "page is not available for format %q", format)
	}

	// Later passes rely on the tree already being pruned.
	p.removeHiddenElements()
	p.rewriteURLs()
	p.setActiveFormatToggle()
	p.removeStaleFilterClasses()
	p.removeEmptyFilterBubbles()

	p.doc.Find("body").AddClass(format.FilterClass())

	for _, n := range p.doc.Nodes {
		fixSVGNamespaces(n)
	}

	return p, nil
}

// Format returns the format the page was filtered to.
func (p *FilteredPage) Format() ampfilter.Format {
	return p.format
}

// Content serializes the filtered document.
func (p *FilteredPage) Content() (string, error) {
	var buf bytes.Buffer
	for _, n := range p.doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
	}
	return buf.String(), nil
}

// removeHiddenElements drops content of other formats and then the
// navigation scaffolding that pruning left empty.
func (p *FilteredPage) removeHiddenElements() {
	active := "." + p.format.FilterClass()
	for _, f := range ampfilter.Formats {
		if f == p.format {
			continue
		}
		p.doc.Find("." + f.FilterClass()).Not(active).Remove()
	}

	p.doc.Find("." + navLevel2Class).Each(func(_ int, list *goquery.Selection) {
		if list.Children().Length() == 0 {
			list.Parent().Remove()
		}
	})

	p.doc.Find("." + navLevel1Class).Each(func(_ int, item *goquery.Selection) {
		if !item.Is("a") && item.Find("a").Length() == 0 {
			item.Remove()
		}
	})

	// Removing a leading or trailing divider can expose another one.
	for {
		stale := p.doc.Find("." + navDividerClass).FilterFunction(func(_ int, d *goquery.Selection) bool {
			return d.Prev().Length() == 0 || d.Next().Length() == 0
		})
		if stale.Length() == 0 {
			return
		}
		stale.Remove()
	}
}

// rewriteURLs adds the format query parameter to documentation links.
// Links that already carry a query string are left alone.
func (p *FilteredPage) rewriteURLs() {
	p.doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.Contains(href, "?") || !ampfilter.IsFilterableRoute(href) {
			return
		}
		a.SetAttr("href", withFormatQuery(href, p.format))
	})
}

// withFormatQuery inserts the format query before any fragment.
func withFormatQuery(href string, format ampfilter.Format) string {
	path, fragment, hasFragment := strings.Cut(href, "#")
	out := path + "?format=" + string(format)
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

// setActiveFormatToggle relabels the header toggle, which is rendered for
// the default format, and drops the toggle link to the active format.
func (p *FilteredPage) setActiveFormatToggle() {
	toggle := p.doc.Find("." + toggleSelectedClass)
	if toggle.Length() == 0 {
		p.logger.Warn("no active format toggle found", "format", string(p.format))
		return
	}

	for _, n := range toggle.Nodes {
		replaceText(n, string(ampfilter.DefaultFormat), string(p.format))
	}
	toggle.RemoveClass(ampfilter.DefaultFormat.ToggleClass()).AddClass(p.format.ToggleClass())

	p.doc.Find("." + toggleListClass + " ." + p.format.ToggleClass()).
		Not("." + toggleSelectedClass).
		Remove()
}

// replaceText replaces from with to in every text node below n.
func replaceText(n *html.Node, from, to string) {
	if n.Type == html.TextNode {
		n.Data = strings.ReplaceAll(n.Data, from, to)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		replaceText(c, from, to)
	}
}

func (p *FilteredPage) removeStaleFilterClasses() {
	classes := ampfilter.FilterClasses()
	p.doc.Find("." + strings.Join(classes, ", .")).RemoveClass(classes...)
}

// removeEmptyFilterBubbles drops category bubbles whose category no longer
// has a teaser on the page.
func (p *FilteredPage) removeEmptyFilterBubbles() {
	categories := make(map[string]struct{})
	p.doc.Find("." + teaserClass).Each(func(_ int, teaser *goquery.Selection) {
		if category, ok := teaser.Attr(categoryAttr); ok {
			categories[category] = struct{}{}
		}
	})

	p.doc.Find("." + filterBubbleClass).Each(func(_ int, bubble *goquery.Selection) {
		category, ok := bubble.Attr(categoryAttr)
		if !ok {
			return
		}
		if _, found := categories[category]; !found {
			bubble.Remove()
		}
	})
}
