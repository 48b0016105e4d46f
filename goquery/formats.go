package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ampfilter"
)

// availableFormatsAttr lists, on the root element, the formats a page has
// content for.
const availableFormatsAttr = "data-available-formats"

// AvailableFormats returns the formats a rendered page declares on its root
// element, in canonical order. Unknown names are ignored and a page without
// the attribute is available for no format.
func AvailableFormats(html string) ([]ampfilter.Format, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ampfilter.Errorf(ampfilter.EINVALID, "failed to parse HTML: %v", err)
	}
	return declaredFormats(doc), nil
}

// declaredFormats reads the availability list. Names may be separated by
// whitespace or commas.
func declaredFormats(doc *goquery.Document) []ampfilter.Format {
	value, exists := doc.Find("html").First().Attr(availableFormatsAttr)
	if !exists {
		return nil
	}

	declared := make(map[ampfilter.Format]bool)
	for _, name := range strings.FieldsFunc(strings.ToLower(value), isListSeparator) {
		declared[ampfilter.Format(name)] = true
	}

	var formats []ampfilter.Format
	for _, f := range ampfilter.Formats {
		if declared[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

func declaresFormat(doc *goquery.Document, format ampfilter.Format) bool {
	for _, f := range declaredFormats(doc) {
		if f == format {
			return true
		}
	}
	return false
}

func isListSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}
