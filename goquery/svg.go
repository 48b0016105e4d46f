package goquery

import "golang.org/x/net/html"

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// fixSVGNamespaces restores xmlns:xlink declarations and xlink:href
// attributes on SVG elements below n. Renderers that drop attribute prefixes
// leave a bare xlink attribute holding either the namespace URI or the link
// target. The parser keeps correctly prefixed attributes, so only those
// artifacts change. A bare attribute is dropped when the element already
// carries the prefixed one.
func fixSVGNamespaces(n *html.Node) {
	if n.Type == html.ElementNode && n.Namespace == "svg" {
		n.Attr = fixXlinkAttrs(n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fixSVGNamespaces(c)
	}
}

func fixXlinkAttrs(attrs []html.Attribute) []html.Attribute {
	fixed := make([]html.Attribute, 0, len(attrs))
	seen := make(map[html.Attribute]bool, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" || a.Key != "xlink" {
			seen[html.Attribute{Namespace: a.Namespace, Key: a.Key}] = true
		}
	}

	for _, a := range attrs {
		if a.Namespace == "" && a.Key == "xlink" {
			a.Namespace, a.Key = "xlink", "href"
			if a.Val == xlinkNamespace {
				a.Namespace, a.Key = "xmlns", "xlink"
			}
			name := html.Attribute{Namespace: a.Namespace, Key: a.Key}
			if seen[name] {
				continue
			}
			seen[name] = true
		}
		fixed = append(fixed, a)
	}
	return fixed
}
