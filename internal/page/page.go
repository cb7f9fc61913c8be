// Package page wraps an HTML document and the two mutations the
// histogram renderer performs on it: keeping exactly one heading above
// each chart container, and keeping exactly one engine-invocation script
// after it.
package page

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// scriptMarker tags the per-chart script elements so repeated renders
// replace them instead of stacking duplicates.
const scriptMarker = "data-logitscope-chart"

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML page. Partial fragments are tolerated; the parser
// completes them into a full document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{root: root}, nil
}

// Container returns the element with the given id, or nil.
func (d *Document) Container(id string) *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

// Body returns the document's body element.
func (d *Document) Body() *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "body"
	})
}

// EnsureContainer returns the container with the given id, appending a
// div to the body when it does not exist yet.
func (d *Document) EnsureContainer(id string) (*html.Node, error) {
	if c := d.Container(id); c != nil {
		return c, nil
	}
	body := d.Body()
	if body == nil {
		return nil, fmt.Errorf("page has no body element")
	}
	div := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	body.AppendChild(div)
	return div, nil
}

// SetHeading keeps exactly one heading element immediately before the
// container: when the container's preceding element sibling is already a
// heading its text is replaced, otherwise a new h3 is inserted before
// the container. Repeated calls never accumulate headings.
func (d *Document) SetHeading(containerID, text string) error {
	c := d.Container(containerID)
	if c == nil {
		return fmt.Errorf("container %q not found", containerID)
	}

	if prev := prevElementSibling(c); prev != nil && headingTags[prev.Data] {
		setText(prev, text)
		return nil
	}

	h := &html.Node{Type: html.ElementNode, DataAtom: atom.H3, Data: "h3"}
	h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	c.Parent.InsertBefore(h, c)
	return nil
}

// SetChartScript keeps exactly one script element per container holding
// the engine invocation, inserted right after the container on first
// render and rewritten in place afterwards.
func (d *Document) SetChartScript(containerID, js string) error {
	c := d.Container(containerID)
	if c == nil {
		return fmt.Errorf("container %q not found", containerID)
	}

	s := find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "script" && attr(n, scriptMarker) == containerID
	})
	if s != nil {
		setText(s, js)
		return nil
	}

	s = &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Script,
		Data:     "script",
		Attr:     []html.Attribute{{Key: scriptMarker, Val: containerID}},
	}
	s.AppendChild(&html.Node{Type: html.TextNode, Data: js})
	c.Parent.InsertBefore(s, c.NextSibling)
	return nil
}

// Render serializes the document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := find(c, pred); m != nil {
			return m
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// prevElementSibling skips the whitespace text nodes the parser keeps
// between elements.
func prevElementSibling(n *html.Node) *html.Node {
	for p := n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

func setText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
