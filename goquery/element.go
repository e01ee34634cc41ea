package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscout"
)

var _ jobscout.Element = (*Element)(nil)

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

// wrap splits a selection into one Element per node, in document order.
func wrap(sel *goquery.Selection) []jobscout.Element {
	elements := make([]jobscout.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements
}

// Find returns the first descendant matching the selector.
func (e *Element) Find(selector string) (jobscout.Element, bool) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{sel: found}, true
}

// FindAll returns all descendants matching the selector.
func (e *Element) FindAll(selector string) []jobscout.Element {
	return wrap(e.sel.Find(selector))
}

// Text returns the combined text contents of the element.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML returns the inner HTML of the element.
func (e *Element) HTML() (string, error) {
	return e.sel.Html()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}
