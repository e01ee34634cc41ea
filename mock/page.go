package mock

import (
	"context"

	"github.com/fwojciec/jobscout"
)

// Compile-time interface verification.
var (
	_ jobscout.Page    = (*Page)(nil)
	_ jobscout.Element = (*Element)(nil)
)

// Page is a mock implementation of jobscout.Page.
type Page struct {
	NavigateFn func(ctx context.Context, url string) error
	ElementsFn func(selector string) ([]jobscout.Element, error)
	CloseFn    func() error
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) Elements(selector string) ([]jobscout.Element, error) {
	return p.ElementsFn(selector)
}

func (p *Page) Close() error {
	return p.CloseFn()
}

// Element is a mock implementation of jobscout.Element.
type Element struct {
	FindFn    func(selector string) (jobscout.Element, bool)
	FindAllFn func(selector string) []jobscout.Element
	TextFn    func() string
	HTMLFn    func() (string, error)
	AttrFn    func(name string) (string, bool)
}

func (e *Element) Find(selector string) (jobscout.Element, bool) {
	return e.FindFn(selector)
}

func (e *Element) FindAll(selector string) []jobscout.Element {
	return e.FindAllFn(selector)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) HTML() (string, error) {
	return e.HTMLFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}
