// Package htmltomarkdown converts listing description fragments to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/jobscout"
)

var _ jobscout.Converter = (*Converter)(nil)

// Converter turns the HTML of a job description into Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with CommonMark and table support.
func NewConverter() *Converter {
	return &Converter{conv: converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)}
}

// Convert returns the Markdown form of html with surrounding whitespace
// removed. Blank input is EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", jobscout.Errorf(jobscout.EINVALID, "empty HTML input")
	}
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
