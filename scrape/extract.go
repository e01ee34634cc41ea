package scrape

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/jobscout"
)

// text returns the cleaned text of the first descendant matching selector.
// A match with no text counts as missing.
func text(el jobscout.Element, selector string) (string, bool) {
	found, ok := el.Find(selector)
	if !ok {
		return "", false
	}
	t := jobscout.CleanText(found.Text())
	return t, t != ""
}

// textOr is text with a default for missing values.
func textOr(el jobscout.Element, selector, def string) string {
	if t, ok := text(el, selector); ok {
		return t
	}
	return def
}

// resolveLink resolves href against the site's base URL.
func resolveLink(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := b.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String(), true
}

// titleAndLink reads the anchor that carries both the listing title and
// its link.
func titleAndLink(el jobscout.Element, selector, base string) (title, link, reason string) {
	anchor, ok := el.Find(selector)
	if !ok {
		return "", "", "title not found"
	}
	title = jobscout.CleanText(anchor.Text())
	if title == "" {
		return "", "", "title not found"
	}
	href, _ := anchor.Attr("href")
	link, ok = resolveLink(base, href)
	if !ok {
		return "", "", "link not found"
	}
	return title, link, ""
}

// description returns the listing description as Markdown when a converter
// is configured, falling back to plain text. A missing description is empty.
func description(el jobscout.Element, selector string, conv jobscout.Converter) string {
	found, ok := el.Find(selector)
	if !ok {
		return ""
	}
	plain := jobscout.CleanText(found.Text())
	if conv == nil || plain == "" {
		return plain
	}
	html, err := found.HTML()
	if err != nil {
		return plain
	}
	md, err := conv.Convert(html)
	if err != nil || md == "" {
		return plain
	}
	return md
}

// localDate reads a "<day> <month>" date, or returns the sentinel.
func localDate(el jobscout.Element, selector string, now time.Time) string {
	t, ok := text(el, selector)
	if !ok {
		return jobscout.NotSpecified
	}
	if d, ok := jobscout.NormalizeLocalDate(t, now); ok {
		return d
	}
	return jobscout.NotSpecified
}
