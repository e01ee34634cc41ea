package scrape

import "github.com/fwojciec/jobscout"

var _ Strategy = (*Djinni)(nil)

// Djinni reads djinni.co keyword search results.
type Djinni struct {
	opts Options
}

// NewDjinni returns a strategy for djinni.co.
func NewDjinni(opts Options) *Djinni {
	return &Djinni{opts: opts}
}

func (d *Djinni) Site() jobscout.Site {
	return jobscout.SiteDjinni
}

func (d *Djinni) BuildURL(category string) string {
	return jobscout.SiteDjinni.BaseURL() + "?all_keywords=" + EncodeCategory(category)
}

func (d *Djinni) ListElements(page jobscout.Page) ([]jobscout.Element, error) {
	return page.Elements("li.job-item")
}

func (d *Djinni) Extract(el jobscout.Element) Result {
	title, link, reason := titleAndLink(el, "a.job-item__title-link", jobscout.SiteDjinni.BaseURL())
	if reason != "" {
		return Skip(reason)
	}
	company, ok := text(el, ".job-item__company")
	if !ok {
		return Skip("company not found")
	}
	return Found(&jobscout.Job{
		Title:       title,
		Description: description(el, "div.js-truncated-text", d.opts.Converter),
		Company:     company,
		Link:        link,
		Location:    textOr(el, "span.location-text", jobscout.NotSpecified),
		Salary:      textOr(el, "span.public-salary-item", jobscout.NotSpecified),
		DatePosted:  localDate(el, "span.job-item__date", d.opts.now()),
	})
}
