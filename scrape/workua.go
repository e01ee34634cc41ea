package scrape

import (
	"strings"
	"time"

	"github.com/fwojciec/jobscout"
)

var _ Strategy = (*WorkUA)(nil)

// WorkUA reads work.ua result pages.
//
// Work.ua prints the company and the salary in identically styled spans,
// so each span is classified by whether it mentions a currency.
type WorkUA struct {
	opts Options
}

// NewWorkUA returns a strategy for work.ua.
func NewWorkUA(opts Options) *WorkUA {
	return &WorkUA{opts: opts}
}

func (w *WorkUA) Site() jobscout.Site {
	return jobscout.SiteWorkUA
}

// BuildURL returns https://www.work.ua/jobs-<category>/.
func (w *WorkUA) BuildURL(category string) string {
	return jobscout.SiteWorkUA.BaseURL() + "jobs-" + EncodeCategory(category) + "/"
}

func (w *WorkUA) ListElements(page jobscout.Page) ([]jobscout.Element, error) {
	return page.Elements("div.card.job-link")
}

func (w *WorkUA) Extract(el jobscout.Element) Result {
	title, link, reason := titleAndLink(el, "h2 a", jobscout.SiteWorkUA.BaseURL())
	if reason != "" {
		return Skip(reason)
	}

	var company, salary string
	for _, span := range el.FindAll("span.strong-600") {
		t := jobscout.CleanText(span.Text())
		switch {
		case t == "":
		case jobscout.ContainsCurrency(t):
			if salary == "" {
				salary = t
			}
		case company == "":
			company = t
		}
	}
	if company == "" {
		return Skip("company not found")
	}
	if salary == "" {
		salary = jobscout.NotSpecified
	}

	return Found(&jobscout.Job{
		Title:       title,
		Description: description(el, "p.ellipsis", w.opts.Converter),
		Company:     company,
		Link:        link,
		Location:    textOr(el, "div.mt-xs span:not(.strong-600):not(.mr-xs)", jobscout.NotSpecified),
		Salary:      salary,
		DatePosted:  w.datePosted(el),
	})
}

// datePosted prefers the machine-readable datetime attribute and falls
// back to the printed date.
func (w *WorkUA) datePosted(el jobscout.Element) string {
	t, ok := el.Find("time")
	if !ok {
		return jobscout.NotSpecified
	}
	if dt, ok := t.Attr("datetime"); ok {
		dt = strings.TrimSpace(dt)
		if len(dt) >= len(time.DateOnly) {
			if d, err := time.Parse(time.DateOnly, dt[:len(time.DateOnly)]); err == nil {
				return d.Format(time.DateOnly)
			}
		}
	}
	if d, ok := jobscout.NormalizeLocalDate(t.Text(), w.opts.now()); ok {
		return d
	}
	return jobscout.NotSpecified
}
