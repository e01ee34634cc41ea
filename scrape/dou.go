package scrape

import "github.com/fwojciec/jobscout"

var _ Strategy = (*DOU)(nil)

// QueryFunc appends the search query for an encoded category to a base URL.
type QueryFunc func(base, encodedCategory string) string

// SearchQuery searches by free text.
func SearchQuery(base, encodedCategory string) string {
	return base + "?search=" + encodedCategory
}

// CategoryQuery selects a category listing.
func CategoryQuery(base, encodedCategory string) string {
	return base + "?category=" + encodedCategory
}

// DOU reads jobs.dou.ua result pages. The vacancy search and the first-job
// section share markup and differ only in how the category is queried.
type DOU struct {
	site  jobscout.Site
	query QueryFunc
	opts  Options
}

// NewDOU returns a strategy for the DOU vacancy search.
func NewDOU(opts Options) *DOU {
	return &DOU{site: jobscout.SiteDOU, query: SearchQuery, opts: opts}
}

// NewDOUFirstJob returns a strategy for the DOU first-job section.
func NewDOUFirstJob(opts Options) *DOU {
	return &DOU{site: jobscout.SiteDOUFirstJob, query: CategoryQuery, opts: opts}
}

func (d *DOU) Site() jobscout.Site {
	return d.site
}

func (d *DOU) BuildURL(category string) string {
	return d.query(d.site.BaseURL(), EncodeCategory(category))
}

func (d *DOU) ListElements(page jobscout.Page) ([]jobscout.Element, error) {
	return page.Elements("li.l-vacancy")
}

func (d *DOU) Extract(el jobscout.Element) Result {
	title, link, reason := titleAndLink(el, "a.vt", d.site.BaseURL())
	if reason != "" {
		return Skip(reason)
	}
	company, ok := text(el, "a.company")
	if !ok {
		return Skip("company not found")
	}
	return Found(&jobscout.Job{
		Title:       title,
		Description: description(el, "div.sh-info", d.opts.Converter),
		Company:     company,
		Link:        link,
		Location:    textOr(el, "span.cities", jobscout.NotSpecified),
		Salary:      textOr(el, "span.salary", jobscout.NotSpecified),
		DatePosted:  localDate(el, "div.date", d.opts.now()),
	})
}
