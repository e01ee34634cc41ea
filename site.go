package jobscout

import "strings"

// Site identifies a supported job board.
type Site string

// Supported job boards.
const (
	SiteDOU         Site = "dou"
	SiteDOUFirstJob Site = "dou-first-job"
	SiteWorkUA      Site = "workua"
	SiteDjinni      Site = "djinni"
)

var siteBaseURLs = map[Site]string{
	SiteDOU:         "https://jobs.dou.ua/vacancies/",
	SiteDOUFirstJob: "https://jobs.dou.ua/first-job/",
	SiteWorkUA:      "https://www.work.ua/",
	SiteDjinni:      "https://djinni.co/jobs/",
}

// Sites returns all supported sites in a stable order.
func Sites() []Site {
	return []Site{SiteDOU, SiteDOUFirstJob, SiteWorkUA, SiteDjinni}
}

// ParseSite returns the site with the given name.
// Returns EINVALID if the name does not identify a supported site.
func ParseSite(name string) (Site, error) {
	s := Site(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", Errorf(EINVALID, "unknown site %q", name)
	}
	return s, nil
}

// Valid reports whether s is a supported site.
func (s Site) Valid() bool {
	_, ok := siteBaseURLs[s]
	return ok
}

// BaseURL returns the URL that search URLs for the site are built from.
// Returns an empty string for unsupported sites.
func (s Site) BaseURL() string {
	return siteBaseURLs[s]
}

// String returns the site name.
func (s Site) String() string {
	return string(s)
}
