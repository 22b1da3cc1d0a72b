// Package types provides type definitions for structured data used throughout the outreach-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// PageType is a logical category of company web page.
type PageType string

// Known page types, in no particular order.
const (
	PageAbout   PageType = "about"
	PageCareers PageType = "careers"
	PageNews    PageType = "news"
	PageTeam    PageType = "team"
)

// AllPageTypes returns every known page type in default resolution order.
func AllPageTypes() []PageType {
	return []PageType{PageAbout, PageCareers, PageNews, PageTeam}
}

// IsValidPageType reports whether pt is one of the known page types.
func IsValidPageType(pt PageType) bool {
	switch pt {
	case PageAbout, PageCareers, PageNews, PageTeam:
		return true
	}
	return false
}

// MinPageTextLength is the minimum extracted text length for a page to count
// as successfully resolved. Shorter content is discarded and the page type
// is marked failed.
const MinPageTextLength = 200

// PageRecord holds the content of one successfully resolved company page.
type PageRecord struct {
	Type       PageType  `json:"type"`
	URL        string    `json:"url"`
	Title      string    `json:"title,omitempty"`
	HTML       string    `json:"-"` // retained in memory for extraction, not serialized
	Text       string    `json:"text"`
	TextLength int       `json:"text_length"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// PageStatus distinguishes a resolved page from an attempted-but-failed one.
// A page type absent from CompanyProfile.Results was never attempted.
type PageStatus string

// Page resolution outcomes.
const (
	PageResolved PageStatus = "resolved"
	PageFailed   PageStatus = "failed"
)

// PageResult is the tagged outcome of resolving one page type.
type PageResult struct {
	Type     PageType    `json:"type"`
	Status   PageStatus  `json:"status"`
	Page     *PageRecord `json:"page,omitempty"`   // set when Status == PageResolved
	Reason   string      `json:"reason,omitempty"` // set when Status == PageFailed
	Strategy string      `json:"strategy,omitempty"`
	Manual   bool        `json:"manual,omitempty"`
}

// ResolutionMeta summarizes how a company resolution went.
type ResolutionMeta struct {
	PagesAttempted  int        `json:"pages_attempted"`
	PagesSucceeded  int        `json:"pages_succeeded"`
	FailedPageTypes []PageType `json:"failed_page_types,omitempty"`
	ManualOverrides []PageType `json:"manual_overrides,omitempty"`
	// SuccessRate is PagesSucceeded / PagesAttempted in [0,1]; 0 when nothing
	// was attempted. Presentation layers format this as a percentage.
	SuccessRate float64   `json:"success_rate"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// CompanyProfile is the structured result of resolving one company.
// It is created once per resolution call, is read-only for callers, and never
// aliases state from other resolutions.
type CompanyProfile struct {
	CompanyURL  string                   `json:"company_url"`
	BaseDomain  string                   `json:"base_domain"`
	CompanyName string                   `json:"company_name"`
	Pages       map[PageType]*PageRecord `json:"pages"`   // resolved pages only
	Results     map[PageType]PageResult  `json:"results"` // every attempted page type
	Contacts    []ExtractedContact       `json:"contacts"`
	JobListings []JobListing             `json:"job_listings"`
	Meta        ResolutionMeta           `json:"meta"`
}

// PageText returns the extracted text for a page type, or "" if the page
// was not resolved.
func (p *CompanyProfile) PageText(pt PageType) string {
	if rec, ok := p.Pages[pt]; ok {
		return rec.Text
	}
	return ""
}

// PageURLs returns the page-type to URL mapping for resolved pages.
func (p *CompanyProfile) PageURLs() map[PageType]string {
	urls := make(map[PageType]string, len(p.Pages))
	for pt, rec := range p.Pages {
		urls[pt] = rec.URL
	}
	return urls
}
