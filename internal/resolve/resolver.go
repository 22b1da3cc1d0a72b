package resolve

import (
	"context"
	"time"

	"github.com/jonathan/outreach-agent/internal/contacts"
	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/jobs"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Resolver orchestrates company resolution: normalize the URL, run the page
// cascade per requested type, then mine the resolved pages for contacts and
// job listings.
type Resolver struct {
	fetcher fetch.Fetcher
}

// NewResolver creates a Resolver on top of a page fetcher.
func NewResolver(f fetch.Fetcher) *Resolver {
	return &Resolver{fetcher: f}
}

// Resolve builds the CompanyProfile for one company. The only error it
// returns is input validation on the company URL or page types; every
// per-page failure is recorded in the profile instead. A company where every
// strategy fails still yields a complete profile with empty pages and lists.
func (r *Resolver) Resolve(ctx context.Context, companyURL string, opts *Options) (*types.CompanyProfile, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	normalized, err := NormalizeCompanyURL(companyURL)
	if err != nil {
		return nil, err
	}

	pageTypes := opts.PageTypes
	if len(pageTypes) == 0 {
		pageTypes = types.AllPageTypes()
	}
	for _, pt := range pageTypes {
		if !types.IsValidPageType(pt) {
			return nil, &Error{Message: "unknown page type: " + string(pt)}
		}
	}

	baseDomain := BaseDomain(normalized)
	profile := &types.CompanyProfile{
		CompanyURL:  normalized,
		BaseDomain:  baseDomain,
		CompanyName: CompanyNameFromDomain(baseDomain),
		Pages:       make(map[types.PageType]*types.PageRecord),
		Results:     make(map[types.PageType]types.PageResult),
	}

	// One homepage fetch feeds the link strategy for every page type. When
	// every requested type has a manual override the fetch is skipped
	// outright; discovery will never run.
	var homepage *fetch.Result
	if !allManual(pageTypes, opts.ManualURLs) {
		fo := fetch.DefaultOptions()
		fo.UseCache = opts.UseCache
		homepage, _ = r.fetcher.Fetch(ctx, normalized, fo)
	}

	for _, pt := range pageTypes {
		result := r.resolvePage(ctx, pt, normalized, baseDomain, homepage, opts)
		profile.Results[pt] = result

		profile.Meta.PagesAttempted++
		if result.Status == types.PageResolved {
			profile.Meta.PagesSucceeded++
			profile.Pages[pt] = result.Page
		} else {
			profile.Meta.FailedPageTypes = append(profile.Meta.FailedPageTypes, pt)
		}
		if result.Manual {
			profile.Meta.ManualOverrides = append(profile.Meta.ManualOverrides, pt)
		}
	}

	if profile.Meta.PagesAttempted > 0 {
		profile.Meta.SuccessRate = float64(profile.Meta.PagesSucceeded) / float64(profile.Meta.PagesAttempted)
	}
	profile.Meta.ResolvedAt = time.Now().UTC()

	profile.Contacts = contacts.ExtractContacts(profile.Pages, opts.TargetRole)
	if careers, ok := profile.Pages[types.PageCareers]; ok {
		profile.JobListings = jobs.ExtractJobs(careers, opts.TargetRole)
	}

	return profile, nil
}

func allManual(pageTypes []types.PageType, manual map[types.PageType]string) bool {
	if len(manual) == 0 {
		return false
	}
	for _, pt := range pageTypes {
		if _, ok := manual[pt]; !ok {
			return false
		}
	}
	return true
}
