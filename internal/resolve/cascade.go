// Package resolve turns a company URL into a CompanyProfile: pages discovered
// through a strategy cascade, plus ranked contacts and job listings mined
// from them. Per-page failures are recorded, never fatal; only a malformed
// input URL aborts a resolution.
package resolve

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/types"
)

// careersExtraWait gives lazy-loaded job boards time to populate after the
// scroll pass.
const careersExtraWait = 2 * time.Second

// Options configures one resolution call. Everything here is explicit
// per-call configuration; the Resolver itself holds no per-company state and
// is safe to share across concurrent resolutions.
type Options struct {
	// PageTypes lists the page types to resolve; nil means all of them.
	PageTypes []types.PageType
	// ManualURLs maps a page type to an exact URL, bypassing discovery for
	// that type.
	ManualURLs map[types.PageType]string
	// RenderAll forces browser rendering for every page type, not just the
	// careers page.
	RenderAll bool
	// TargetRole, when non-empty, reranks contacts and scores job listings.
	TargetRole string
	// UseCache passes through to the fetcher.
	UseCache bool
}

// DefaultOptions resolves every page type with caching enabled.
func DefaultOptions() *Options {
	return &Options{UseCache: true}
}

// fetchOptions builds the per-fetch rendering policy. Careers pages get the
// full dynamic treatment because job boards are routinely script-rendered;
// other types use the faster plain fetch unless RenderAll is set.
func fetchOptions(pt types.PageType, opts *Options) *fetch.Options {
	fo := fetch.DefaultOptions()
	fo.UseCache = opts.UseCache
	if pt == types.PageCareers || opts.RenderAll {
		fo.RenderJS = true
		fo.ScrollPage = true
		fo.ExtraWait = careersExtraWait
	}
	return fo
}

// resolvePage runs the strategy cascade for one page type, short-circuiting
// on the first candidate URL that yields substantial content. homepage may be
// nil when the homepage fetch failed or was skipped.
func (r *Resolver) resolvePage(ctx context.Context, pt types.PageType, companyURL, baseDomain string, homepage *fetch.Result, opts *Options) types.PageResult {
	fo := fetchOptions(pt, opts)

	if manualURL, ok := opts.ManualURLs[pt]; ok {
		if rec := r.fetchCandidate(ctx, pt, manualURL, fo); rec != nil {
			return types.PageResult{Type: pt, Status: types.PageResolved, Page: rec, Strategy: "manual", Manual: true}
		}
		return types.PageResult{Type: pt, Status: types.PageFailed, Reason: "manual URL yielded no content", Strategy: "manual", Manual: true}
	}

	for _, label := range subdomainLabels[pt] {
		candidate := "https://" + label + "." + baseDomain
		if rec := r.fetchCandidate(ctx, pt, candidate, fo); rec != nil {
			return types.PageResult{Type: pt, Status: types.PageResolved, Page: rec, Strategy: "subdomain"}
		}
	}

	for _, suffix := range pathSuffixes[pt] {
		if rec := r.fetchCandidate(ctx, pt, companyURL+suffix, fo); rec != nil {
			return types.PageResult{Type: pt, Status: types.PageResolved, Page: rec, Strategy: "path"}
		}
	}

	if homepage != nil {
		for _, link := range homepageLinks(homepage.HTML, companyURL, pt) {
			if rec := r.fetchCandidate(ctx, pt, link, fo); rec != nil {
				return types.PageResult{Type: pt, Status: types.PageResolved, Page: rec, Strategy: "homepage-link"}
			}
		}
	}

	return types.PageResult{Type: pt, Status: types.PageFailed, Reason: "no strategy yielded sufficient content"}
}

// fetchCandidate fetches one candidate URL and returns a PageRecord when the
// fetch succeeded and the extracted text clears the content threshold.
// Failures are soft: the cascade just moves to the next candidate, never
// retrying the same URL.
func (r *Resolver) fetchCandidate(ctx context.Context, pt types.PageType, urlStr string, fo *fetch.Options) *types.PageRecord {
	res, err := r.fetcher.Fetch(ctx, urlStr, fo)
	if err != nil || res == nil {
		return nil
	}
	if len(res.Text) <= types.MinPageTextLength {
		return nil
	}
	return &types.PageRecord{
		Type:       pt,
		URL:        res.URL,
		Title:      res.Title,
		HTML:       res.HTML,
		Text:       res.Text,
		TextLength: len(res.Text),
		FetchedAt:  res.FetchedAt,
	}
}

// homepageLinks scans homepage anchor text for the page type's keywords and
// returns up to maxHomepageLinks matching targets, resolved against the
// company URL, in document order.
func homepageLinks(html, companyURL string, pt types.PageType) []string {
	if html == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if len(links) >= maxHomepageLinks {
			return
		}
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if text == "" || !matchesAnyKeyword(text, homepageLinkKeywords[pt]) {
			return
		}
		href, _ := s.Attr("href")
		target := resolveHref(companyURL, href)
		if target == "" || seen[target] {
			return
		}
		seen[target] = true
		links = append(links, target)
	})
	return links
}

func matchesAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// resolveHref joins a possibly relative href against the company URL.
func resolveHref(companyURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	if strings.Contains(href, "://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return companyURL + href
	}
	return companyURL + "/" + href
}
