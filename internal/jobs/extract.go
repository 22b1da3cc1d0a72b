package jobs

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/scoring"
	"github.com/jonathan/outreach-agent/internal/types"
)

// ExtractJobs mines a careers page for job listings: title templates over the
// plain text, titles from job-suggesting page structure, then correlation of
// job-shaped URLs with the titles found so far. The pooled listings are scored
// against the target role, sorted, and capped.
func ExtractJobs(rec *types.PageRecord, targetRole string) []types.JobListing {
	if rec == nil {
		return nil
	}

	listings := extractTextTitles(rec.Text)
	listings = mergeTitles(listings, extractStructuredTitles(rec.HTML))
	listings = correlateURLs(listings, rec.HTML, rec.URL)
	return Rank(listings, targetRole)
}

// Rank scores each listing against the target role, sorts descending, and
// caps the list. Scores are recomputed on every call, so ranking twice with
// the same role is a no-op.
func Rank(listings []types.JobListing, targetRole string) []types.JobListing {
	ranked := make([]types.JobListing, len(listings))
	copy(ranked, listings)

	for i := range ranked {
		ranked[i].MatchScore = scoring.RoleMatchScore(ranked[i].Title, targetRole)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > types.MaxJobListings {
		ranked = ranked[:types.MaxJobListings]
	}
	return ranked
}

// extractTextTitles runs every title template over the page text and returns
// the deduplicated matches in document order.
func extractTextTitles(text string) []types.JobListing {
	var listings []types.JobListing
	seen := make(map[string]bool)

	for _, re := range titlePatterns {
		for _, m := range re.FindAllString(text, -1) {
			title := strings.TrimSpace(m)
			if len(title) < minTitleLength {
				continue
			}
			key := strings.ToLower(title)
			if seen[key] {
				continue
			}
			seen[key] = true
			listings = append(listings, types.JobListing{Title: title})
		}
	}
	return listings
}

// extractStructuredTitles pulls titles out of elements whose class names
// suggest a job listing context.
func extractStructuredTitles(html string) []string {
	if html == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var titles []string
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if !structuredClassRe.MatchString(class) {
			return
		}
		// Leaf elements only; containers would yield the whole board's text.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.Join(strings.Fields(s.Text()), " ")
		if len(text) < minTitleLength || len(text) > maxStructuredTitleLength {
			return
		}
		if !containsJobKeyword(text) {
			return
		}
		titles = append(titles, text)
	})
	return titles
}

// mergeTitles appends structure-derived titles not already present in the
// text-derived pool.
func mergeTitles(listings []types.JobListing, titles []string) []types.JobListing {
	seen := make(map[string]bool, len(listings))
	for _, l := range listings {
		seen[strings.ToLower(l.Title)] = true
	}
	for _, title := range titles {
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true
		listings = append(listings, types.JobListing{Title: title})
	}
	return listings
}

// correlateURLs collects job-shaped URLs from the page and pairs each with a
// known listing when the listing's significant tokens appear in the URL slug.
// An unmatched URL whose slug names a role becomes a new listing with a title
// synthesized from the slug.
func correlateURLs(listings []types.JobListing, html, baseURL string) []types.JobListing {
	urls := extractJobURLs(html, baseURL)

	titleKeys := make(map[string]bool, len(listings))
	for _, l := range listings {
		titleKeys[strings.ToLower(l.Title)] = true
	}

	for _, jobURL := range urls {
		slug := urlSlug(jobURL)

		matched := false
		for i := range listings {
			if listings[i].ApplyURL != "" {
				continue
			}
			if slugMatchesTitle(slug, listings[i].Title) {
				listings[i].ApplyURL = jobURL
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		title := titleFromSlug(slug)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if titleKeys[key] {
			continue
		}
		titleKeys[key] = true
		listings = append(listings, types.JobListing{Title: title, ApplyURL: jobURL})
	}
	return listings
}

// extractJobURLs collects anchor hrefs and JSON-embedded URLs that look like
// job or application links, resolved against the page URL, deduplicated in
// document order.
func extractJobURLs(html, baseURL string) []string {
	if html == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	base, _ := url.Parse(baseURL)

	add := func(raw string) {
		raw = strings.TrimSpace(raw)
		if raw == "" || !isJobURL(raw) || isStaticAsset(raw) {
			return
		}
		resolved := raw
		if base != nil {
			if ref, err := url.Parse(raw); err == nil {
				resolved = base.ResolveReference(ref).String()
			}
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		out = append(out, resolved)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			add(href)
		})
	}

	for _, m := range jsonURLFieldRe.FindAllStringSubmatch(html, -1) {
		add(strings.ReplaceAll(m[1], `\/`, `/`))
	}

	return out
}

// isJobURL reports whether a URL looks like a job listing or application
// link: a job path fragment or a known applicant-tracking-system host.
func isJobURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, frag := range jobPathFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	for _, host := range atsHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

func isStaticAsset(raw string) bool {
	lower := strings.ToLower(raw)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range staticAssetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// urlSlug returns the last meaningful path segment of a URL, lowercased.
func urlSlug(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := strings.ToLower(segments[i])
		// Numeric IDs carry no title information; step past them.
		if seg == "" || isNumeric(seg) {
			continue
		}
		return seg
	}
	return ""
}

// slugMatchesTitle reports whether the first two significant tokens of a
// title both appear in the slug. One-token titles match on that token alone.
func slugMatchesTitle(slug, title string) bool {
	if slug == "" {
		return false
	}
	var significant []string
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		tok = strings.Trim(tok, ",.()")
		if len(tok) < 3 || slugStopwords[tok] {
			continue
		}
		significant = append(significant, tok)
		if len(significant) == 2 {
			break
		}
	}
	if len(significant) == 0 {
		return false
	}
	for _, tok := range significant {
		if !strings.Contains(slug, tok) {
			return false
		}
	}
	return true
}

// titleFromSlug synthesizes a human-readable title from a role-naming slug,
// e.g. "senior-backend-engineer" becomes "Senior Backend Engineer". Returns
// "" when the slug does not name a role.
func titleFromSlug(slug string) string {
	if slug == "" || !containsJobKeyword(slug) {
		return ""
	}
	slug = strings.ReplaceAll(slug, "_", "-")
	var words []string
	for _, part := range strings.Split(slug, "-") {
		if part == "" || hasDigit(part) {
			continue
		}
		words = append(words, strings.ToUpper(part[:1])+part[1:])
	}
	title := strings.Join(words, " ")
	if len(title) < minTitleLength {
		return ""
	}
	return title
}

func containsJobKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
