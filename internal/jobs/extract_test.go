package jobs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/types"
)

func careersPage(html, text string) *types.PageRecord {
	return &types.PageRecord{
		Type: types.PageCareers,
		URL:  "https://acme.com/careers",
		HTML: html,
		Text: text,
	}
}

func titlesOf(listings []types.JobListing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Title
	}
	return out
}

func TestExtractTextTitles_MatchesTemplates(t *testing.T) {
	page := careersPage("", "We're hiring a Senior Software Engineer and a Product Manager to join us.")

	found := ExtractJobs(page, "")
	titles := titlesOf(found)
	assert.Contains(t, titles, "Senior Software Engineer")
	assert.Contains(t, titles, "Product Manager")
}

func TestExtractTextTitles_DeduplicatesCaseInsensitive(t *testing.T) {
	found := extractTextTitles("Software Engineer openings. Another Software Engineer role.")
	assert.Len(t, found, 1)
}

func TestCorrelateURLs_AttachesApplyURL(t *testing.T) {
	page := careersPage(
		`<a href="/jobs/senior-backend-engineer-1234">Apply</a>`,
		"Open role: Senior Backend Engineer",
	)

	found := ExtractJobs(page, "")
	require.Len(t, found, 1)
	assert.Equal(t, "Senior Backend Engineer", found[0].Title)
	assert.Equal(t, "https://acme.com/jobs/senior-backend-engineer-1234", found[0].ApplyURL)
}

func TestCorrelateURLs_SynthesizesTitleFromATSSlug(t *testing.T) {
	page := careersPage(
		`<a href="https://jobs.lever.co/acme/machine-learning-engineer">ML role</a>`,
		"",
	)

	found := ExtractJobs(page, "")
	require.Len(t, found, 1)
	assert.Equal(t, "Machine Learning Engineer", found[0].Title)
	assert.Equal(t, "https://jobs.lever.co/acme/machine-learning-engineer", found[0].ApplyURL)
}

func TestCorrelateURLs_JSONEmbeddedURL(t *testing.T) {
	page := careersPage(
		`<script>{"absolute_url":"https://boards.greenhouse.io/acme/jobs/data-scientist"}</script>`,
		"",
	)

	found := ExtractJobs(page, "")
	require.Len(t, found, 1)
	assert.Equal(t, "Data Scientist", found[0].Title)
}

func TestCorrelateURLs_IgnoresStaticAssets(t *testing.T) {
	page := careersPage(`<a href="/jobs/board.css">styles</a><a href="/jobs/app.js">script</a>`, "")

	found := ExtractJobs(page, "")
	assert.Empty(t, found)
}

func TestCorrelateURLs_IgnoresNonRoleSlugs(t *testing.T) {
	// A job-shaped URL whose slug names no role yields nothing.
	page := careersPage(`<a href="/jobs/faq">FAQ</a>`, "")

	found := ExtractJobs(page, "")
	assert.Empty(t, found)
}

func TestExtractStructuredTitles(t *testing.T) {
	html := `
		<ul class="open-jobs">
			<li class="job-title">Platform Engineer</li>
			<li class="job-title">Site Reliability Engineer</li>
			<li class="job-title">Go</li>
		</ul>
		<div class="hero">Join the best team in the world, period</div>`

	titles := extractStructuredTitles(html)
	assert.Equal(t, []string{"Platform Engineer", "Site Reliability Engineer"}, titles)
}

func TestRank_ScoresAgainstTargetRole(t *testing.T) {
	page := careersPage("", "Openings: Senior Software Engineer. Also: Product Manager.")

	found := ExtractJobs(page, "Senior Software Engineer")
	require.Len(t, found, 2)
	assert.Equal(t, "Senior Software Engineer", found[0].Title)
	assert.InDelta(t, 1.0, found[0].MatchScore, 0.0001)
	assert.Equal(t, "Product Manager", found[1].Title)
	assert.InDelta(t, 0.0, found[1].MatchScore, 0.0001)
}

func TestRank_NoTargetRoleScoresZero(t *testing.T) {
	found := Rank([]types.JobListing{{Title: "Software Engineer"}}, "")
	require.Len(t, found, 1)
	assert.Zero(t, found[0].MatchScore)
}

func TestRank_Idempotent(t *testing.T) {
	pool := []types.JobListing{
		{Title: "Product Manager"},
		{Title: "Senior Software Engineer"},
	}

	once := Rank(pool, "Software Engineer")
	twice := Rank(once, "Software Engineer")
	assert.Equal(t, once, twice)
}

func TestRank_CapsAtMaxJobListings(t *testing.T) {
	var pool []types.JobListing
	for i := 0; i < 30; i++ {
		pool = append(pool, types.JobListing{Title: fmt.Sprintf("Engineer %d", i)})
	}

	ranked := Rank(pool, "")
	assert.Len(t, ranked, types.MaxJobListings)
}

func TestSlugMatchesTitle(t *testing.T) {
	assert.True(t, slugMatchesTitle("senior-backend-engineer-1234", "Senior Backend Engineer"))
	assert.True(t, slugMatchesTitle("product-manager", "Product Manager"))
	assert.False(t, slugMatchesTitle("backend-engineer", "Frontend Engineer"))
	assert.False(t, slugMatchesTitle("", "Backend Engineer"))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Senior Backend Engineer", titleFromSlug("senior-backend-engineer"))
	assert.Equal(t, "Data Scientist", titleFromSlug("data_scientist"))
	assert.Empty(t, titleFromSlug("faq"))
	assert.Empty(t, titleFromSlug(""))
}
