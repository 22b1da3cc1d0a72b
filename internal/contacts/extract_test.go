package contacts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/types"
)

func teamPage(html, text string) *types.PageRecord {
	return &types.PageRecord{
		Type: types.PageTeam,
		URL:  "https://acme.com/team",
		HTML: html,
		Text: text,
	}
}

func TestExtractProfileLinks_RelativeSlug(t *testing.T) {
	page := teamPage(`<html><body><a href="/in/jane-doe">Jane</a></body></html>`, "")

	found := FromPage(page)
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Doe", found[0].Name)
	assert.Equal(t, "/in/jane-doe", found[0].ProfileURL)
	assert.InDelta(t, 0.3, found[0].Score, 0.0001)
	assert.Equal(t, types.PageTeam, found[0].SourcePage)
}

func TestExtractProfileLinks_FullURL(t *testing.T) {
	page := teamPage(`<a href="https://www.linkedin.com/in/john-smith">John</a>`, "")

	found := FromPage(page)
	require.Len(t, found, 1)
	assert.Equal(t, "John Smith", found[0].Name)
}

func TestExtractProfileLinks_RejectsNonNames(t *testing.T) {
	// Single-token and digit-bearing slugs do not look like personal names.
	page := teamPage(`
		<a href="/in/acme">Company</a>
		<a href="/in/jane-doe-123abc">Jane</a>
	`, "")

	found := FromPage(page)
	for _, c := range found {
		assert.NotEqual(t, "Acme", c.Name)
	}
}

func TestExtractNameTitle_NameCommaTitle(t *testing.T) {
	page := teamPage("", "Meet our team. Jane Doe, Head of Talent Acquisition leads hiring.")

	found := FromPage(page)
	require.NotEmpty(t, found)
	assert.Equal(t, "Jane Doe", found[0].Name)
	assert.Contains(t, found[0].Title, "Head of Talent")
	assert.InDelta(t, 0.9, found[0].Score, 0.0001)
}

func TestExtractNameTitle_TitleColonName(t *testing.T) {
	page := teamPage("", "Engineering Manager: John Smith")

	found := FromPage(page)
	require.Len(t, found, 1)
	assert.Equal(t, "John Smith", found[0].Name)
	assert.Equal(t, "Engineering Manager", found[0].Title)
	assert.InDelta(t, 0.7, found[0].Score, 0.0001)
}

func TestExtractNameTitle_RejectsTitlePhrasesAsNames(t *testing.T) {
	// "Senior Software" would match the name shape but is a title fragment.
	page := teamPage("", "Senior Software, Engineering Manager roles are open.")

	found := FromPage(page)
	assert.Empty(t, found)
}

func TestExtractNameTitle_RequiresRoleWord(t *testing.T) {
	page := teamPage("", "Jane Doe, Wonderful Human Being")

	found := FromPage(page)
	assert.Empty(t, found)
}

func TestApplyEmails_DottedLocalCreatesContact(t *testing.T) {
	page := teamPage("", "Reach us: jane.doe@acme.com")

	found := FromPage(page)
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Doe", found[0].Name)
	assert.Equal(t, "jane.doe@acme.com", found[0].Email)
	assert.InDelta(t, 0.4, found[0].Score, 0.0001)
}

func TestApplyEmails_SkipsGenericMailboxes(t *testing.T) {
	page := teamPage("", "Write to info@acme.com or support@acme.com or noreply@acme.com")

	found := FromPage(page)
	assert.Empty(t, found)
}

func TestApplyEmails_AttachesToExistingContact(t *testing.T) {
	page := teamPage(
		`<a href="/in/jane-doe">Jane</a>`,
		"Contact jane@acme.com for hiring questions.",
	)

	found := FromPage(page)
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Doe", found[0].Name)
	assert.Equal(t, "jane@acme.com", found[0].Email)
	// Profile-link relevance 0.3 plus the attach boost.
	assert.InDelta(t, 0.5, found[0].Score, 0.0001)
}

func TestDedupe_CaseInsensitiveFirstWins(t *testing.T) {
	pool := []types.ExtractedContact{
		{Name: "Jane Doe", SourcePage: types.PageTeam, BaseScore: 0.3, Score: 0.3},
		{Name: "JANE DOE", SourcePage: types.PageAbout, BaseScore: 0.9, Score: 0.9},
		{Name: "John Smith", BaseScore: 0.4, Score: 0.4},
	}

	out := Dedupe(pool)
	require.Len(t, out, 2)
	assert.Equal(t, "Jane Doe", out[0].Name)
	assert.Equal(t, types.PageTeam, out[0].SourcePage)
}

func TestRank_TargetRoleBoostAndSort(t *testing.T) {
	pool := []types.ExtractedContact{
		{Name: "Alice Exec", Title: "CEO", BaseScore: 0.5},
		{Name: "Bob Builder", Title: "Engineering Manager", BaseScore: 0.7},
		{Name: "Carol Barista", Title: "", BaseScore: 0.3},
	}

	ranked := Rank(pool, "Software Engineer")
	require.Len(t, ranked, 3)
	// Engineering Manager: 0.7 + 0.2 (engineer~engineering) + 0.1 (manager) = 1.0
	assert.Equal(t, "Bob Builder", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)
	assert.Equal(t, "Alice Exec", ranked[1].Name)
	assert.InDelta(t, 0.5, ranked[1].Score, 0.0001)
}

func TestRank_Idempotent(t *testing.T) {
	pool := []types.ExtractedContact{
		{Name: "Bob Builder", Title: "Engineering Manager", BaseScore: 0.7},
		{Name: "Alice Exec", Title: "CEO", BaseScore: 0.5},
	}

	once := Rank(pool, "Software Engineer")
	twice := Rank(once, "Software Engineer")
	assert.Equal(t, once, twice)
}

func TestRank_CapsAtMaxContacts(t *testing.T) {
	var pool []types.ExtractedContact
	for i := 0; i < 25; i++ {
		pool = append(pool, types.ExtractedContact{
			Name:      fmt.Sprintf("Person Number%c", 'A'+i),
			BaseScore: 0.3,
		})
	}

	ranked := Rank(pool, "")
	assert.Len(t, ranked, types.MaxContacts)
}

func TestExtractContacts_PagePriorityOrder(t *testing.T) {
	pages := map[types.PageType]*types.PageRecord{
		types.PageNews: {
			Type: types.PageNews,
			Text: "Jane Doe, Marketing Manager announced the launch.",
		},
		types.PageTeam: {
			Type: types.PageTeam,
			Text: "Jane Doe, Head of Recruiting runs our hiring.",
		},
	}

	out := ExtractContacts(pages, "")
	require.Len(t, out, 1)
	// Team page is mined first, so its record wins the dedup.
	assert.Equal(t, types.PageTeam, out[0].SourcePage)
	assert.Contains(t, out[0].Title, "Recruiting")
}

func TestIsLikelyPersonName(t *testing.T) {
	assert.True(t, IsLikelyPersonName("Jane Doe"))
	assert.True(t, IsLikelyPersonName("Mary Jane Van Dyke"))
	assert.False(t, IsLikelyPersonName("Jane"))
	assert.False(t, IsLikelyPersonName("jane doe"))
	assert.False(t, IsLikelyPersonName("Jane D0e"))
	assert.False(t, IsLikelyPersonName("Engineering Manager"))
	assert.False(t, IsLikelyPersonName("One Two Three Four Five"))
}
