package outreach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkNames(violations []Violation) []string {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.Check
	}
	return names
}

func validBody() string {
	return strings.TrimSpace(`
Hi Jane, I noticed Acme builds infrastructure for payment teams and recently
launched the Acme Ledger platform, which lines up closely with the systems
work I have been doing for the last four years. I have spent most of that
time running Go services that move money safely under load, so the problems
your engineering posts describe are familiar ones. I saw the Senior Software
Engineer opening on your careers page and believe my background maps well to
it. Would you be open to a short call next week, or could you point me to the
right person on the hiring side? Happy to share more context either way.`)
}

func TestCheckDraft_CleanDraftPasses(t *testing.T) {
	facts := []string{"Acme builds infrastructure for payment teams", "launched the Acme Ledger platform"}

	violations := CheckDraft(validBody(), "Acme", facts)
	assert.Empty(t, violations)
}

func TestCheckDraft_TooShort(t *testing.T) {
	violations := CheckDraft("Hi Jane, love Acme. Call me.", "Acme", nil)
	assert.Contains(t, checkNames(violations), "word_count")
}

func TestCheckDraft_TooLong(t *testing.T) {
	body := strings.Repeat("Acme word ", 150)
	violations := CheckDraft(body, "Acme", nil)
	assert.Contains(t, checkNames(violations), "word_count")
}

func TestCheckDraft_MissingCompanyMention(t *testing.T) {
	body := strings.ReplaceAll(validBody(), "Acme", "the company")
	violations := CheckDraft(body, "Acme", nil)
	assert.Contains(t, checkNames(violations), "company_mention")
}

func TestCheckDraft_CompanyMentionIsCaseInsensitive(t *testing.T) {
	violations := CheckDraft(validBody(), "ACME", nil)
	assert.NotContains(t, checkNames(violations), "company_mention")
}

func TestCheckDraft_UngroundedDraftFlagged(t *testing.T) {
	facts := []string{"raised a forty million dollar series B round"}

	violations := CheckDraft(validBody(), "Acme", facts)
	assert.Contains(t, checkNames(violations), "fact_grounding")
}

func TestCheckDraft_ShortFactCitedByExactMatch(t *testing.T) {
	// Facts below the citation window length match on the whole phrase.
	facts := []string{"Acme Ledger"}

	violations := CheckDraft(validBody(), "Acme", facts)
	assert.NotContains(t, checkNames(violations), "fact_grounding")
}

func TestCheckDraft_GenericPhrases(t *testing.T) {
	body := validBody() + " I am passionate about joining a dynamic team."

	violations := CheckDraft(body, "Acme", nil)
	names := checkNames(violations)
	require.NotEmpty(t, names)
	count := 0
	for _, n := range names {
		if n == "generic_phrase" {
			count++
		}
	}
	assert.Equal(t, 2, count, "both clichés are reported")
}

func TestCheckDraft_NoFactsSkipsGroundingCheck(t *testing.T) {
	violations := CheckDraft(validBody(), "Acme", nil)
	assert.NotContains(t, checkNames(violations), "fact_grounding")
}
