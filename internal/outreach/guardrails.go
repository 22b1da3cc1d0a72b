package outreach

import (
	"fmt"
	"strings"
)

// Guardrail bounds for a draft body.
const (
	// MinDraftWords and MaxDraftWords bracket the prompt's 80-150 word target
	// with some slack for the model's counting.
	MinDraftWords = 60
	MaxDraftWords = 180
	// MinFactCitations is how many supplied facts the body must echo.
	MinFactCitations = 1
	// citationWindow is how many consecutive fact words must appear in the
	// body for the fact to count as cited.
	citationWindow = 4
)

// genericPhrases are the cover-letter clichés a draft must not contain.
var genericPhrases = []string{
	"to whom it may concern",
	"dear sir or madam",
	"i am writing to express",
	"i came across your company",
	"passionate",
	"synergy",
	"rockstar",
	"ninja",
	"fast-paced environment",
	"dynamic team",
	"perfect fit",
}

// Violation describes one failed guardrail check on a draft.
type Violation struct {
	Check   string `json:"check"`
	Details string `json:"details"`
}

// CheckDraft runs every guardrail over a draft body and returns the
// violations found. The checks are deterministic string heuristics; they
// gate obviously bad drafts, they do not judge quality.
func CheckDraft(body, companyName string, facts []string) []Violation {
	var violations []Violation
	bodyLower := strings.ToLower(body)

	words := len(strings.Fields(body))
	if words < MinDraftWords {
		violations = append(violations, Violation{
			Check:   "word_count",
			Details: fmt.Sprintf("draft is too short: %d words (min %d)", words, MinDraftWords),
		})
	} else if words > MaxDraftWords {
		violations = append(violations, Violation{
			Check:   "word_count",
			Details: fmt.Sprintf("draft is too long: %d words (max %d)", words, MaxDraftWords),
		})
	}

	if companyName != "" && !strings.Contains(bodyLower, strings.ToLower(companyName)) {
		violations = append(violations, Violation{
			Check:   "company_mention",
			Details: "draft never mentions " + companyName,
		})
	}

	if len(facts) > 0 && countCitedFacts(bodyLower, facts) < MinFactCitations {
		violations = append(violations, Violation{
			Check:   "fact_grounding",
			Details: "draft does not reference any of the supplied company facts",
		})
	}

	for _, phrase := range genericPhrases {
		if strings.Contains(bodyLower, phrase) {
			violations = append(violations, Violation{
				Check:   "generic_phrase",
				Details: "draft contains a generic phrase: " + phrase,
			})
		}
	}

	return violations
}

// countCitedFacts counts facts with at least citationWindow consecutive words
// appearing verbatim in the lowercased body.
func countCitedFacts(bodyLower string, facts []string) int {
	cited := 0
	for _, fact := range facts {
		if factCited(bodyLower, fact) {
			cited++
		}
	}
	return cited
}

func factCited(bodyLower, fact string) bool {
	tokens := strings.Fields(strings.ToLower(fact))
	if len(tokens) < citationWindow {
		// Short facts (a product name, a technology) count on exact match.
		return len(tokens) > 0 && strings.Contains(bodyLower, strings.Join(tokens, " "))
	}
	for i := 0; i+citationWindow <= len(tokens); i++ {
		window := strings.Join(tokens[i:i+citationWindow], " ")
		if strings.Contains(bodyLower, window) {
			return true
		}
	}
	return false
}
