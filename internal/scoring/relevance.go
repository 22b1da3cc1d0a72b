// Package scoring provides the static relevance tables used to rank extracted
// contacts and job listings. The tables are pure data: no network calls, fully
// deterministic, shared by the extraction engines and the post-hoc target-role
// rescoring step.
package scoring

import "strings"

// Base relevance tiers for contact titles.
const (
	// TierRecruiting covers recruiting/HR/people titles, the most useful
	// contacts for outreach.
	TierRecruiting = 0.9
	// TierEngManagement covers engineering-management titles.
	TierEngManagement = 0.7
	// TierExecutive covers executive/leadership titles.
	TierExecutive = 0.5
	// TierDefault is the fallback for any other title.
	TierDefault = 0.3
)

// Target-role boost increments. The additive arithmetic (capped at 1.0) is
// preserved as observed behavior; normalizing it would change existing
// rankings.
const (
	// SharedTokenBoost applies when a contact's title shares any token with
	// the target role.
	SharedTokenBoost = 0.2
	// ManagementBoost applies additionally when the title contains a
	// management/leadership word.
	ManagementBoost = 0.1
)

// recruitingKeywords mark high-relevance recruiting/HR titles.
var recruitingKeywords = []string{
	"recruiter",
	"recruiting",
	"talent",
	"people operations",
	"people ops",
	"head of people",
	"human resources",
	"hr ",
	" hr",
	"hiring",
}

// engManagementKeywords mark engineering-management titles.
var engManagementKeywords = []string{
	"engineering manager",
	"director of engineering",
	"vp of engineering",
	"vp engineering",
	"head of engineering",
	"engineering lead",
	"engineering director",
}

// executiveKeywords mark executive/leadership titles.
var executiveKeywords = []string{
	"ceo", "cto", "coo", "cfo",
	"chief",
	"founder",
	"co-founder",
	"president",
	"vice president",
	"vp",
	"director",
	"partner",
}

// managementWords are the leadership words that trigger ManagementBoost.
var managementWords = []string{"manager", "lead", "director", "head", "vp", "chief"}

// TitleRelevance maps a contact title to its base relevance score.
// Tiers are checked most-specific first so "Director of Talent" scores as
// recruiting rather than executive.
func TitleRelevance(title string) float64 {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return TierDefault
	}

	for _, kw := range recruitingKeywords {
		if strings.Contains(t, kw) {
			return TierRecruiting
		}
	}
	for _, kw := range engManagementKeywords {
		if strings.Contains(t, kw) {
			return TierEngManagement
		}
	}
	for _, kw := range executiveKeywords {
		if containsWord(t, kw) {
			return TierExecutive
		}
	}
	return TierDefault
}

// TargetRoleBoost computes the additive boost a title earns against a target
// role. It is a pure function: applying it twice to the same base score gives
// the same result.
func TargetRoleBoost(title, targetRole string) float64 {
	if title == "" || targetRole == "" {
		return 0
	}

	boost := 0.0
	titleLower := strings.ToLower(title)

	if sharesToken(titleLower, strings.ToLower(targetRole)) {
		boost += SharedTokenBoost
	}
	for _, word := range managementWords {
		if containsWord(titleLower, word) {
			boost += ManagementBoost
			break
		}
	}
	return boost
}

// ClampScore bounds a score to [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// RoleMatchScore scores a job title against a target role: shared whitespace
// tokens divided by the number of target-role tokens. Returns 0 when no
// target role is supplied.
func RoleMatchScore(title, targetRole string) float64 {
	targetTokens := strings.Fields(strings.ToLower(targetRole))
	if len(targetTokens) == 0 {
		return 0
	}

	titleTokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		titleTokens[tok] = true
	}

	shared := 0
	for _, tok := range targetTokens {
		if titleTokens[tok] {
			shared++
		}
	}
	return float64(shared) / float64(len(targetTokens))
}

// sharesToken reports whether two lowercased strings share any whitespace
// token. Tokens also match when one is a word-stem prefix of the other, so
// "engineer" in a target role matches "engineering" in a title.
func sharesToken(a, b string) bool {
	aTokens := strings.Fields(a)
	for _, bt := range strings.Fields(b) {
		for _, at := range aTokens {
			if at == bt {
				return true
			}
			shorter, longer := at, bt
			if len(shorter) > len(longer) {
				shorter, longer = longer, shorter
			}
			if len(shorter) >= 4 && strings.HasPrefix(longer, shorter) {
				return true
			}
		}
	}
	return false
}

// containsWord reports whether text contains word as a whole token.
// Substring matching would make "leader" trigger on "lead" acceptable, but
// "vp" must not match inside "vproduct".
func containsWord(text, word string) bool {
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '-' || r == '(' || r == ')'
	}) {
		if tok == word {
			return true
		}
	}
	return false
}
