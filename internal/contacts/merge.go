package contacts

import (
	"sort"
	"strings"

	"github.com/jonathan/outreach-agent/internal/scoring"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Dedupe removes duplicate contacts by case-insensitive name. The first
// occurrence wins, which is why callers pool pages in priority order.
func Dedupe(pool []types.ExtractedContact) []types.ExtractedContact {
	seen := make(map[string]bool, len(pool))
	out := make([]types.ExtractedContact, 0, len(pool))
	for _, c := range pool {
		key := strings.ToLower(c.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// Rank applies target-role rescoring, sorts descending by score, and caps the
// list. Scores are always recomputed from BaseScore, so ranking the same
// contacts against the same role twice yields the same result.
func Rank(pool []types.ExtractedContact, targetRole string) []types.ExtractedContact {
	ranked := make([]types.ExtractedContact, len(pool))
	copy(ranked, pool)

	for i := range ranked {
		score := ranked[i].BaseScore
		if targetRole != "" {
			score += scoring.TargetRoleBoost(ranked[i].Title, targetRole)
		}
		ranked[i].Score = scoring.ClampScore(score)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > types.MaxContacts {
		ranked = ranked[:types.MaxContacts]
	}
	return ranked
}
