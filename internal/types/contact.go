package types

// ExtractedContact is a candidate person mined from a company page.
// Name is required; everything else is best-effort.
type ExtractedContact struct {
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	Email      string   `json:"email,omitempty"`
	ProfileURL string   `json:"profile_url,omitempty"`
	SourcePage PageType `json:"source_page"`

	// BaseScore is the relevance assigned at extraction time. Score is the
	// current ranking score: equal to BaseScore until target-role rescoring
	// is applied, after which it is recomputed from BaseScore on every call
	// so repeated rescoring is idempotent.
	BaseScore float64 `json:"base_score"`
	Score     float64 `json:"score"`
}

// MaxContacts bounds the final ranked contact list.
const MaxContacts = 10
