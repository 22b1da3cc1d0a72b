package types

// JobListing is a job opening mined from a company's careers page.
type JobListing struct {
	Title    string `json:"title"`
	ApplyURL string `json:"apply_url,omitempty"`
	// MatchScore is the token overlap with the target role in [0,1];
	// 0 when no target role was supplied.
	MatchScore float64 `json:"match_score"`
}

// MaxJobListings bounds the final ranked job list.
const MaxJobListings = 20
