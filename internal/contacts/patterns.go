// Package contacts mines company pages for candidate people: names, titles,
// emails, and profile links. Three independent strategies feed one pool which
// is then deduplicated and ranked. All pattern tables live in this file, kept
// separate from control flow so they can be tested and tuned independently.
package contacts

import "regexp"

// pagePriority is the order pages are mined when aggregating contacts across
// a company profile. Team pages carry the strongest signal.
var pagePriority = []string{"team", "about", "careers", "news"}

// profileLinkRe matches professional-network profile URLs; the trailing path
// segment is the candidate slug.
var profileLinkRe = regexp.MustCompile(`(?:linkedin\.com)?/in/([A-Za-z0-9][A-Za-z0-9._%-]*)`)

// emailRe matches email addresses in text or markup.
var emailRe = regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)

// genericMailboxPrefixes are local parts that never identify a person.
var genericMailboxPrefixes = []string{
	"info", "contact", "support", "hello", "sales", "noreply", "no-reply",
}

// nameCommaTitleRe captures "Jane Doe, Head of Talent" shaped lines.
var nameCommaTitleRe = regexp.MustCompile(
	`([A-Z][a-z'’-]+(?: [A-Z][a-z'’.-]*){1,3}),\s+([A-Za-z][A-Za-z &/'-]{2,60})`)

// titleColonNameRe captures "Head of Talent: Jane Doe" shaped lines.
var titleColonNameRe = regexp.MustCompile(
	`([A-Za-z][A-Za-z &/'-]{2,60}):\s+([A-Z][a-z'’-]+(?: [A-Z][a-z'’.-]*){1,3})`)

// roleVocabulary is the fixed list of role/seniority words a matched title
// must contain; it keeps the symmetric name/title patterns from matching
// arbitrary "Word, Word" prose.
var roleVocabulary = []string{
	"officer", "director", "manager", "head", "lead", "chief", "vp",
	"president", "founder", "partner", "engineer", "engineering",
	"recruiter", "recruiting", "talent", "people", "hr", "marketing",
	"sales", "product", "design", "designer", "scientist", "operations",
}

// titleWordDenylist rejects capitalized job-title phrases misidentified as
// personal names by the name-validity filter.
var titleWordDenylist = map[string]bool{
	"engineer": true, "engineering": true, "manager": true, "director": true,
	"officer": true, "chief": true, "head": true, "lead": true,
	"senior": true, "staff": true, "principal": true, "junior": true,
	"software": true, "product": true, "program": true, "data": true,
	"talent": true, "recruiter": true, "recruiting": true, "people": true,
	"marketing": true, "sales": true, "president": true, "vice": true,
	"founder": true, "partner": true, "executive": true, "resources": true,
	"human": true, "operations": true, "design": true, "designer": true,
	"scientist": true, "developer": true, "team": true, "about": true,
	"careers": true, "contact": true, "company": true,
}

// Base relevance for contacts discovered without a scoreable title.
const (
	profileLinkRelevance = 0.3
	emailNameRelevance   = 0.4
	emailAttachBoost     = 0.2
)
