// Package jobs mines a company's careers page for job listings. Listings on
// script-heavy career sites hide in three places at once: visible text,
// anchor targets, and JSON blobs, so three extraction passes feed one
// deduplicated pool. Pattern tables live here, separate from control flow.
package jobs

import "regexp"

// titlePatterns is the fixed, ordered set of templates matched against the
// careers page's plain text. Seniority prefixes are optional; the discipline
// plus role noun is what identifies a listing.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?:Senior|Staff|Principal|Lead|Junior|Sr\.?|Jr\.?) )?(?:Software|Backend|Back[- ]?[Ee]nd|Frontend|Front[- ]?[Ee]nd|Full[- ]?[Ss]tack|Data|Machine Learning|ML|DevOps|Platform|Security|Site Reliability|Mobile|iOS|Android|Cloud|QA|Infrastructure|Embedded) (?:Engineer|Developer|Architect)\b`),
	regexp.MustCompile(`(?:(?:Senior|Staff|Principal|Lead|Junior|Group) )?(?:Product|Program|Project|Engineering) Manager\b`),
	regexp.MustCompile(`(?:(?:Senior|Staff|Principal|Lead) )?(?:Product|UX|UI|Graphic) Designer\b`),
	regexp.MustCompile(`(?:(?:Senior|Staff|Lead) )?Data (?:Scientist|Analyst)\b`),
	regexp.MustCompile(`(?:(?:Senior|Lead) )?(?:Technical )?(?:Recruiter|Sourcer)\b`),
	regexp.MustCompile(`(?:Solutions?|Systems?|Software) Architect\b`),
	regexp.MustCompile(`Research (?:Scientist|Engineer)\b`),
	regexp.MustCompile(`(?:Engineering|Product|Design|Marketing|Sales) (?:Lead|Director)\b`),
}

// minTitleLength discards fragments too short to be a real job title.
const minTitleLength = 5

// maxStructuredTitleLength bounds titles taken from page structure; longer
// element text is prose, not a listing.
const maxStructuredTitleLength = 80

// jobPathFragments mark anchor hrefs that point at listings or applications.
var jobPathFragments = []string{
	"/job", "/jobs", "/careers/", "/career/", "/position", "/opening",
	"/opportunit", "/apply", "/vacanc", "/role", "gh_jid=",
}

// atsHosts are known applicant-tracking-system URL shapes.
var atsHosts = []string{
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"ashbyhq.com",
	"workable.com",
	"bamboohr.com",
	"smartrecruiters.com",
	"jobvite.com",
	"icims.com",
	"recruitee.com",
}

// jsonURLFieldRe matches apply/job URLs embedded in JSON blobs on the page.
var jsonURLFieldRe = regexp.MustCompile(
	`"(?:applyUrl|apply_url|jobUrl|job_url|absolute_url|hostedUrl|canonicalPositionUrl)"\s*:\s*"([^"]+)"`)

// staticAssetExtensions are filtered out of URL correlation.
var staticAssetExtensions = []string{
	".css", ".js", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico",
	".woff", ".woff2", ".ttf", ".webp",
}

// jobKeywords identify slugs and element text that describe a role.
var jobKeywords = []string{
	"engineer", "developer", "manager", "designer", "scientist", "analyst",
	"recruiter", "architect", "marketing", "sales", "product", "intern",
	"director", "lead",
}

// structuredClassRe matches class attributes that suggest a job context.
var structuredClassRe = regexp.MustCompile(`(?i)job|position|opening|posting|role|career|vacancy`)

// slugStopwords are skipped when picking a title's significant tokens for
// URL correlation.
var slugStopwords = map[string]bool{
	"the": true, "and": true, "of": true, "for": true,
	"senior": true, "junior": true, "staff": true, "principal": true,
	"lead": true, "sr": true, "jr": true,
}
