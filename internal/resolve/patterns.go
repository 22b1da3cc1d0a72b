package resolve

import "github.com/jonathan/outreach-agent/internal/types"

// Discovery pattern tables, keyed by page type. They are pure data, kept
// apart from the cascade control flow so strategies can be tested without a
// fetcher.

// subdomainLabels lists the subdomain candidates per page type, tried in
// order against the base domain.
var subdomainLabels = map[types.PageType][]string{
	types.PageAbout:   {"about", "company"},
	types.PageCareers: {"careers", "jobs", "join", "recruiting", "work"},
	types.PageNews:    {"news", "blog", "press", "media"},
	types.PageTeam:    {"team", "people"},
}

// pathSuffixes lists the path candidates per page type, joined against the
// normalized company URL and tried in order.
var pathSuffixes = map[types.PageType][]string{
	types.PageAbout: {
		"/about", "/about-us", "/aboutus", "/about_us", "/company",
		"/who-we-are", "/our-story", "/story", "/mission", "/overview",
		"/en/about", "/corporate",
	},
	types.PageCareers: {
		"/careers", "/jobs", "/join", "/join-us", "/work-with-us",
		"/careers/jobs", "/company/careers", "/about/careers", "/en/careers",
		"/opportunities", "/openings", "/positions", "/employment", "/hiring",
		"/work-here", "/jobs/search", "/careers/open-positions", "/team/join",
	},
	types.PageNews: {
		"/news", "/blog", "/press", "/media", "/newsroom", "/press-releases",
		"/updates", "/insights", "/articles", "/company/news", "/about/news",
		"/stories",
	},
	types.PageTeam: {
		"/team", "/our-team", "/people", "/about/team", "/company/team",
		"/leadership", "/about-us/team", "/meet-the-team", "/staff",
		"/our-people", "/management", "/founders",
	},
}

// homepageLinkKeywords match homepage anchor text per page type; matching
// link targets are the last-resort discovery strategy.
var homepageLinkKeywords = map[types.PageType][]string{
	types.PageAbout:   {"about", "company", "who we are", "our story"},
	types.PageCareers: {"career", "job", "join", "hiring", "work with us"},
	types.PageNews:    {"news", "blog", "press", "media"},
	types.PageTeam:    {"team", "people", "leadership"},
}

// maxHomepageLinks caps how many matching homepage links are tried per type.
const maxHomepageLinks = 3
