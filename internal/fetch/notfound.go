package fetch

import "strings"

// notFoundTitlePhrases are matched against the document title. Sites often
// serve soft-404 pages with HTTP 200, so the transport status alone is not
// trusted.
var notFoundTitlePhrases = []string{
	"404",
	"not found",
	"page not found",
	"page doesn't exist",
	"page does not exist",
	"error page",
	"server error",
}

// notFoundBodyPhrases are matched against the extracted body text, but only
// when the body is short enough to plausibly be an error page.
var notFoundBodyPhrases = []string{
	"page not found",
	"404 error",
	"the page you are looking for",
	"the page you requested",
	"doesn't exist",
	"does not exist",
	"no longer available",
}

// notFoundBodyLimit is the maximum body length at which body phrases are
// considered. Long pages mentioning "404" in prose are not error pages.
const notFoundBodyLimit = 600

// IsNotFound reports whether the fetched content looks like a not-found page
// despite a successful transport status.
func IsNotFound(title, text string) bool {
	titleLower := strings.ToLower(title)
	for _, phrase := range notFoundTitlePhrases {
		if strings.Contains(titleLower, phrase) {
			return true
		}
	}

	if len(text) > notFoundBodyLimit {
		return false
	}
	textLower := strings.ToLower(text)
	for _, phrase := range notFoundBodyPhrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	return false
}
