package contacts

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/scoring"
	"github.com/jonathan/outreach-agent/internal/types"
)

// ExtractContacts mines every resolved page of a company for candidate
// people, merges the per-page pools, deduplicates by name, applies optional
// target-role rescoring, and returns the ranked top contacts.
func ExtractContacts(pages map[types.PageType]*types.PageRecord, targetRole string) []types.ExtractedContact {
	var pool []types.ExtractedContact
	for _, pt := range pagePriority {
		rec, ok := pages[types.PageType(pt)]
		if !ok || rec == nil {
			continue
		}
		pool = append(pool, FromPage(rec)...)
	}
	return Rank(Dedupe(pool), targetRole)
}

// FromPage runs the three extraction strategies over one page and returns the
// combined, page-local pool. The email strategy runs last so it can attach
// addresses to contacts the other two strategies found.
func FromPage(rec *types.PageRecord) []types.ExtractedContact {
	pool := extractProfileLinks(rec)
	pool = append(pool, extractNameTitle(rec)...)
	return applyEmails(pool, rec)
}

// extractProfileLinks scans HTML for professional-network profile links and
// derives a candidate name from the trailing path segment.
func extractProfileLinks(rec *types.PageRecord) []types.ExtractedContact {
	if rec.HTML == "" {
		return nil
	}

	var found []types.ExtractedContact
	seen := make(map[string]bool)

	addSlug := func(slug, href string) {
		name := nameFromSlug(slug)
		if !IsLikelyPersonName(name) {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		found = append(found, types.ExtractedContact{
			Name:       name,
			ProfileURL: href,
			SourcePage: rec.Type,
			BaseScore:  profileLinkRelevance,
			Score:      profileLinkRelevance,
		})
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.HTML))
	if err == nil {
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			if m := profileLinkRe.FindStringSubmatch(href); m != nil {
				addSlug(m[1], href)
			}
		})
	}

	// Profile URLs sometimes appear in script blobs rather than anchors.
	for _, m := range profileLinkRe.FindAllStringSubmatch(rec.HTML, -1) {
		addSlug(m[1], m[0])
	}

	return found
}

// extractNameTitle applies the two symmetric "Name, Title" / "Title: Name"
// patterns over the page's plain text.
func extractNameTitle(rec *types.PageRecord) []types.ExtractedContact {
	var found []types.ExtractedContact

	add := func(name, title string) {
		title = strings.TrimSpace(title)
		if !titleHasRoleWord(title) {
			return
		}
		name = strings.TrimSpace(name)
		if !IsLikelyPersonName(name) {
			return
		}
		relevance := scoring.TitleRelevance(title)
		found = append(found, types.ExtractedContact{
			Name:       name,
			Title:      title,
			SourcePage: rec.Type,
			BaseScore:  relevance,
			Score:      relevance,
		})
	}

	for _, m := range nameCommaTitleRe.FindAllStringSubmatch(rec.Text, -1) {
		add(m[1], m[2])
	}
	for _, m := range titleColonNameRe.FindAllStringSubmatch(rec.Text, -1) {
		add(m[2], m[1])
	}

	return found
}

// applyEmails runs the email strategy against the page and the pool built by
// the other strategies. A dotted local part yields a new contact with a name
// guess; otherwise the address is attached to a pool contact whose name
// matches, boosting that contact.
func applyEmails(pool []types.ExtractedContact, rec *types.PageRecord) []types.ExtractedContact {
	// Addresses appear in anchors and scripts as well as visible text.
	source := rec.HTML + "\n" + rec.Text

	seen := make(map[string]bool)
	for _, email := range emailRe.FindAllString(source, -1) {
		emailLower := strings.ToLower(email)
		if seen[emailLower] {
			continue
		}
		seen[emailLower] = true

		local := emailLower[:strings.Index(emailLower, "@")]
		if isGenericMailbox(local) {
			continue
		}

		if strings.Contains(local, ".") {
			segments := strings.Split(local, ".")
			name := titleCase(segments[0]) + " " + titleCase(segments[1])
			if !IsLikelyPersonName(name) {
				continue
			}
			pool = append(pool, types.ExtractedContact{
				Name:       name,
				Email:      email,
				SourcePage: rec.Type,
				BaseScore:  emailNameRelevance,
				Score:      emailNameRelevance,
			})
			continue
		}

		for i := range pool {
			if !nameMatchesAddress(pool[i].Name, local) {
				continue
			}
			if pool[i].Email == "" {
				pool[i].Email = email
			}
			pool[i].BaseScore = scoring.ClampScore(pool[i].BaseScore + emailAttachBoost)
			pool[i].Score = pool[i].BaseScore
			break
		}
	}

	return pool
}

// IsLikelyPersonName reports whether s looks like a personal name:
// 2-4 capitalized tokens, letters only, and no token drawn from the
// job-title denylist.
func IsLikelyPersonName(s string) bool {
	tokens := strings.Fields(s)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, tok := range tokens {
		if !isCapitalizedWord(tok) {
			return false
		}
		if titleWordDenylist[strings.ToLower(strings.Trim(tok, ".'’-"))] {
			return false
		}
	}
	return true
}

// isCapitalizedWord reports whether tok starts with an uppercase letter and
// contains only letters plus the usual name punctuation.
func isCapitalizedWord(tok string) bool {
	if tok == "" {
		return false
	}
	first := rune(tok[0])
	if first < 'A' || first > 'Z' {
		return false
	}
	for _, r := range tok[1:] {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '\'' || r == '-' || r == '.' || r == '’':
		default:
			return false
		}
	}
	return true
}

func titleHasRoleWord(title string) bool {
	titleLower := strings.ToLower(title)
	for _, word := range roleVocabulary {
		if strings.Contains(titleLower, word) {
			return true
		}
	}
	return false
}

func isGenericMailbox(local string) bool {
	for _, prefix := range genericMailboxPrefixes {
		if local == prefix || strings.HasPrefix(local, prefix+".") || strings.HasPrefix(local, prefix+"+") {
			return true
		}
	}
	return false
}

// nameMatchesAddress reports whether any part of a contact's name appears in
// an email local part.
func nameMatchesAddress(name, local string) bool {
	for _, part := range strings.Fields(strings.ToLower(name)) {
		if len(part) >= 3 && strings.Contains(local, part) {
			return true
		}
	}
	return false
}

// nameFromSlug turns a profile slug like "jane-doe" into "Jane Doe".
func nameFromSlug(slug string) string {
	slug = strings.ReplaceAll(slug, "_", "-")
	parts := strings.Split(slug, "-")
	var words []string
	for _, p := range parts {
		if p == "" || hasDigit(p) {
			continue
		}
		words = append(words, titleCase(p))
	}
	return strings.Join(words, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
