// Package outreach turns a resolved company profile into a short,
// personalized outreach message: LLM fact extraction over the resolved pages,
// LLM drafting against a chosen contact, and deterministic guardrail checks
// on the result.
package outreach

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/types"
)

// maxPageChars bounds how much of each page's text goes into the extraction
// prompt.
const maxPageChars = 4000

// maxDraftFacts bounds how many fact lines reach the drafting prompt; longer
// lists get condensed first so the draft cites the strongest facts instead
// of drowning in them.
const maxDraftFacts = 8

// CompanyFacts holds the citable facts extracted from a company's pages.
type CompanyFacts struct {
	Mission        string   `json:"mission"`
	Products       []string `json:"products,omitempty"`
	RecentNews     []string `json:"recent_news,omitempty"`
	CultureSignals []string `json:"culture_signals,omitempty"`
	TechStack      []string `json:"tech_stack,omitempty"`
}

// Lines flattens the facts into one line per fact, mission first.
func (f *CompanyFacts) Lines() []string {
	var lines []string
	if strings.TrimSpace(f.Mission) != "" {
		lines = append(lines, f.Mission)
	}
	for _, group := range [][]string{f.Products, f.RecentNews, f.CultureSignals, f.TechStack} {
		for _, item := range group {
			if strings.TrimSpace(item) != "" {
				lines = append(lines, item)
			}
		}
	}
	return lines
}

// ExtractFacts runs LLM fact extraction over the profile's resolved pages.
func (d *Drafter) ExtractFacts(ctx context.Context, profile *types.CompanyProfile) (*CompanyFacts, error) {
	corpus := profileCorpus(profile)
	if corpus == "" {
		return nil, &Error{Message: "profile has no resolved pages to extract facts from"}
	}

	prompt := llm.BuildExtractionPrompt(llm.CompanyFactsSchema(), corpus)
	raw, err := d.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "fact extraction failed", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(raw)
	var facts CompanyFacts
	if err := json.Unmarshal([]byte(cleaned), &facts); err != nil {
		// The model sometimes wraps the document in chat preamble; salvage
		// the first balanced object before giving up.
		salvaged := llm.FirstJSONObject(cleaned)
		if salvaged == "" || json.Unmarshal([]byte(salvaged), &facts) != nil {
			return nil, &Error{Message: "fact extraction returned invalid JSON", Cause: err}
		}
	}
	return &facts, nil
}

// condenseFacts asks the model to shrink an oversized fact list down to
// maxDraftFacts lines. Condensing is best-effort; on any failure the full
// list is kept and drafting proceeds.
func (d *Drafter) condenseFacts(ctx context.Context, lines []string) []string {
	template := prompts.MustGet("outreach.json", "summarize-facts")
	prompt := prompts.Format(template, map[string]string{
		"MaxFacts": strconv.Itoa(maxDraftFacts),
		"Facts":    bulleted(lines),
	})

	raw, err := d.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return lines
	}
	condensed := parseFactLines(raw)
	if len(condensed) == 0 {
		return lines
	}
	return condensed
}

// parseFactLines splits a condensed response into facts, one per line,
// dropping the "- " bullet prefix the prompt asks for.
func parseFactLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// profileCorpus concatenates the resolved pages' text in a stable order,
// truncating each page.
func profileCorpus(profile *types.CompanyProfile) string {
	var sb strings.Builder
	for _, pt := range types.AllPageTypes() {
		rec, ok := profile.Pages[pt]
		if !ok {
			continue
		}
		text := rec.Text
		if len(text) > maxPageChars {
			text = text[:maxPageChars]
		}
		fmt.Fprintf(&sb, "=== %s page (%s) ===\n%s\n\n", pt, rec.URL, text)
	}
	return strings.TrimSpace(sb.String())
}
