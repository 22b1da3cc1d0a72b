package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Error represents an outreach drafting failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("outreach error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("outreach error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Drafter generates outreach message drafts from company profiles.
type Drafter struct {
	client llm.Client
}

// NewDrafter creates a Drafter over an LLM client.
func NewDrafter(client llm.Client) *Drafter {
	return &Drafter{client: client}
}

// DraftRequest names the contact and role a draft targets.
type DraftRequest struct {
	Profile    *types.CompanyProfile
	Contact    *types.ExtractedContact
	TargetRole string
}

// Draft is one generated message plus the facts it was grounded on and the
// guardrail violations found in it. An empty Violations slice means the draft
// passed every check.
type Draft struct {
	Body       string      `json:"body"`
	Facts      []string    `json:"facts"`
	Contact    string      `json:"contact"`
	Violations []Violation `json:"violations,omitempty"`
}

// Draft generates one outreach message: extract facts, prompt the model, then
// run the guardrails. Guardrail violations are reported on the draft, not
// returned as an error, so the caller can decide whether to regenerate.
func (d *Drafter) Draft(ctx context.Context, req *DraftRequest) (*Draft, error) {
	if req == nil || req.Profile == nil {
		return nil, &Error{Message: "draft request needs a company profile"}
	}
	if req.Contact == nil {
		return nil, &Error{Message: "draft request needs a contact"}
	}

	facts, err := d.ExtractFacts(ctx, req.Profile)
	if err != nil {
		return nil, err
	}
	factLines := facts.Lines()
	if len(factLines) > maxDraftFacts {
		factLines = d.condenseFacts(ctx, factLines)
	}

	contactTitle := ""
	if req.Contact.Title != "" {
		contactTitle = ", " + req.Contact.Title
	}
	template := prompts.MustGet("outreach.json", "draft-message")
	prompt := prompts.Format(template, map[string]string{
		"ContactName":  req.Contact.Name,
		"ContactTitle": contactTitle,
		"CompanyName":  req.Profile.CompanyName,
		"TargetRole":   req.TargetRole,
		"Facts":        bulleted(factLines),
		"JobListings":  bulleted(jobLines(req.Profile.JobListings)),
	})

	body, err := d.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &Error{Message: "draft generation failed", Cause: err}
	}
	body = strings.TrimSpace(body)

	return &Draft{
		Body:       body,
		Facts:      factLines,
		Contact:    req.Contact.Name,
		Violations: CheckDraft(body, req.Profile.CompanyName, factLines),
	}, nil
}

func bulleted(lines []string) string {
	if len(lines) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("- ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func jobLines(listings []types.JobListing) []string {
	var lines []string
	for _, l := range listings {
		line := l.Title
		if l.ApplyURL != "" {
			line += " (" + l.ApplyURL + ")"
		}
		lines = append(lines, line)
	}
	return lines
}
