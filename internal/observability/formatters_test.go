package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outreach-agent/internal/types"
)

func TestPrintResolution(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.CompanyProfile{
		CompanyName: "Acme",
		BaseDomain:  "acme.com",
		Results: map[types.PageType]types.PageResult{
			types.PageCareers: {
				Type:     types.PageCareers,
				Status:   types.PageResolved,
				Strategy: "subdomain",
				Page:     &types.PageRecord{URL: "https://careers.acme.com"},
			},
			types.PageTeam: {
				Type:   types.PageTeam,
				Status: types.PageFailed,
				Reason: "no strategy yielded sufficient content",
			},
		},
		Meta: types.ResolutionMeta{PagesAttempted: 2, PagesSucceeded: 1, SuccessRate: 0.5},
	}

	p.PrintResolution(profile)
	out := buf.String()
	assert.Contains(t, out, "Acme (acme.com)")
	assert.Contains(t, out, "1/2 resolved (50%)")
	assert.Contains(t, out, "careers.acme.com")
	assert.Contains(t, out, "✗ team")
}

func TestPrintResolution_NilProfile(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResolution(nil)
	assert.Empty(t, buf.String())
}

func TestPrintContacts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContacts([]types.ExtractedContact{
		{Name: "Jane Doe", Title: "Head of Talent", Email: "jane@acme.com", Score: 0.9},
		{Name: "John Smith", Score: 0.3},
	})

	out := buf.String()
	assert.Contains(t, out, "Jane Doe (0.90)")
	assert.Contains(t, out, "Head of Talent")
	assert.Contains(t, out, "jane@acme.com")
	assert.Contains(t, out, "John Smith")
}

func TestPrintContacts_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContacts(nil)
	assert.Contains(t, buf.String(), "No contacts found")
}

func TestPrintJobListings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobListings([]types.JobListing{
		{Title: "Senior Software Engineer", ApplyURL: "https://acme.com/jobs/1", MatchScore: 1.0},
		{Title: "Product Manager"},
	})

	out := buf.String()
	assert.Contains(t, out, "Senior Software Engineer (1.00)")
	assert.Contains(t, out, "Product Manager")
}
