// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResolution outputs a per-page-type summary of how resolution went.
func (p *Printer) PrintResolution(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s (%s)\n", profile.CompanyName, profile.BaseDomain))
	sb.WriteString(fmt.Sprintf("Pages:    %d/%d resolved (%.0f%%)\n",
		profile.Meta.PagesSucceeded, profile.Meta.PagesAttempted, profile.Meta.SuccessRate*100))
	sb.WriteString("\n")

	for _, pt := range types.AllPageTypes() {
		res, ok := profile.Results[pt]
		if !ok {
			continue
		}
		if res.Status == types.PageResolved {
			strategy := res.Strategy
			if res.Manual {
				strategy = "manual"
			}
			sb.WriteString(fmt.Sprintf("✓ %-8s %s [%s]\n", pt, res.Page.URL, strategy))
		} else {
			sb.WriteString(fmt.Sprintf("✗ %-8s %s\n", pt, res.Reason))
		}
	}

	p.printBox("COMPANY RESOLUTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContacts outputs the top extracted contacts with scores.
func (p *Printer) PrintContacts(contacts []types.ExtractedContact) {
	if len(contacts) == 0 {
		p.printBox("EXTRACTED CONTACTS", "No contacts found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d contacts:\n\n", len(contacts)))

	count := min(len(contacts), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := contacts[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%.2f)\n", i+1, c.Name, c.Score))
		if c.Title != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Title))
		}
		if c.Email != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Email))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(contacts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more contacts", len(contacts)-maxItemsToShow))
	}

	p.printBox("EXTRACTED CONTACTS", sb.String())
}

// PrintJobListings outputs the top extracted job listings with match scores.
func (p *Printer) PrintJobListings(listings []types.JobListing) {
	if len(listings) == 0 {
		p.printBox("JOB LISTINGS", "No job listings found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d listings:\n\n", len(listings)))

	count := min(len(listings), maxItemsToShow)
	for i := 0; i < count; i++ {
		l := listings[i]
		sb.WriteString(fmt.Sprintf("• %s", l.Title))
		if l.MatchScore > 0 {
			sb.WriteString(fmt.Sprintf(" (%.2f)", l.MatchScore))
		}
		sb.WriteString("\n")
		if l.ApplyURL != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", l.ApplyURL))
		}
	}

	if len(listings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more listings", len(listings)-maxItemsToShow))
	}

	p.printBox("JOB LISTINGS", strings.TrimSuffix(sb.String(), "\n"))
}
