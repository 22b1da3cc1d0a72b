package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/config"
	"github.com/jonathan/outreach-agent/internal/db"
	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/outreach"
	"github.com/jonathan/outreach-agent/internal/resolve"
	"github.com/jonathan/outreach-agent/internal/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft an outreach message for a company contact",
	Long:  "Resolves (or loads) a company profile, extracts grounded facts with the LLM, and drafts a short outreach message to the best-ranked contact. Guardrail violations are reported with the draft.",
	RunE:  runDraft,
}

var (
	draftURL        string
	draftTargetRole string
	draftContact    string
	draftAPIKey     string
	draftConfigPath string
	draftOutPath    string
	draftSave       bool
	draftJSON       bool
)

func init() {
	draftCmd.Flags().StringVarP(&draftURL, "url", "u", "", "Company website URL or bare domain (required)")
	draftCmd.Flags().StringVarP(&draftTargetRole, "target-role", "r", "", "Role being pursued (required)")
	draftCmd.Flags().StringVar(&draftContact, "contact", "", "Contact name to address (default: best-ranked contact)")
	draftCmd.Flags().StringVar(&draftAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	draftCmd.Flags().StringVarP(&draftConfigPath, "config", "c", "", "Path to JSON config file")
	draftCmd.Flags().StringVarP(&draftOutPath, "out", "o", "", "Write the draft JSON to a file instead of stdout")
	draftCmd.Flags().BoolVar(&draftSave, "save", false, "Persist the draft to the configured database")
	draftCmd.Flags().BoolVar(&draftJSON, "json", false, "Print the full draft as JSON instead of plain text")

	if err := draftCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := draftCmd.MarkFlagRequired("target-role"); err != nil {
		panic(fmt.Sprintf("failed to mark target-role flag as required: %v", err))
	}

	rootCmd.AddCommand(draftCmd)
}

func runDraft(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(draftConfigPath)
	if err != nil {
		return err
	}
	cfg.TargetRole = draftTargetRole

	// Get API key from flag or environment
	apiKey := draftAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	ctx := context.Background()
	resolver, database, err := buildResolver(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	profile, err := loadOrResolveProfile(ctx, resolver, database, cfg)
	if err != nil {
		return err
	}

	contact, err := pickContact(profile, draftContact)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	draft, err := outreach.NewDrafter(client).Draft(ctx, &outreach.DraftRequest{
		Profile:    profile,
		Contact:    contact,
		TargetRole: cfg.TargetRole,
	})
	if err != nil {
		return fmt.Errorf("failed to draft message: %w", err)
	}

	if database != nil && draftSave {
		company, err := database.UpsertCompany(ctx, profile.BaseDomain, profile.CompanyName, profile.CompanyURL)
		if err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}
		msg, err := database.CreateOutreachMessage(ctx, company.ID, contact.Name, cfg.TargetRole, draft.Body)
		if err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Draft saved with ID %s\n", msg.ID)
	}

	return printDraft(draft)
}

// loadOrResolveProfile reuses a fresh stored profile when the database has
// one; otherwise it resolves the company from scratch.
func loadOrResolveProfile(ctx context.Context, resolver *resolve.Resolver, database *db.DB, cfg *config.Config) (*types.CompanyProfile, error) {
	if database != nil && !cfg.NoCache {
		normalized, err := resolve.NormalizeCompanyURL(draftURL)
		if err != nil {
			return nil, err
		}
		maxAge := cfg.CacheTTL()
		if maxAge == 0 {
			maxAge = fetch.DefaultCacheTTL
		}
		company, err := database.GetCompanyByDomain(ctx, resolve.BaseDomain(normalized))
		if err != nil {
			return nil, err
		}
		if company != nil {
			artifact, err := database.GetFreshProfile(ctx, company.ID, maxAge)
			if err != nil {
				return nil, err
			}
			if artifact != nil && artifact.Profile != nil {
				fmt.Fprintf(os.Stderr, "Using stored profile from %s\n", artifact.ResolvedAt.Format("2006-01-02 15:04"))
				return artifact.Profile, nil
			}
		}
	}

	profile, err := resolver.Resolve(ctx, draftURL, resolveOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("resolution failed: %w", err)
	}
	return profile, nil
}

// pickContact selects the contact to address: an explicit name match when
// given, otherwise the best-ranked contact.
func pickContact(profile *types.CompanyProfile, name string) (*types.ExtractedContact, error) {
	if len(profile.Contacts) == 0 {
		return nil, fmt.Errorf("no contacts found for %s; try resolving the team or about page", profile.BaseDomain)
	}
	if name == "" {
		return &profile.Contacts[0], nil
	}
	for i := range profile.Contacts {
		if strings.EqualFold(profile.Contacts[i].Name, name) {
			return &profile.Contacts[i], nil
		}
	}
	return nil, fmt.Errorf("contact %q not found; known contacts: %s", name, contactNames(profile.Contacts))
}

func contactNames(contacts []types.ExtractedContact) string {
	names := make([]string, len(contacts))
	for i, c := range contacts {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func printDraft(draft *outreach.Draft) error {
	if draftJSON || draftOutPath != "" {
		output, err := json.MarshalIndent(draft, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal draft: %w", err)
		}
		if draftOutPath != "" {
			if err := os.WriteFile(draftOutPath, output, 0644); err != nil {
				return fmt.Errorf("failed to write draft file %s: %w", draftOutPath, err)
			}
			fmt.Printf("Draft written to %s\n", draftOutPath)
			return nil
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(draft.Body)
	if len(draft.Violations) > 0 {
		fmt.Fprintln(os.Stderr, "\nGuardrail violations:")
		for _, v := range draft.Violations {
			fmt.Fprintf(os.Stderr, "  - %s: %s\n", v.Check, v.Details)
		}
	}
	return nil
}
