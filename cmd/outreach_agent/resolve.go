package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/observability"
	"github.com/jonathan/outreach-agent/internal/schemas"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a company website into a structured profile",
	Long:  "Resolves the requested page types (about, careers, news, team) for a company, extracts contacts and job listings, and prints the profile as JSON.",
	RunE:  runResolve,
}

var (
	resolveURL        string
	resolveTargetRole string
	resolvePageTypes  []string
	resolveManualURLs map[string]string
	resolveRenderAll  bool
	resolveNoCache    bool
	resolveConfigPath string
	resolveOutPath    string
	resolveSave       bool
	resolveVerbose    bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveURL, "url", "u", "", "Company website URL or bare domain (required)")
	resolveCmd.Flags().StringVarP(&resolveTargetRole, "target-role", "r", "", "Role being pursued; ranks contacts and job listings")
	resolveCmd.Flags().StringSliceVar(&resolvePageTypes, "page-types", nil, "Page types to resolve (default: all of about,careers,news,team)")
	resolveCmd.Flags().StringToStringVar(&resolveManualURLs, "manual-url", nil, "Manual page URL override, e.g. careers=https://jobs.acme.com")
	resolveCmd.Flags().BoolVar(&resolveRenderAll, "render-all", false, "Browser-render every page type, not just careers")
	resolveCmd.Flags().BoolVar(&resolveNoCache, "no-cache", false, "Bypass the page cache")
	resolveCmd.Flags().StringVarP(&resolveConfigPath, "config", "c", "", "Path to JSON config file")
	resolveCmd.Flags().StringVarP(&resolveOutPath, "out", "o", "", "Write the profile JSON to a file instead of stdout")
	resolveCmd.Flags().BoolVar(&resolveSave, "save", false, "Persist the profile to the configured database")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print a human-readable resolution summary")

	if err := resolveCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(resolveConfigPath)
	if err != nil {
		return err
	}

	// CLI flags override config file values.
	if resolveTargetRole != "" {
		cfg.TargetRole = resolveTargetRole
	}
	if len(resolvePageTypes) > 0 {
		cfg.PageTypes = resolvePageTypes
	}
	if len(resolveManualURLs) > 0 {
		cfg.ManualURLs = resolveManualURLs
	}
	if resolveRenderAll {
		cfg.RenderAll = true
	}
	if resolveNoCache {
		cfg.NoCache = true
	}

	ctx := context.Background()
	resolver, database, err := buildResolver(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	profile, err := resolver.Resolve(ctx, resolveURL, resolveOptions(cfg))
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	if resolveVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResolution(profile)
		printer.PrintContacts(profile.Contacts)
		printer.PrintJobListings(profile.JobListings)
	}

	if database != nil {
		recordFailures(ctx, database, profile)
		if resolveSave {
			if err := persistProfile(ctx, database, profile); err != nil {
				return err
			}
		}
	}

	output, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/company_profile.schema.json"); schemaPath != "" {
		schemaData, readErr := os.ReadFile(schemaPath)
		if readErr == nil {
			if err := schemas.ValidateJSONString(string(schemaData), string(output)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: profile failed schema validation: %v\n", err)
			}
		}
	}

	if resolveOutPath != "" {
		if err := os.WriteFile(resolveOutPath, output, 0644); err != nil {
			return fmt.Errorf("failed to write profile file %s: %w", resolveOutPath, err)
		}
		fmt.Printf("Profile written to %s\n", resolveOutPath)
		return nil
	}

	fmt.Println(string(output))
	return nil
}
