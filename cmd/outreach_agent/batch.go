package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve a list of companies",
	Long:  "Reads company URLs from a file (one per line, # comments allowed), resolves them with a bounded worker pool, and writes one profile JSON per company to the output directory.",
	RunE:  runBatch,
}

var (
	batchFile        string
	batchTargetRole  string
	batchConcurrency int
	batchOutputDir   string
	batchConfigPath  string
	batchSave        bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "File of company URLs, one per line (required)")
	batchCmd.Flags().StringVarP(&batchTargetRole, "target-role", "r", "", "Role being pursued; ranks contacts and job listings")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Companies resolved in parallel (default: 4)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory for profile JSON files (required)")
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Persist profiles to the configured database")

	if err := batchCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	urls, err := readURLList(batchFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no company URLs found in %s", batchFile)
	}

	cfg, err := loadRunConfig(batchConfigPath)
	if err != nil {
		return err
	}
	if batchTargetRole != "" {
		cfg.TargetRole = batchTargetRole
	}
	if batchConcurrency > 0 {
		cfg.BatchConcurrency = batchConcurrency
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", batchOutputDir, err)
	}

	ctx := context.Background()
	resolver, database, err := buildResolver(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	results := resolver.ResolveBatch(ctx, urls, resolveOptions(cfg), cfg.BatchConcurrency)

	succeeded := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.CompanyURL, res.Err)
			continue
		}
		succeeded++

		profile := res.Profile
		fmt.Printf("✓ %s: %d/%d pages, %d contacts, %d job listings\n",
			profile.BaseDomain, profile.Meta.PagesSucceeded, profile.Meta.PagesAttempted,
			len(profile.Contacts), len(profile.JobListings))

		output, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile for %s: %w", profile.BaseDomain, err)
		}
		outPath := filepath.Join(batchOutputDir, profile.BaseDomain+".json")
		if err := os.WriteFile(outPath, output, 0644); err != nil {
			return fmt.Errorf("failed to write profile file %s: %w", outPath, err)
		}

		if database != nil && batchSave {
			if err := persistProfile(ctx, database, profile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	fmt.Printf("Resolved %d/%d companies\n", succeeded, len(results))
	return nil
}

// readURLList reads one URL per line, skipping blanks and # comments.
func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL list %s: %w", path, err)
	}
	return urls, nil
}
