package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/db"
	"github.com/jonathan/outreach-agent/internal/fetch"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List tracked companies and their outreach messages",
	Long:  "Lists companies stored in the database. With --domain, shows the outreach messages sent to that company instead.",
	RunE:  runHistory,
}

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Update the status of an outreach message",
	Long:  "Moves an outreach message through its lifecycle: drafted, approved, sent, replied, or rejected.",
	RunE:  runMark,
}

var pruneCacheCmd = &cobra.Command{
	Use:   "prune-cache",
	Short: "Delete expired pages from the cache",
	RunE:  runPruneCache,
}

var (
	historyDomain     string
	historyLimit      int
	historyConfigPath string

	markID         string
	markStatus     string
	markConfigPath string

	pruneMaxAgeHours int
	pruneConfigPath  string
)

func init() {
	historyCmd.Flags().StringVarP(&historyDomain, "domain", "d", "", "Show outreach messages for this base domain")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum companies to list")
	historyCmd.Flags().StringVarP(&historyConfigPath, "config", "c", "", "Path to JSON config file")

	markCmd.Flags().StringVar(&markID, "id", "", "Outreach message ID (required)")
	markCmd.Flags().StringVar(&markStatus, "status", "", "New status: drafted, approved, sent, replied, or rejected (required)")
	markCmd.Flags().StringVarP(&markConfigPath, "config", "c", "", "Path to JSON config file")
	if err := markCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}
	if err := markCmd.MarkFlagRequired("status"); err != nil {
		panic(fmt.Sprintf("failed to mark status flag as required: %v", err))
	}

	pruneCacheCmd.Flags().IntVar(&pruneMaxAgeHours, "older-than-hours", 0, "Delete pages older than this (default: configured cache TTL)")
	pruneCacheCmd.Flags().StringVarP(&pruneConfigPath, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(pruneCacheCmd)
}

// connectConfiguredDB loads config and requires a database URL.
func connectConfiguredDB(ctx context.Context, configPath string) (*db.DB, *time.Duration, error) {
	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("database required: set DATABASE_URL or 'database_url' in the config file")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	ttl := cfg.CacheTTL()
	return database, &ttl, nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, _, err := connectConfiguredDB(ctx, historyConfigPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if historyDomain != "" {
		company, err := database.GetCompanyByDomain(ctx, historyDomain)
		if err != nil {
			return err
		}
		if company == nil {
			return fmt.Errorf("no tracked company for domain %s", historyDomain)
		}
		messages, err := database.ListOutreachByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			fmt.Printf("No outreach messages for %s\n", company.Name)
			return nil
		}
		for _, msg := range messages {
			fmt.Printf("%s  [%s]  %s → %s (%s)\n",
				msg.ID, msg.Status, msg.ContactName, msg.TargetRole,
				msg.CreatedAt.Format("2006-01-02"))
		}
		return nil
	}

	companies, err := database.ListCompanies(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		fmt.Println("No tracked companies")
		return nil
	}
	for _, c := range companies {
		fmt.Printf("%-30s  %s\n", c.BaseDomain, c.Name)
	}
	return nil
}

func runMark(_ *cobra.Command, _ []string) error {
	messageID, err := uuid.Parse(markID)
	if err != nil {
		return fmt.Errorf("invalid message ID %q: %w", markID, err)
	}

	ctx := context.Background()
	database, _, err := connectConfiguredDB(ctx, markConfigPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.UpdateOutreachStatus(ctx, messageID, markStatus); err != nil {
		return err
	}

	msg, err := database.GetOutreachMessage(ctx, messageID)
	if err != nil {
		return err
	}
	fmt.Printf("Message %s is now %s\n", msg.ID, msg.Status)
	return nil
}

func runPruneCache(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, ttl, err := connectConfiguredDB(ctx, pruneConfigPath)
	if err != nil {
		return err
	}
	defer database.Close()

	maxAge := *ttl
	if pruneMaxAgeHours > 0 {
		maxAge = time.Duration(pruneMaxAgeHours) * time.Hour
	}
	if maxAge == 0 {
		maxAge = fetch.DefaultCacheTTL
	}

	pruned, err := db.NewPageStore(database).PruneExpired(ctx, maxAge)
	if err != nil {
		return err
	}
	fmt.Printf("Pruned %d expired pages\n", pruned)
	return nil
}
