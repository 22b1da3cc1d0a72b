package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/outreach-agent/internal/config"
	"github.com/jonathan/outreach-agent/internal/db"
	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/resolve"
	"github.com/jonathan/outreach-agent/internal/types"
)

// loadRunConfig builds the effective configuration: config file values (when
// --config is given) filled in from the environment, then validated.
func loadRunConfig(configPath string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.LoadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildResolver wires a resolver from the configuration. When a database URL
// is configured the page cache is backed by PostgreSQL and the returned *db.DB
// is non-nil; the caller owns closing it.
func buildResolver(ctx context.Context, cfg *config.Config) (*resolve.Resolver, *db.DB, error) {
	clientCfg := fetch.DefaultClientConfig()
	if cfg.CacheTTL() > 0 {
		clientCfg.CacheTTL = cfg.CacheTTL()
	}
	if cfg.RequestDelay() > 0 {
		clientCfg.RequestDelay = cfg.RequestDelay()
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		database = conn
		clientCfg.Cache = db.NewPageStore(database)
	}

	return resolve.NewResolver(fetch.NewClient(clientCfg)), database, nil
}

// resolveOptions translates CLI-facing configuration into resolver options.
// Page types and manual URLs are validated later by Resolve itself.
func resolveOptions(cfg *config.Config) *resolve.Options {
	opts := resolve.DefaultOptions()
	opts.TargetRole = cfg.TargetRole
	opts.RenderAll = cfg.RenderAll
	opts.UseCache = !cfg.NoCache

	for _, pt := range cfg.PageTypes {
		opts.PageTypes = append(opts.PageTypes, types.PageType(pt))
	}
	if len(cfg.ManualURLs) > 0 {
		opts.ManualURLs = make(map[types.PageType]string, len(cfg.ManualURLs))
		for pt, u := range cfg.ManualURLs {
			opts.ManualURLs[types.PageType(pt)] = u
		}
	}
	return opts
}

// persistProfile upserts the company row and stores the profile artifact.
func persistProfile(ctx context.Context, database *db.DB, profile *types.CompanyProfile) error {
	company, err := database.UpsertCompany(ctx, profile.BaseDomain, profile.CompanyName, profile.CompanyURL)
	if err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	if _, err := database.SaveProfile(ctx, company.ID, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// recordFailures logs failed page types to the fetch failure table so repeat
// runs can see what has been failing. Errors here are reported, not fatal.
func recordFailures(ctx context.Context, database *db.DB, profile *types.CompanyProfile) {
	store := db.NewPageStore(database)
	for _, res := range profile.Results {
		if res.Status != types.PageFailed {
			continue
		}
		if err := store.RecordFetchFailure(ctx, profile.CompanyURL, fmt.Sprintf("%s: %s", res.Type, res.Reason)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record fetch failure: %v\n", err)
		}
	}
}
