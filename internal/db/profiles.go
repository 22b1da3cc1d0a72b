package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/outreach-agent/internal/types"
)

// UpsertCompany creates or refreshes a company record keyed by base domain
// and returns it.
func (db *DB) UpsertCompany(ctx context.Context, baseDomain, name, companyURL string) (*Company, error) {
	var c Company
	err := db.pool.QueryRow(ctx,
		`INSERT INTO companies (base_domain, name, company_url)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (base_domain) DO UPDATE SET
		     name = $2, company_url = $3, updated_at = NOW()
		 RETURNING id, base_domain, name, company_url, created_at, updated_at`,
		baseDomain, name, companyURL,
	).Scan(&c.ID, &c.BaseDomain, &c.Name, &c.CompanyURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert company: %w", err)
	}
	return &c, nil
}

// GetCompanyByDomain retrieves a company by base domain, or nil when absent.
func (db *DB) GetCompanyByDomain(ctx context.Context, baseDomain string) (*Company, error) {
	var c Company
	err := db.pool.QueryRow(ctx,
		`SELECT id, base_domain, name, company_url, created_at, updated_at
		 FROM companies WHERE base_domain = $1`,
		baseDomain,
	).Scan(&c.ID, &c.BaseDomain, &c.Name, &c.CompanyURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// SaveProfile stores a resolved CompanyProfile as the company's current
// profile artifact.
func (db *DB) SaveProfile(ctx context.Context, companyID uuid.UUID, profile *types.CompanyProfile) (*ProfileArtifact, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	artifact := &ProfileArtifact{CompanyID: companyID, Profile: profile}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profile_artifacts (company_id, profile, resolved_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (company_id) DO UPDATE SET
		     profile = $2, resolved_at = $3, created_at = NOW()
		 RETURNING id, resolved_at, created_at`,
		companyID, payload, profile.Meta.ResolvedAt,
	).Scan(&artifact.ID, &artifact.ResolvedAt, &artifact.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return artifact, nil
}

// GetFreshProfile retrieves the company's profile artifact only if it was
// resolved within maxAge; a stale or missing artifact returns nil so the
// caller re-resolves.
func (db *DB) GetFreshProfile(ctx context.Context, companyID uuid.UUID, maxAge time.Duration) (*ProfileArtifact, error) {
	var artifact ProfileArtifact
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, company_id, profile, resolved_at, created_at
		 FROM profile_artifacts WHERE company_id = $1`,
		companyID,
	).Scan(&artifact.ID, &artifact.CompanyID, &payload, &artifact.ResolvedAt, &artifact.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if artifact.IsStale(maxAge) {
		return nil, nil
	}
	if err := json.Unmarshal(payload, &artifact.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &artifact, nil
}

// ListCompanies retrieves recently updated companies.
func (db *DB) ListCompanies(ctx context.Context, limit int) ([]Company, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, base_domain, name, company_url, created_at, updated_at
		 FROM companies ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.BaseDomain, &c.Name, &c.CompanyURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}
