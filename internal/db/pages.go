package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/outreach-agent/internal/fetch"
)

// PageStore is a Postgres-backed fetch.PageCache. It lets cached pages
// survive process restarts and be shared across workers, unlike the default
// in-memory cache.
type PageStore struct {
	db *DB
}

// NewPageStore creates a page store over an open connection.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// Get implements fetch.PageCache: the cached result for url if younger than
// maxAge, or (nil, nil) on a miss.
func (s *PageStore) Get(ctx context.Context, url string, maxAge time.Duration) (*fetch.Result, error) {
	var res fetch.Result
	err := s.db.pool.QueryRow(ctx,
		`SELECT url, html, text, title, status_code, fetched_at
		 FROM cached_pages WHERE url = $1`,
		url,
	).Scan(&res.URL, &res.HTML, &res.Text, &res.Title, &res.StatusCode, &res.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}

	if maxAge > 0 && time.Since(res.FetchedAt) > maxAge {
		return nil, nil
	}
	return &res, nil
}

// Put implements fetch.PageCache.
func (s *PageStore) Put(ctx context.Context, url string, res *fetch.Result) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO cached_pages (url, html, text, title, status_code, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (url) DO UPDATE SET
		     html = $2, text = $3, title = $4, status_code = $5, fetched_at = $6`,
		url, res.HTML, res.Text, res.Title, res.StatusCode, res.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

// RecordFetchFailure notes that a URL failed to fetch, so operators can see
// which candidate URLs keep failing during resolution.
func (s *PageStore) RecordFetchFailure(ctx context.Context, url, reason string) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO fetch_failures (url, reason, failure_count, last_failed_at)
		 VALUES ($1, $2, 1, NOW())
		 ON CONFLICT (url) DO UPDATE SET
		     reason = $2,
		     failure_count = fetch_failures.failure_count + 1,
		     last_failed_at = NOW()`,
		url, reason,
	)
	if err != nil {
		return fmt.Errorf("failed to record fetch failure: %w", err)
	}
	return nil
}

// PruneExpired deletes cached pages older than maxAge and returns how many
// rows were removed.
func (s *PageStore) PruneExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	tag, err := s.db.pool.Exec(ctx,
		`DELETE FROM cached_pages WHERE fetched_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cached pages: %w", err)
	}
	return tag.RowsAffected(), nil
}
