package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/outreach-agent/internal/types"
)

// DefaultBatchConcurrency bounds the worker pool when none is specified.
const DefaultBatchConcurrency = 4

// BatchResult pairs one company URL with its resolution outcome.
type BatchResult struct {
	CompanyURL string
	Profile    *types.CompanyProfile
	Err        error
}

// ResolveBatch resolves multiple companies with a bounded worker pool.
// Results come back in input order, and one company's validation failure
// never stops the rest; per-host pacing is the fetcher's job, so parallel
// companies do not hammer a shared host.
func (r *Resolver) ResolveBatch(ctx context.Context, companyURLs []string, opts *Options, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]BatchResult, len(companyURLs))
	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for i, companyURL := range companyURLs {
		g.Go(func() error {
			profile, err := r.Resolve(ctx, companyURL, opts)
			results[i] = BatchResult{CompanyURL: companyURL, Profile: profile, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
