package storage

import (
	"context"
	"log"
)

// CleanupFailure records one orphaned binary that could not be removed.
type CleanupFailure struct {
	URL string
	Err error
}

// CleanupResult is the explicit contract for best-effort binary deletion:
// failures are collected, never propagated, so the primary row write always
// proceeds. Operators grep the log for storage drift.
type CleanupResult struct {
	Attempted int
	failures  []CleanupFailure
}

func (r *CleanupResult) add(url string, err error) {
	r.failures = append(r.failures, CleanupFailure{URL: url, Err: err})
}

func (r *CleanupResult) Failed() []CleanupFailure { return r.failures }

func (r *CleanupResult) OK() bool { return len(r.failures) == 0 }

func (r *CleanupResult) LogAll() {
	for _, f := range r.failures {
		log.Printf("[ERROR] orphaned binary not deleted: %s: %v", f.URL, f.Err)
	}
}

// CleanupURLs deletes each object best-effort and reports what stuck around.
func CleanupURLs(ctx context.Context, store ObjectStore, urls []string) *CleanupResult {
	res := &CleanupResult{}
	for _, u := range urls {
		if u == "" {
			continue
		}
		res.Attempted++
		if err := store.DeleteByURL(ctx, u); err != nil {
			res.add(u, err)
		}
	}
	return res
}
