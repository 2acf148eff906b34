// Package cache stores analysis results keyed by content fingerprint so
// that articles already seen are never re-analyzed. A miss is the normal
// path, not an error.
package cache

import (
	"context"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// Store is the interface for persisting and querying analysis results.
type Store interface {
	// Get returns the stored result for a fingerprint, if present.
	Get(ctx context.Context, fp article.Fingerprint) (article.AnalysisResult, bool, error)

	// Put stores a result, overwriting any previous entry for the
	// same fingerprint.
	Put(ctx context.Context, res article.AnalysisResult) error

	// Len returns the number of stored results.
	Len() int

	Close() error
}

// copyResult returns a deep copy so callers never share entity slices
// with the store's internal state.
func copyResult(r article.AnalysisResult) article.AnalysisResult {
	out := r
	if r.Entities != nil {
		out.Entities = make([]article.EntityMention, len(r.Entities))
		copy(out.Entities, r.Entities)
	}
	return out
}
