package cache

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// ComputeFunc analyzes one article and produces its result.
type ComputeFunc func(ctx context.Context) (article.AnalysisResult, error)

// Loader wraps a Store with a compute-once-per-fingerprint guarantee:
// when concurrent batches race on the same fingerprint, only one runs
// the analysis and the rest share its result. A failing store degrades
// the loader to compute-fresh rather than failing the caller.
type Loader struct {
	store Store
	group singleflight.Group
	log   *logrus.Logger
}

// NewLoader creates a Loader around the given store. A nil logger
// falls back to the logrus standard logger.
func NewLoader(store Store, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{store: store, log: log}
}

// Store exposes the underlying store.
func (l *Loader) Store() Store { return l.store }

// GetOrCompute returns the cached result for fp, or runs compute exactly
// once per fingerprint across concurrent callers and stores the outcome.
// The second return value reports whether the result came from cache.
func (l *Loader) GetOrCompute(ctx context.Context, fp article.Fingerprint, compute ComputeFunc) (article.AnalysisResult, bool, error) {
	res, ok, err := l.store.Get(ctx, fp)
	if err != nil {
		l.log.WithError(err).WithField("fingerprint", truncFP(fp)).
			Warn("cache unavailable, computing fresh")
		fresh, cerr := compute(ctx)
		if cerr != nil {
			return article.AnalysisResult{}, false, cerr
		}
		return fresh, false, fmt.Errorf("%w: %v", internalerr.ErrCacheUnavailable, err)
	}
	if ok {
		return res, true, nil
	}

	type outcome struct {
		res    article.AnalysisResult
		cached bool
	}

	v, err, _ := l.group.Do(string(fp), func() (interface{}, error) {
		// Another caller may have stored the result while we queued.
		if res, ok, err := l.store.Get(ctx, fp); err == nil && ok {
			return outcome{res: res, cached: true}, nil
		}

		res, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if err := l.store.Put(ctx, res); err != nil {
			l.log.WithError(err).WithField("fingerprint", truncFP(fp)).
				Warn("cache store failed, result not persisted")
		}
		return outcome{res: res}, nil
	})
	if err != nil {
		return article.AnalysisResult{}, false, err
	}

	o := v.(outcome)
	return o.res, o.cached, nil
}

func truncFP(fp article.Fingerprint) string {
	s := string(fp)
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
