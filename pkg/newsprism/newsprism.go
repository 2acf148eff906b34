// Package newsprism is the article analysis pipeline facade. It takes a
// batch of raw fetched articles, deduplicates and normalizes them, runs
// sentiment classification and entity recognition behind a fingerprint-
// keyed cache, and aggregates the results into a dashboard summary.
package newsprism

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/cache"
	"github.com/cognicore/newsprism/pkg/newsprism/engine"
	"github.com/cognicore/newsprism/pkg/newsprism/fingerprint"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
	"github.com/cognicore/newsprism/pkg/newsprism/normalize"
	"github.com/cognicore/newsprism/pkg/newsprism/summarize"
)

// Options configures a Pipeline instance.
type Options struct {
	Normalizer *normalize.Normalizer
	Registry   *engine.Registry
	Cache      cache.Store

	// Workers bounds concurrent analyses; <= 0 uses 4.
	Workers int

	// Timeout bounds a batch's total wall time; <= 0 uses 30s.
	// Articles not completed by the deadline are marked unknown.
	Timeout time.Duration

	// TopEntities truncates the summary's entity ranking.
	TopEntities int

	Logger *logrus.Logger
}

// Pipeline coordinates normalize → fingerprint → cache → analyze →
// aggregate for batches of articles. The caller blocks until the batch
// completes or times out; internally work is parallel.
type Pipeline struct {
	normalizer *normalize.Normalizer
	registry   *engine.Registry
	loader     *cache.Loader
	workers    int
	timeout    time.Duration
	topN       int
	log        *logrus.Logger

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a Pipeline with the given dependencies. The cache is
// injected, never ambient: tests get isolated instances.
func New(opts Options) *Pipeline {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Pipeline{
		normalizer: opts.Normalizer,
		registry:   opts.Registry,
		loader:     cache.NewLoader(opts.Cache, log),
		workers:    workers,
		timeout:    timeout,
		topN:       opts.TopEntities,
		log:        log,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the pipeline's cache store.
func (p *Pipeline) Close() error {
	return p.loader.Store().Close()
}

// BatchResult is what a batch run hands back to the web layer.
type BatchResult struct {
	// Annotated preserves the input article order regardless of
	// worker completion order.
	Annotated []article.Annotated

	Summary summarize.DashboardSummary
}

// unit is one representative article scheduled for analysis.
type unit struct {
	idx  int
	norm article.Normalized
	fp   article.Fingerprint
}

// AnalyzeBatch runs the full pipeline over a batch. No per-article
// failure is fatal: skipped and degraded articles are counted in the
// summary and the batch always returns a best-effort result.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, raws []article.Raw) (*BatchResult, error) {
	batchID := p.newBatchID()
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	annotated := make([]article.Annotated, len(raws))
	groups := make(map[article.Fingerprint][]int)
	var reps []unit

	// Phase 1: normalize and fingerprint; group duplicates, keeping
	// the first occurrence as the representative.
	for i, raw := range raws {
		annotated[i] = article.Annotated{Raw: raw}

		norm, err := p.normalizer.Normalize(raw)
		if err != nil {
			annotated[i].Skipped = true
			annotated[i].SkipReason = err.Error()
			p.log.WithFields(logrus.Fields{"batch": batchID, "url": raw.URL}).
				WithError(err).Info("article skipped")
			continue
		}

		fp := fingerprint.FromNormalized(norm)
		if idxs, ok := groups[fp]; ok {
			groups[fp] = append(idxs, i)
			annotated[i].Duplicate = true
			continue
		}
		groups[fp] = []int{i}
		reps = append(reps, unit{idx: i, norm: norm, fp: fp})
	}

	// Phase 2: analyze representatives on a bounded worker pool.
	// Workers write to disjoint indexes, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, u := range reps {
		u := u
		g.Go(func() error {
			annotated[u.idx].Result = p.analyzeOne(gctx, batchID, u)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	// Phase 3: propagate each representative's result to its duplicates.
	for _, idxs := range groups {
		for _, i := range idxs[1:] {
			annotated[i].Result = annotated[idxs[0]].Result
		}
	}

	summary := summarize.Summarize(annotated, summarize.Options{TopN: p.topN, BatchID: batchID})

	p.log.WithFields(logrus.Fields{
		"batch":      batchID,
		"articles":   len(raws),
		"analyzed":   summary.AnalyzedCount,
		"duplicates": summary.DuplicateCount,
		"skipped":    summary.SkippedCount,
		"degraded":   summary.DegradedCount,
		"elapsed":    time.Since(started).Round(time.Millisecond).String(),
	}).Info("batch complete")

	return &BatchResult{Annotated: annotated, Summary: summary}, nil
}

// analyzeOne resolves one representative through the cache loader.
// Every failure mode degrades to an unknown result; nothing propagates
// up as a batch error.
func (p *Pipeline) analyzeOne(ctx context.Context, batchID string, u unit) article.AnalysisResult {
	res, _, err := p.loader.GetOrCompute(ctx, u.fp, func(cctx context.Context) (article.AnalysisResult, error) {
		return p.analyze(cctx, u.norm, u.fp)
	})
	switch {
	case err == nil:
		return res
	case errors.Is(err, internalerr.ErrCacheUnavailable):
		// Degraded mode: the result was computed fresh but not cached.
		return res
	default:
		reason := "analysis failed"
		if ctx.Err() != nil {
			reason = internalerr.ErrBatchTimeout.Error()
		}
		p.log.WithFields(logrus.Fields{"batch": batchID, "url": u.norm.Raw.URL}).
			WithError(err).Warnf("article degraded: %s", reason)
		return unknownResult(u.fp)
	}
}

// analyze dispatches the classifier and recognizer concurrently and
// joins their outputs. An error from either engine fails the whole
// computation so that incomplete results never enter the cache.
func (p *Pipeline) analyze(ctx context.Context, norm article.Normalized, fp article.Fingerprint) (article.AnalysisResult, error) {
	pair, err := p.registry.For(norm.Language)
	if err != nil {
		return article.AnalysisResult{}, err
	}

	var (
		ents   []article.EntityMention
		entErr error
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		ents, entErr = pair.Recognizer.Extract(ctx, norm)
	}()

	sent, sentErr := pair.Classifier.Classify(ctx, norm)
	<-done

	if sentErr != nil {
		return article.AnalysisResult{}, sentErr
	}
	if entErr != nil {
		return article.AnalysisResult{}, entErr
	}

	return article.AnalysisResult{
		Fingerprint: fp,
		Sentiment:   sent,
		Entities:    ents,
		AnalyzedAt:  time.Now().UTC(),
	}, nil
}

func unknownResult(fp article.Fingerprint) article.AnalysisResult {
	return article.AnalysisResult{
		Fingerprint: fp,
		Sentiment:   article.Sentiment{Label: article.SentimentUnknown},
		AnalyzedAt:  time.Now().UTC(),
	}
}

func (p *Pipeline) newBatchID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ulid.MustNew(ulid.Now(), p.entropy).String()
}
