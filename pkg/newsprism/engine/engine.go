// Package engine defines the contracts the pipeline depends on for
// sentiment classification and entity recognition, plus a per-language
// registry of concrete implementations. Any implementation exposing
// Classify/Extract with these contracts is substitutable; the pipeline
// never depends on a concrete engine.
package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// SentimentClassifier assigns a polarity label with a confidence score.
type SentimentClassifier interface {
	Classify(ctx context.Context, n article.Normalized) (article.Sentiment, error)
}

// EntityRecognizer extracts named-entity mentions from an article.
// Mentions with identical (text, type) must be deduplicated; overlapping
// spans resolve by preferring the longer span.
type EntityRecognizer interface {
	Extract(ctx context.Context, n article.Normalized) ([]article.EntityMention, error)
}

// Pair bundles the two engines configured for one language.
type Pair struct {
	Classifier SentimentClassifier
	Recognizer EntityRecognizer
}

// Registry is a thread-safe mapping of language codes to engine pairs.
// The set of registered languages is what the normalizer treats as
// supported.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Pair
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Pair)}
}

// Register adds an engine pair for a language. Duplicate registrations
// overwrite the previous entry.
func (r *Registry) Register(lang string, p Pair) error {
	if lang == "" {
		return fmt.Errorf("%w: language code cannot be empty", internalerr.ErrInvalidConfig)
	}
	if p.Classifier == nil || p.Recognizer == nil {
		return fmt.Errorf("%w: language %q needs both a classifier and a recognizer", internalerr.ErrInvalidConfig, lang)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[lang] = p
	return nil
}

// For returns the engine pair for a language. A missing language yields
// ErrAnalysisUnavailable, which the pipeline treats as a per-article
// unknown result, never a batch failure.
func (r *Registry) For(lang string) (Pair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.engines[lang]
	if !ok {
		return Pair{}, fmt.Errorf("%w: no engines registered for language %q", internalerr.ErrAnalysisUnavailable, lang)
	}
	return p, nil
}

// SupportedLanguages returns the registered language codes, sorted.
func (r *Registry) SupportedLanguages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.engines))
	for lang := range r.engines {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
