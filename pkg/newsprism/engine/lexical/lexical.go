// Package lexical implements a valence-lexicon sentiment classifier.
// It counts positive and negative word hits over the normalized token
// stream, flips polarity inside a negation window, and reports a
// confidence derived from the hit margin. Lightweight by design: it can
// be swapped for a heavier model without touching the pipeline.
package lexical

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// negationWindow is how many preceding tokens a negator reaches.
const negationWindow = 2

// Lexicon stores the word lists the classifier scores against.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Negators []string `yaml:"negators"`
}

// LoadLexicon reads a lexicon from a YAML file.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("%w: read lexicon: %v", internalerr.ErrAnalysisUnavailable, err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("%w: parse lexicon %s: %v", internalerr.ErrAnalysisUnavailable, path, err)
	}
	if len(lex.Positive) == 0 && len(lex.Negative) == 0 {
		return Lexicon{}, fmt.Errorf("%w: lexicon %s has no valence words", internalerr.ErrAnalysisUnavailable, path)
	}
	return lex, nil
}

// Classifier scores articles against a valence lexicon.
type Classifier struct {
	positive     map[string]struct{}
	negative     map[string]struct{}
	negators     map[string]struct{}
	neutralFloor float64
}

// New creates a classifier. neutralFloor is the confidence below which
// the label collapses to neutral; pass 0 for the default (0.25).
func New(lex Lexicon, neutralFloor float64) *Classifier {
	if neutralFloor <= 0 {
		neutralFloor = 0.25
	}
	return &Classifier{
		positive:     toSet(lex.Positive),
		negative:     toSet(lex.Negative),
		negators:     toSet(lex.Negators),
		neutralFloor: neutralFloor,
	}
}

// Classify implements engine.SentimentClassifier.
func (c *Classifier) Classify(ctx context.Context, n article.Normalized) (article.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return article.Sentiment{}, err
	}

	var pos, neg float64
	for i, tok := range n.Tokens {
		hit := 0.0
		switch {
		case c.has(c.positive, tok):
			hit = 1.0
		case c.has(c.negative, tok):
			hit = -1.0
		default:
			continue
		}

		if c.negatedAt(n.Tokens, i) {
			hit = -hit
		}
		if hit > 0 {
			pos += hit
		} else {
			neg -= hit
		}
	}

	total := pos + neg
	if total == 0 {
		return article.Sentiment{Label: article.SentimentNeutral, Confidence: 0.5}, nil
	}

	// Margin of the winning polarity over the total valence hits.
	confidence := math.Abs(pos-neg) / total

	label := article.SentimentPositive
	if neg > pos {
		label = article.SentimentNegative
	}
	if confidence < c.neutralFloor {
		label = article.SentimentNeutral
		confidence = 1 - confidence
	}

	return article.Sentiment{Label: label, Confidence: confidence}, nil
}

// negatedAt reports whether any token in the negation window before
// position i is a negator.
func (c *Classifier) negatedAt(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if c.has(c.negators, tokens[j]) {
			return true
		}
	}
	return false
}

func (c *Classifier) has(set map[string]struct{}, tok string) bool {
	_, ok := set[tok]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
