package config

import (
	"context"
	"fmt"

	"github.com/cognicore/newsprism/pkg/newsprism/cache"
	"github.com/cognicore/newsprism/pkg/newsprism/engine"
	"github.com/cognicore/newsprism/pkg/newsprism/engine/gazetteer"
	"github.com/cognicore/newsprism/pkg/newsprism/engine/lexical"
	"github.com/cognicore/newsprism/pkg/newsprism/normalize"
)

// Components holds the constructed pipeline collaborators.
type Components struct {
	Normalizer *normalize.Normalizer
	Registry   *engine.Registry
	Store      cache.Store
}

// Build constructs all components from the configuration: per-language
// stopword sets, analysis engines, and the cache store. English falls
// back to the built-in lexicon, gazetteer, and stopwords when no paths
// are given.
func (c *Config) Build(ctx context.Context) (*Components, error) {
	registry := engine.NewRegistry()
	stopwords := make(map[string][]string, len(c.Languages))

	for lang, lc := range c.Languages {
		terms, err := c.stopwordsFor(lang, lc)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		stopwords[lang] = terms

		classifier, err := c.classifierFor(lang, lc)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		recognizer, err := c.recognizerFor(lang, lc)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}

		if err := registry.Register(lang, engine.Pair{Classifier: classifier, Recognizer: recognizer}); err != nil {
			return nil, err
		}
	}

	store, err := c.buildStore(ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Normalizer: normalize.New(stopwords, registry.SupportedLanguages()),
		Registry:   registry,
		Store:      store,
	}, nil
}

func (c *Config) stopwordsFor(lang string, lc LanguageConfig) ([]string, error) {
	if len(lc.Stopwords) > 0 {
		return lc.Stopwords, nil
	}
	if lc.StopwordsPath != "" {
		sw, err := LoadStopwords(lc.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		return sw.Terms, nil
	}
	if lang == "en" {
		return normalize.EnglishStopwords(), nil
	}
	return nil, fmt.Errorf("no stopwords configured")
}

func (c *Config) classifierFor(lang string, lc LanguageConfig) (engine.SentimentClassifier, error) {
	if lc.LexiconPath != "" {
		lex, err := lexical.LoadLexicon(lc.LexiconPath)
		if err != nil {
			return nil, err
		}
		return lexical.New(lex, c.NeutralFloor), nil
	}
	if lang == "en" {
		return lexical.New(lexical.EnglishLexicon(), c.NeutralFloor), nil
	}
	return nil, fmt.Errorf("no lexicon configured")
}

func (c *Config) recognizerFor(lang string, lc LanguageConfig) (engine.EntityRecognizer, error) {
	if lc.GazetteerPath != "" {
		g, err := gazetteer.LoadGazetteer(lc.GazetteerPath)
		if err != nil {
			return nil, err
		}
		return gazetteer.New(g), nil
	}
	if lang == "en" {
		return gazetteer.New(gazetteer.EnglishGazetteer()), nil
	}
	return nil, fmt.Errorf("no gazetteer configured")
}

func (c *Config) buildStore(ctx context.Context) (cache.Store, error) {
	if c.CachePath != "" {
		store, err := cache.OpenSQLite(ctx, c.CachePath)
		if err != nil {
			return nil, fmt.Errorf("open cache db: %w", err)
		}
		return store, nil
	}
	return cache.NewMemory(c.CacheCapacity)
}
