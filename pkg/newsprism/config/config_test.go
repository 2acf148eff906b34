package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.TimeoutDuration() != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.TimeoutDuration())
	}
	if cfg.GetWorkers() != 4 {
		t.Errorf("workers = %d, want 4", cfg.GetWorkers())
	}
	if cfg.GetTopEntities() != 10 {
		t.Errorf("top entities = %d, want 10", cfg.GetTopEntities())
	}
	if _, ok := cfg.Languages["en"]; !ok {
		t.Error("default config must support english")
	}
}

func TestLoadEmptyPathGivesDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GetWorkers() != 4 || cfg.AnalysisTimeout != "30s" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
analysis_timeout: 5s
workers: 2
top_entities: 3
sources:
  - name: wire
    url: https://example.com/rss
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.TimeoutDuration())
	}
	if cfg.Workers != 2 || cfg.TopEntities != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0].Name != "wire" {
		t.Errorf("unexpected sources: %+v", cfg.Sources)
	}
	// Unset fields keep their defaults.
	if _, ok := cfg.Languages["en"]; !ok {
		t.Error("english default lost on load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative cache capacity", func(c *Config) { c.CacheCapacity = -1 }},
		{"neutral floor out of range", func(c *Config) { c.NeutralFloor = 1.0 }},
		{"bad timeout", func(c *Config) { c.AnalysisTimeout = "soon" }},
		{"no languages", func(c *Config) { c.Languages = nil }},
		{"non-english without resources", func(c *Config) {
			c.Languages["de"] = LanguageConfig{Stopwords: []string{"der", "die"}}
		}},
		{"non-english without stopwords", func(c *Config) {
			c.Languages["de"] = LanguageConfig{LexiconPath: "x.yaml", GazetteerPath: "y.yaml"}
		}},
		{"source without name", func(c *Config) {
			c.Sources = []Source{{URL: "https://example.com/rss"}}
		}},
		{"source with bad scheme", func(c *Config) {
			c.Sources = []Source{{Name: "wire", URL: "ftp://example.com/rss"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadStopwords(t *testing.T) {
	path := writeFile(t, "stopwords.yaml", "terms: [der, die, das]\n")
	sw, err := LoadStopwords(path)
	if err != nil {
		t.Fatalf("load stopwords: %v", err)
	}
	if len(sw.Terms) != 3 || sw.Terms[0] != "der" {
		t.Errorf("unexpected terms: %v", sw.Terms)
	}
}

func TestBuildDefaults(t *testing.T) {
	comps, err := Default().Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer comps.Store.Close()

	if comps.Normalizer == nil || comps.Registry == nil || comps.Store == nil {
		t.Fatal("expected all components to be constructed")
	}
	if langs := comps.Registry.SupportedLanguages(); len(langs) != 1 || langs[0] != "en" {
		t.Errorf("supported languages = %v, want [en]", langs)
	}
}

func TestBuildWithConfiguredLanguage(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "lexicon.yaml")
	gazPath := filepath.Join(dir, "gazetteer.yaml")
	if err := os.WriteFile(lexPath, []byte("positive: [gut]\nnegative: [schlecht]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gazPath, []byte("places: [Berlin]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Languages["de"] = LanguageConfig{
		Stopwords:     []string{"der", "die", "das", "und"},
		LexiconPath:   lexPath,
		GazetteerPath: gazPath,
	}

	comps, err := cfg.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer comps.Store.Close()

	if langs := comps.Registry.SupportedLanguages(); len(langs) != 2 {
		t.Errorf("supported languages = %v, want en and de", langs)
	}
	if _, err := comps.Registry.For("de"); err != nil {
		t.Errorf("resolve de engines: %v", err)
	}
}

func TestBuildSQLiteStore(t *testing.T) {
	cfg := Default()
	cfg.CachePath = filepath.Join(t.TempDir(), "cache.db")

	comps, err := cfg.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer comps.Store.Close()

	if comps.Store.Len() != 0 {
		t.Errorf("fresh store should be empty, has %d", comps.Store.Len())
	}
}
