// Package config defines the YAML configuration surface consumed by the
// pipeline and constructs ready-to-use components from it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// LanguageConfig wires one language's analysis resources. Paths are
// optional for English, which falls back to the built-in resources.
type LanguageConfig struct {
	Stopwords     []string `yaml:"stopwords,omitempty"`
	StopwordsPath string   `yaml:"stopwords_path,omitempty"`
	LexiconPath   string   `yaml:"lexicon_path,omitempty"`
	GazetteerPath string   `yaml:"gazetteer_path,omitempty"`
}

// Source is an RSS feed consumed by the fetch collaborator.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is the full configuration surface of the analysis core.
type Config struct {
	AnalysisTimeout string                    `yaml:"analysis_timeout,omitempty"`
	Workers         int                       `yaml:"workers,omitempty"`
	CacheCapacity   int                       `yaml:"cache_capacity,omitempty"`
	CachePath       string                    `yaml:"cache_path,omitempty"`
	TopEntities     int                       `yaml:"top_entities,omitempty"`
	NeutralFloor    float64                   `yaml:"neutral_floor,omitempty"`
	Languages       map[string]LanguageConfig `yaml:"languages,omitempty"`
	Sources         []Source                  `yaml:"sources,omitempty"`
}

// Default returns the configuration used when no file is given:
// English-only analysis with built-in resources, in-memory unbounded
// cache, 30s batch timeout.
func Default() *Config {
	return &Config{
		AnalysisTimeout: "30s",
		Workers:         4,
		TopEntities:     10,
		Languages:       map[string]LanguageConfig{"en": {}},
	}
}

// Load reads a configuration file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", internalerr.ErrInvalidConfig)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("%w: cache_capacity must be >= 0", internalerr.ErrInvalidConfig)
	}
	if c.NeutralFloor < 0 || c.NeutralFloor >= 1 {
		return fmt.Errorf("%w: neutral_floor must be in [0, 1)", internalerr.ErrInvalidConfig)
	}
	if c.AnalysisTimeout != "" {
		if _, err := time.ParseDuration(c.AnalysisTimeout); err != nil {
			return fmt.Errorf("%w: analysis_timeout: %v", internalerr.ErrInvalidConfig, err)
		}
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("%w: at least one language is required", internalerr.ErrInvalidConfig)
	}
	for lang, lc := range c.Languages {
		if lang != "en" {
			if lc.LexiconPath == "" || lc.GazetteerPath == "" {
				return fmt.Errorf("%w: language %q needs lexicon_path and gazetteer_path (built-ins cover only en)", internalerr.ErrInvalidConfig, lang)
			}
			if len(lc.Stopwords) == 0 && lc.StopwordsPath == "" {
				return fmt.Errorf("%w: language %q needs stopwords for detection", internalerr.ErrInvalidConfig, lang)
			}
		}
	}
	for i, s := range c.Sources {
		if s.Name == "" {
			return fmt.Errorf("%w: source %d: name is required", internalerr.ErrInvalidConfig, i)
		}
		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: source %q: url must be http or https", internalerr.ErrInvalidConfig, s.Name)
		}
	}
	return nil
}

// TimeoutDuration parses the batch timeout, defaulting to 30s.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.AnalysisTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetWorkers returns the worker pool size, defaulting to 4.
func (c *Config) GetWorkers() int {
	if c.Workers <= 0 {
		return 4
	}
	return c.Workers
}

// GetTopEntities returns the entity ranking size, defaulting to 10.
func (c *Config) GetTopEntities() int {
	if c.TopEntities <= 0 {
		return 10
	}
	return c.TopEntities
}

// Stopwords is the YAML shape of a stopword list file.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads a stopword list from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}
	return &sw, nil
}
