// Command analyze-feed runs the article analysis pipeline over a JSONL
// file of fetched articles and prints the dashboard summary as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/newsprism/internal/newsfeed"
	"github.com/cognicore/newsprism/pkg/newsprism"
	"github.com/cognicore/newsprism/pkg/newsprism/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (optional, defaults apply)")
		dataPath   = flag.String("data", "", "Input JSONL file (required)")
		keyword    = flag.String("keyword", "", "Only analyze articles mentioning this keyword")
		verbose    = flag.Bool("verbose", false, "Include per-article results in the output")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *dataPath == "" {
		log.Fatal("--data required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	ctx := context.Background()

	components, err := cfg.Build(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to build components")
	}

	pipeline := newsprism.New(newsprism.Options{
		Normalizer:  components.Normalizer,
		Registry:    components.Registry,
		Cache:       components.Store,
		Workers:     cfg.GetWorkers(),
		Timeout:     cfg.TimeoutDuration(),
		TopEntities: cfg.GetTopEntities(),
		Logger:      log,
	})
	defer pipeline.Close()

	articles, err := newsfeed.LoadFromJSONL(*dataPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load articles")
	}
	articles = newsfeed.FilterByKeyword(articles, *keyword)
	log.WithField("articles", len(articles)).Info("Loaded articles")

	result, err := pipeline.AnalyzeBatch(ctx, articles)
	if err != nil {
		log.WithError(err).Fatal("Batch failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if *verbose {
		if err := enc.Encode(result); err != nil {
			log.WithError(err).Fatal("Failed to encode result")
		}
		return
	}
	if err := enc.Encode(result.Summary); err != nil {
		log.WithError(err).Fatal("Failed to encode summary")
	}
}
