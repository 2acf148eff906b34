// Command fetch-rss pulls articles from the configured RSS feeds and
// writes them as JSONL for analyze-feed to consume. It stands in for
// whatever upstream fetch service feeds the pipeline in production.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/newsprism/internal/newsfeed"
	"github.com/cognicore/newsprism/pkg/newsprism/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file with feed sources (required)")
		outPath    = flag.String("out", "articles.jsonl", "Output JSONL file")
		timeout    = flag.Duration("timeout", 60*time.Second, "Overall fetch timeout")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *configPath == "" {
		log.Fatal("--config required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if len(cfg.Sources) == 0 {
		log.Fatal("No sources configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := newsfeed.FetchAll(ctx, cfg.Sources)
	for _, err := range result.Errors {
		log.WithError(err).Warn("Source failed")
	}
	if len(result.Articles) == 0 {
		log.Fatal("No articles fetched")
	}

	if err := newsfeed.WriteJSONL(*outPath, result.Articles); err != nil {
		log.WithError(err).Fatal("Failed to write output")
	}

	log.WithFields(logrus.Fields{
		"articles": len(result.Articles),
		"sources":  len(cfg.Sources),
		"out":      *outPath,
	}).Info("Fetch complete")
}
