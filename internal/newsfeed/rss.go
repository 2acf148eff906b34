package newsfeed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/config"
)

// RSSFetcher retrieves raw articles from RSS/Atom feeds.
type RSSFetcher struct {
	parser *gofeed.Parser
}

// NewRSSFetcher creates an RSS fetcher.
func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

// Fetch retrieves one source's feed and maps its items to raw articles.
func (f *RSSFetcher) Fetch(ctx context.Context, source config.Source) ([]article.Raw, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	now := time.Now()
	articles := make([]article.Raw, 0, len(feed.Items))
	for _, item := range feed.Items {
		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}

		body := item.Content
		if body == "" {
			body = item.Description
		}

		articles = append(articles, article.Raw{
			SourceID:    source.Name,
			Title:       item.Title,
			Body:        body,
			URL:         item.Link,
			PublishedAt: pub,
		})
	}
	return articles, nil
}

// FetchResult collects articles and per-source errors from a fan-out fetch.
type FetchResult struct {
	Articles []article.Raw
	Errors   []error
}

// FetchAll fetches every source concurrently. Per-source failures are
// collected, never fatal.
func FetchAll(ctx context.Context, sources []config.Source) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	fetcher := NewRSSFetcher()

	for _, src := range sources {
		wg.Add(1)
		go func(s config.Source) {
			defer wg.Done()
			articles, err := fetcher.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Articles = append(result.Articles, articles...)
		}(src)
	}

	wg.Wait()
	return result
}
