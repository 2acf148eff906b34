// Package summarize rolls per-article analysis results up into the
// dashboard-ready summary: sentiment distribution and top entities.
// Summarize is a pure function; it is recomputed per request and never
// persisted.
package summarize

import (
	"sort"
	"strings"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// DefaultTopN bounds the entity ranking when no limit is configured.
const DefaultTopN = 10

// EntityCount is one row of the entity ranking.
type EntityCount struct {
	Text      string `json:"text"`
	Type      string `json:"type"`
	Frequency int    `json:"frequency"`
}

// DashboardSummary is what the web layer renders.
type DashboardSummary struct {
	BatchID         string             `json:"batch_id,omitempty"`
	SentimentCounts map[string]int     `json:"sentiment_counts"`
	SentimentShare  map[string]float64 `json:"sentiment_share"`
	TopEntities     []EntityCount      `json:"top_entities"`
	AnalyzedCount   int                `json:"analyzed_count"`
	DuplicateCount  int                `json:"duplicate_count"`
	SkippedCount    int                `json:"skipped_count"`
	DegradedCount   int                `json:"degraded_count"`
}

// Options tunes the summary.
type Options struct {
	// TopN truncates the entity ranking; <= 0 uses DefaultTopN.
	TopN int

	// BatchID is stamped onto the summary by the caller.
	BatchID string
}

// Summarize aggregates annotated articles. Unknown sentiments are
// excluded from the percentage base but reported via DegradedCount;
// entities rank by frequency descending, ties alphabetically.
func Summarize(annotated []article.Annotated, opts Options) DashboardSummary {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	s := DashboardSummary{
		BatchID:         opts.BatchID,
		SentimentCounts: make(map[string]int),
		SentimentShare:  make(map[string]float64),
	}

	type entityKey struct {
		text string
		typ  string
	}
	freq := make(map[entityKey]int)
	display := make(map[entityKey]string)

	for _, a := range annotated {
		if a.Skipped {
			s.SkippedCount++
			continue
		}
		if a.Duplicate {
			s.DuplicateCount++
		}

		if a.Result.Sentiment.Unknown() {
			s.DegradedCount++
		} else {
			s.SentimentCounts[a.Result.Sentiment.Label]++
			s.AnalyzedCount++
		}

		for _, e := range a.Result.Entities {
			key := entityKey{text: strings.ToLower(e.Text), typ: e.Type}
			freq[key]++
			if _, ok := display[key]; !ok {
				display[key] = e.Text
			}
		}
	}

	if s.AnalyzedCount > 0 {
		for label, count := range s.SentimentCounts {
			s.SentimentShare[label] = float64(count) / float64(s.AnalyzedCount)
		}
	}

	ranking := make([]EntityCount, 0, len(freq))
	for key, count := range freq {
		ranking = append(ranking, EntityCount{Text: display[key], Type: key.typ, Frequency: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Frequency != ranking[j].Frequency {
			return ranking[i].Frequency > ranking[j].Frequency
		}
		if ti, tj := strings.ToLower(ranking[i].Text), strings.ToLower(ranking[j].Text); ti != tj {
			return ti < tj
		}
		return ranking[i].Type < ranking[j].Type
	})
	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	s.TopEntities = ranking

	return s
}
