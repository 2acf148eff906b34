// Package article defines the data model shared across the analysis pipeline.
package article

import "time"

// Raw is an article as delivered by the fetch collaborator.
// It is never mutated after it enters the pipeline.
type Raw struct {
	SourceID    string    `json:"source_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body_text"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// Normalized is a Raw article after markup stripping, whitespace
// collapsing, tokenization, and language detection.
type Normalized struct {
	Raw       Raw
	CleanText string
	Sentences []string
	Tokens    []string
	Language  string
}

// Fingerprint is a stable content identity derived from an article's
// clean text and URL. Identical input always yields the same value.
type Fingerprint string

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentUnknown  = "unknown"
)

// Sentiment holds a polarity label and the classifier's confidence.
type Sentiment struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Unknown returns true when analysis did not produce a usable label.
func (s Sentiment) Unknown() bool {
	return s.Label == "" || s.Label == SentimentUnknown
}

// Entity types
const (
	EntityPerson       = "person"
	EntityOrganization = "organization"
	EntityPlace        = "place"
	EntityOther        = "other"
)

// Span marks the byte offsets of a mention within the clean text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// EntityMention is a single recognized entity occurrence.
type EntityMention struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Span Span   `json:"span"`
}

// AnalysisResult is the immutable output of the analysis engines for
// one fingerprint. It is what the cache stores and retrieves.
type AnalysisResult struct {
	Fingerprint Fingerprint     `json:"fingerprint"`
	Sentiment   Sentiment       `json:"sentiment"`
	Entities    []EntityMention `json:"entities"`
	AnalyzedAt  time.Time       `json:"analyzed_at"`
}

// Annotated pairs a raw article with its analysis outcome.
type Annotated struct {
	Raw        Raw            `json:"article"`
	Result     AnalysisResult `json:"result"`
	Duplicate  bool           `json:"duplicate"`
	Skipped    bool           `json:"skipped"`
	SkipReason string         `json:"skip_reason,omitempty"`
}

// Degraded reports whether the article appears in the output without a
// usable sentiment (engine failure, timeout, or load error).
func (a Annotated) Degraded() bool {
	return !a.Skipped && a.Result.Sentiment.Unknown()
}
