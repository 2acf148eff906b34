package newsfeed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

func TestJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.jsonl")
	want := []article.Raw{
		{
			SourceID:    "wire",
			Title:       "Rover lands",
			Body:        "The rover landed safely on the surface.",
			URL:         "https://example.com/rover",
			PublishedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			SourceID: "wire",
			Title:    "Markets fall",
			Body:     "Shares dropped sharply in early trading.",
			URL:      "https://example.com/markets",
		},
	}

	if err := WriteJSONL(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d articles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].URL != want[i].URL || got[i].Title != want[i].Title || got[i].Body != want[i].Body {
			t.Errorf("article %d mismatch:\n got %+v\nwant %+v", i, got[i], want[i])
		}
		if !got[i].PublishedAt.Equal(want[i].PublishedAt) {
			t.Errorf("article %d: published_at = %v, want %v", i, got[i].PublishedAt, want[i].PublishedAt)
		}
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.jsonl")
	content := `{"title": "Good one", "url": "https://example.com/1", "body_text": "ok"}
not json at all
{"title": "Another good one", "url": "https://example.com/2", "body_text": "ok"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	if got[1].URL != "https://example.com/2" {
		t.Errorf("unexpected second article: %+v", got[1])
	}
}

func TestLoadErrorsWhenNothingValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.jsonl")
	if err := os.WriteFile(path, []byte("garbage\nmore garbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromJSONL(path); err == nil {
		t.Fatal("expected error when no line parses")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFilterByKeyword(t *testing.T) {
	articles := []article.Raw{
		{Title: "NASA launches probe", Body: "The agency confirmed the launch."},
		{Title: "Markets rally", Body: "Investors cheered nasa contracts."},
		{Title: "Local election", Body: "Turnout was high."},
	}

	got := FilterByKeyword(articles, "nasa")
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}

	if got := FilterByKeyword(articles, ""); len(got) != 3 {
		t.Errorf("empty keyword must keep everything, got %d", len(got))
	}
	if got := FilterByKeyword(articles, "volcano"); len(got) != 0 {
		t.Errorf("no-match keyword must return nothing, got %d", len(got))
	}
}
