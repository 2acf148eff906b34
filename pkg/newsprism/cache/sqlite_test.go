package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

func testSQLite(t *testing.T) Store {
	t.Helper()
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testSQLite(t)

	res := sampleResult("fp-1")
	if err := s.Put(ctx, res); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "fp-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.Fingerprint != res.Fingerprint {
		t.Errorf("fingerprint mismatch: %s", got.Fingerprint)
	}
	if got.Sentiment != res.Sentiment {
		t.Errorf("sentiment mismatch: %+v", got.Sentiment)
	}
	if len(got.Entities) != 1 || got.Entities[0] != res.Entities[0] {
		t.Errorf("entities mismatch: %+v", got.Entities)
	}
	if !got.AnalyzedAt.Equal(res.AnalyzedAt) {
		t.Errorf("analyzed_at mismatch: %v != %v", got.AnalyzedAt, res.AnalyzedAt)
	}
}

func TestSQLiteMiss(t *testing.T) {
	s := testSQLite(t)

	_, ok, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("miss returned error: %v", err)
	}
	if ok {
		t.Error("expected a miss")
	}
}

func TestSQLiteOverwrite(t *testing.T) {
	ctx := context.Background()
	s := testSQLite(t)

	res := sampleResult("fp-1")
	if err := s.Put(ctx, res); err != nil {
		t.Fatalf("first put: %v", err)
	}

	res.Sentiment = article.Sentiment{Label: article.SentimentNegative, Confidence: 0.7}
	if err := s.Put(ctx, res); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, _, _ := s.Get(ctx, "fp-1")
	if got.Sentiment.Label != article.SentimentNegative {
		t.Errorf("expected overwrite, got %q", got.Sentiment.Label)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}
}

func TestSQLiteEmptyEntities(t *testing.T) {
	ctx := context.Background()
	s := testSQLite(t)

	res := sampleResult("fp-1")
	res.Entities = nil
	if err := s.Put(ctx, res); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "fp-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got.Entities) != 0 {
		t.Errorf("expected no entities, got %v", got.Entities)
	}
}
