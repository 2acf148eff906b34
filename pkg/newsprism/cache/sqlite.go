package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// sqliteStore is a Store backed by a SQLite database, for deployments
// that want analysis results to survive process restarts.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite-backed store with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analysis_results (
	fingerprint TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	confidence REAL NOT NULL,
	entities TEXT NOT NULL DEFAULT '[]',
	analyzed_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *sqliteStore) Get(ctx context.Context, fp article.Fingerprint) (article.AnalysisResult, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT label, confidence, entities, analyzed_at FROM analysis_results WHERE fingerprint = ?`,
		string(fp))

	var (
		label      string
		confidence float64
		entsJSON   string
		analyzedAt string
	)
	if err := row.Scan(&label, &confidence, &entsJSON, &analyzedAt); err != nil {
		if err == sql.ErrNoRows {
			return article.AnalysisResult{}, false, nil
		}
		return article.AnalysisResult{}, false, fmt.Errorf("get %s: %w", fp, err)
	}

	var ents []article.EntityMention
	if err := json.Unmarshal([]byte(entsJSON), &ents); err != nil {
		return article.AnalysisResult{}, false, fmt.Errorf("decode entities for %s: %w", fp, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, analyzedAt)
	if err != nil {
		ts = time.Time{}
	}

	return article.AnalysisResult{
		Fingerprint: fp,
		Sentiment:   article.Sentiment{Label: label, Confidence: confidence},
		Entities:    ents,
		AnalyzedAt:  ts,
	}, true, nil
}

// Put implements Store.
func (s *sqliteStore) Put(ctx context.Context, res article.AnalysisResult) error {
	entsJSON, err := json.Marshal(res.Entities)
	if err != nil {
		return fmt.Errorf("encode entities for %s: %w", res.Fingerprint, err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO analysis_results (fingerprint, label, confidence, entities, analyzed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(fingerprint) DO UPDATE SET
	label = excluded.label,
	confidence = excluded.confidence,
	entities = excluded.entities,
	analyzed_at = excluded.analyzed_at
`, string(res.Fingerprint), res.Sentiment.Label, res.Sentiment.Confidence, string(entsJSON),
		res.AnalyzedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("put %s: %w", res.Fingerprint, err)
	}
	return nil
}

// Len implements Store.
func (s *sqliteStore) Len() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM analysis_results`).Scan(&n); err != nil {
		return 0
	}
	return n
}
