// Package newsfeed is the external fetch collaborator: it supplies raw
// article records to the analysis core. The core itself performs no
// network I/O.
package newsfeed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// LoadFromJSONL loads raw articles from a JSONL file, skipping
// malformed lines with a warning.
func LoadFromJSONL(path string) ([]article.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var articles []article.Raw
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var a article.Raw
		if err := json.Unmarshal([]byte(line), &a); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		articles = append(articles, a)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("no valid articles found in %s", path)
	}

	return articles, nil
}

// WriteJSONL writes raw articles to a JSONL file.
func WriteJSONL(path string, articles []article.Raw) error {
	var b strings.Builder
	for _, a := range articles {
		line, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encode article %s: %w", a.URL, err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// FilterByKeyword keeps articles whose title or body mentions the
// keyword (case-insensitive). An empty keyword keeps everything.
func FilterByKeyword(articles []article.Raw, keyword string) []article.Raw {
	if keyword == "" {
		return articles
	}
	kw := strings.ToLower(keyword)
	var out []article.Raw
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), kw) || strings.Contains(strings.ToLower(a.Body), kw) {
			out = append(out, a)
		}
	}
	return out
}
