// Package normalize turns raw fetched articles into a canonical form:
// markup stripped, whitespace collapsed, text tokenized, language detected.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// ErrEmptyArticle is returned when an article carries no analyzable text.
var ErrEmptyArticle = errors.New("empty article")

// Normalizer cleans article text and detects its language.
type Normalizer struct {
	tokenizer *Tokenizer
	detector  *Detector
	supported map[string]struct{}
}

// New creates a Normalizer. stopwords maps language codes to their
// stopword lists (used both for detection and token filtering).
// supported lists the languages that have configured analysis engines.
func New(stopwords map[string][]string, supported []string) *Normalizer {
	sup := make(map[string]struct{}, len(supported))
	for _, lang := range supported {
		sup[strings.ToLower(lang)] = struct{}{}
	}
	return &Normalizer{
		tokenizer: NewTokenizer(),
		detector:  NewDetector(stopwords),
		supported: sup,
	}
}

// Normalize derives a Normalized article from raw input. The input is
// never mutated. Returns ErrEmptyArticle when there is no text to
// analyze, and internalerr.ErrUnsupportedLanguage when the detected
// language has no configured analysis engine.
func (n *Normalizer) Normalize(raw article.Raw) (article.Normalized, error) {
	stripped := stripMarkup(raw.Body)
	if strings.TrimSpace(stripped) == "" {
		// Fall back to the title when the feed gave us no body.
		stripped = stripMarkup(raw.Title)
	}

	clean := collapseWhitespace(stripped)
	if clean == "" {
		return article.Normalized{}, fmt.Errorf("%w: %s", ErrEmptyArticle, raw.URL)
	}

	tokens := n.tokenizer.Tokenize(clean)
	lang := n.detector.Detect(tokens)

	if _, ok := n.supported[lang]; !ok {
		return article.Normalized{}, fmt.Errorf("%w: %q for %s", internalerr.ErrUnsupportedLanguage, lang, raw.URL)
	}

	return article.Normalized{
		Raw:       raw,
		CleanText: clean,
		Sentences: splitSentences(clean),
		Tokens:    n.detector.FilterStopwords(lang, tokens),
		Language:  lang,
	}, nil
}

// stripMarkup extracts the text content of an HTML fragment.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitSentences splits clean text on terminal punctuation. Good enough
// for ordering and excerpting; not a linguistic sentence segmenter.
func splitSentences(s string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			sentence := strings.TrimSpace(current.String())
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}
	if tail := strings.TrimSpace(current.String()); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
