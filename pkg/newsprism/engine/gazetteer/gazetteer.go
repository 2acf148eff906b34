// Package gazetteer implements an entity recognizer backed by curated
// name lists. Matching is case-insensitive over the clean text with
// word-boundary checks; overlapping matches resolve to the longer span
// and identical (text, type) mentions are deduplicated per article.
package gazetteer

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
	"github.com/cognicore/newsprism/pkg/newsprism/internalerr"
)

// Gazetteer holds named-entity surface forms grouped by type.
type Gazetteer struct {
	Persons       []string `yaml:"persons"`
	Organizations []string `yaml:"organizations"`
	Places        []string `yaml:"places"`
	Other         []string `yaml:"other"`
}

// LoadGazetteer reads a gazetteer from a YAML file.
func LoadGazetteer(path string) (Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Gazetteer{}, fmt.Errorf("%w: read gazetteer: %v", internalerr.ErrAnalysisUnavailable, err)
	}

	var g Gazetteer
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Gazetteer{}, fmt.Errorf("%w: parse gazetteer %s: %v", internalerr.ErrAnalysisUnavailable, path, err)
	}
	if len(g.Persons)+len(g.Organizations)+len(g.Places)+len(g.Other) == 0 {
		return Gazetteer{}, fmt.Errorf("%w: gazetteer %s is empty", internalerr.ErrAnalysisUnavailable, path)
	}
	return g, nil
}

type pattern struct {
	lower string
	typ   string
}

// Recognizer matches gazetteer names in article text.
type Recognizer struct {
	patterns []pattern
}

// New builds a recognizer from a gazetteer.
func New(g Gazetteer) *Recognizer {
	var pats []pattern
	add := func(names []string, typ string) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			pats = append(pats, pattern{lower: strings.ToLower(name), typ: typ})
		}
	}
	add(g.Persons, article.EntityPerson)
	add(g.Organizations, article.EntityOrganization)
	add(g.Places, article.EntityPlace)
	add(g.Other, article.EntityOther)

	return &Recognizer{patterns: pats}
}

// Extract implements engine.EntityRecognizer.
func (r *Recognizer) Extract(ctx context.Context, n article.Normalized) ([]article.EntityMention, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := n.CleanText
	folded := fold(text)

	var mentions []article.EntityMention
	for _, p := range r.patterns {
		for _, span := range folded.findAll(p.lower) {
			if !boundedAt(text, span.Start, span.End) {
				continue
			}
			mentions = append(mentions, article.EntityMention{
				Text: text[span.Start:span.End],
				Type: p.typ,
				Span: span,
			})
		}
	}

	mentions = resolveOverlaps(mentions)
	return dedupe(mentions), nil
}

// folded is a lowercased view of a text that remembers, for every byte
// of the lowered form, the byte offset of the originating rune in the
// original text. Lowercasing can change a rune's UTF-8 length, so spans
// found in the lowered form must be mapped back through it.
type folded struct {
	lower string
	back  []int
}

func fold(text string) folded {
	var b strings.Builder
	b.Grow(len(text))
	back := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			back = append(back, i)
		}
		b.WriteRune(lr)
	}
	back = append(back, len(text))
	return folded{lower: b.String(), back: back}
}

// findAll returns occurrences of the lowercased needle as spans into
// the original text.
func (f folded) findAll(needle string) []article.Span {
	var spans []article.Span
	offset := 0
	for {
		i := strings.Index(f.lower[offset:], needle)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(needle)
		spans = append(spans, article.Span{Start: f.back[start], End: f.back[end]})
		offset = start + 1
	}
	return spans
}

// boundedAt reports whether the span sits on word boundaries in s.
func boundedAt(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// resolveOverlaps keeps at most one mention per overlapping region,
// preferring the longer span.
func resolveOverlaps(mentions []article.EntityMention) []article.EntityMention {
	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].Span.Len() != mentions[j].Span.Len() {
			return mentions[i].Span.Len() > mentions[j].Span.Len()
		}
		return mentions[i].Span.Start < mentions[j].Span.Start
	})

	var kept []article.EntityMention
	for _, m := range mentions {
		overlaps := false
		for _, k := range kept {
			if m.Span.Start < k.Span.End && k.Span.Start < m.Span.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, m)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Span.Start < kept[j].Span.Start })
	return kept
}

// dedupe drops mentions with an identical (text, type) already seen,
// keeping the earliest span.
func dedupe(mentions []article.EntityMention) []article.EntityMention {
	seen := make(map[string]struct{}, len(mentions))
	out := mentions[:0]
	for _, m := range mentions {
		key := strings.ToLower(m.Text) + "\x00" + m.Type
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}
