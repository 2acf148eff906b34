package normalize

import (
	"strings"
	"unicode"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct{}

// NewTokenizer creates a new tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into normalized lowercase tokens. Single-char
// and numeric-only tokens are dropped; mixed tokens like "gpt-4" are kept.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if word := cleanToken(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := cleanToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// cleanToken strips leading/trailing hyphens and apostrophes and drops
// low-value tokens.
func cleanToken(token string) string {
	token = strings.Trim(token, "-'")
	if len(token) <= 1 {
		return ""
	}
	if isNumericOnly(token) {
		return ""
	}
	return token
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
