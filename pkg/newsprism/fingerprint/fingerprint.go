// Package fingerprint derives stable content identities for articles.
// The fingerprint is the dedup and cache key: identical clean text and
// URL always produce the same value, across calls and process restarts.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// New computes the fingerprint over clean text and source URL.
func New(cleanText, url string) article.Fingerprint {
	h := sha256.New()
	h.Write([]byte(cleanText))
	h.Write([]byte{'\n'})
	h.Write([]byte(url))
	return article.Fingerprint(hex.EncodeToString(h.Sum(nil)))
}

// FromNormalized fingerprints a normalized article.
func FromNormalized(n article.Normalized) article.Fingerprint {
	return New(n.CleanText, n.Raw.URL)
}
