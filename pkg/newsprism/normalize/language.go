package normalize

// LanguageUnknown is reported when no configured stopword set matches
// the article text well enough to call.
const LanguageUnknown = "unknown"

// minStopwordHits is the minimum number of stopword occurrences required
// before a language call is made at all. Very short texts stay unknown.
const minStopwordHits = 2

// Detector identifies an article's language by stopword hit-rate: the
// language whose function words appear most often in the token stream
// wins. Crude but dependency-free and stable for news-length text.
type Detector struct {
	stopwords map[string]map[string]struct{}
}

// NewDetector builds a detector from per-language stopword lists.
func NewDetector(stopwords map[string][]string) *Detector {
	sets := make(map[string]map[string]struct{}, len(stopwords))
	for lang, words := range stopwords {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		sets[lang] = set
	}
	return &Detector{stopwords: sets}
}

// Detect returns the language code with the highest stopword hit count,
// or LanguageUnknown if nothing clears the minimum.
func (d *Detector) Detect(tokens []string) string {
	best := LanguageUnknown
	bestHits := 0

	for lang, set := range d.stopwords {
		hits := 0
		for _, tok := range tokens {
			if _, ok := set[tok]; ok {
				hits++
			}
		}
		if hits > bestHits || (hits == bestHits && hits > 0 && lang < best) {
			best = lang
			bestHits = hits
		}
	}

	if bestHits < minStopwordHits {
		return LanguageUnknown
	}
	return best
}

// FilterStopwords removes the given language's stopwords from tokens.
// Unknown languages pass through unfiltered.
func (d *Detector) FilterStopwords(lang string, tokens []string) []string {
	set, ok := d.stopwords[lang]
	if !ok {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := set[tok]; !stop {
			out = append(out, tok)
		}
	}
	return out
}
