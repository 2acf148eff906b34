package normalize

// EnglishStopwords returns the built-in English function-word list used
// for language detection and token filtering.
func EnglishStopwords() []string {
	return []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "it", "its", "this", "that", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "do",
		"does", "did", "will", "would", "could", "should", "may", "might",
		"can", "nor", "how", "what", "when", "where", "who", "which",
		"why", "all", "each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "about", "into", "over",
		"after", "before", "between", "under", "above", "out", "up", "down",
		"off", "our", "your", "we", "you", "they", "them", "their", "he",
		"she", "his", "her", "as", "if", "so", "then", "there", "these",
		"those", "because", "while", "during", "through", "also", "said",
	}
}
