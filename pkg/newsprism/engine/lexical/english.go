package lexical

// EnglishLexicon returns the built-in English valence lexicon. Compact
// on purpose: tuned for news headlines and body text. Deployments with
// richer vocabularies load their own via LoadLexicon.
func EnglishLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"good", "great", "excellent", "strong", "positive", "win", "wins",
			"winning", "won", "success", "successful", "growth", "grow", "grows",
			"growing", "gain", "gains", "gained", "improve", "improves", "improved",
			"improvement", "surge", "surges", "surged", "record", "breakthrough",
			"boost", "boosts", "boosted", "rally", "rallies", "optimistic",
			"optimism", "recovery", "recover", "recovers", "profit", "profits",
			"profitable", "beat", "beats", "exceed", "exceeds", "exceeded",
			"soar", "soars", "soared", "thrive", "thrives", "thriving",
			"promising", "landmark", "milestone", "praise", "praised", "celebrate",
			"celebrated", "approval", "approve", "approved", "agreement", "deal",
			"innovative", "innovation", "advance", "advances", "advanced",
		},
		Negative: []string{
			"bad", "poor", "weak", "negative", "loss", "losses", "lose", "loses",
			"losing", "lost", "fail", "fails", "failed", "failure", "decline",
			"declines", "declined", "drop", "drops", "dropped", "fall", "falls",
			"fell", "crash", "crashes", "crashed", "crisis", "scandal", "fraud",
			"slump", "slumps", "slumped", "plunge", "plunges", "plunged", "fear",
			"fears", "feared", "warn", "warns", "warned", "warning", "threat",
			"threats", "threaten", "threatens", "risk", "risks", "risky",
			"lawsuit", "sued", "fined", "fine", "penalty", "layoff", "layoffs",
			"cut", "cuts", "recession", "deficit", "debt", "collapse", "collapsed",
			"violence", "attack", "attacks", "attacked", "death", "deaths", "died",
			"injured", "damage", "damaged", "disaster", "outage", "breach",
			"concern", "concerns", "concerned", "criticism", "criticize",
			"criticized", "dispute", "conflict", "protest", "protests",
		},
		Negators: []string{
			"not", "no", "never", "without", "hardly", "barely", "neither",
			"nor", "cannot", "can't", "won't", "don't", "doesn't", "didn't",
			"isn't", "aren't", "wasn't", "weren't",
		},
	}
}
