package match

// MinSuggestionScore is the lowest Similarity accepted by Closest.
const MinSuggestionScore = 0.6

// Closest returns the candidate most similar to key. Ties keep the earlier
// candidate so results follow declaration order. ok is false when no
// candidate reaches MinSuggestionScore.
func Closest(key string, candidates []string) (best string, ok bool) {
	bestScore := MinSuggestionScore

	for _, c := range candidates {
		score := Similarity(key, c)
		if score > bestScore || (!ok && score == bestScore) {
			best, bestScore, ok = c, score, true
		}
	}

	return best, ok
}
