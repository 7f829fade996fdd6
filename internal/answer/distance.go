package answer

import "unicode/utf8"

// Distance computes the Levenshtein edit distance between a and b over runes.
// Insertions, deletions and substitutions all cost 1.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// prev[j] holds distance(ra[:i-1], rb[:j]); curr is the row being filled.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(
				prev[j-1]+1, // substitution
				curr[j-1]+1, // insertion
				prev[j]+1,   // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// withinDistance reports whether Distance(a, b) <= limit, skipping the table
// when the length gap alone already exceeds the limit.
func withinDistance(a, b string, limit int) bool {
	gap := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if gap < 0 {
		gap = -gap
	}
	if gap > limit {
		return false
	}
	return Distance(a, b) <= limit
}
