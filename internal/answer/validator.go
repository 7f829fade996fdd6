package answer

import "strings"

const (
	// DefaultDifficulty is the tolerance dial used when callers have none.
	DefaultDifficulty = 5
	// MinNamePartLength is the shortest word of a multi-word answer that can
	// be matched on its own ("Zidane" for "Zinédine Zidane").
	MinNamePartLength = 3
)

// Validator decides whether free-text input matches canonical answers.
type Validator struct {
	nameParts  bool
	difficulty int
}

// Option configures a Validator.
type Option func(*Validator)

// WithNamePartMatching toggles matching the input against the individual words
// of a multi-word answer when the whole answer does not match.
func WithNamePartMatching(enabled bool) Option {
	return func(v *Validator) {
		v.nameParts = enabled
	}
}

// WithDefaultDifficulty sets the difficulty Validate applies.
func WithDefaultDifficulty(difficulty int) Option {
	return func(v *Validator) {
		v.difficulty = difficulty
	}
}

// NewValidator builds a Validator. Name-part matching is on by default.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{nameParts: true, difficulty: DefaultDifficulty}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks userAnswer against correctAnswer at the validator's default
// difficulty.
func (v *Validator) Validate(userAnswer, correctAnswer string) bool {
	return v.ValidateWithDifficulty(userAnswer, correctAnswer, v.difficulty)
}

// Difficulty returns the difficulty Validate applies.
func (v *Validator) Difficulty() int {
	return v.difficulty
}

// ValidateWithDifficulty checks userAnswer against correctAnswer. Both sides
// are normalized; an exact match always wins, otherwise the edit distance
// must stay within ScaledTolerance of the answer length.
func (v *Validator) ValidateWithDifficulty(userAnswer, correctAnswer string, difficulty int) bool {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)
	return v.matches(user, correct, func(length int) int {
		return ScaledTolerance(length, difficulty)
	})
}

// ValidateAgainstList returns the index of the first candidate matched by
// userAnswer under ListTolerance, or -1. Candidates are tried in order and the
// first hit wins, so callers put the preferred spelling first.
func (v *Validator) ValidateAgainstList(userAnswer string, candidates []string) int {
	user := Normalize(userAnswer)
	for i, candidate := range candidates {
		if v.matches(user, Normalize(candidate), ListTolerance) {
			return i
		}
	}
	return -1
}

// Closest returns the candidate nearest to userAnswer by edit distance and
// that distance. Ties keep the earlier candidate. An empty list yields -1, -1.
func (v *Validator) Closest(userAnswer string, candidates []string) (int, int) {
	user := Normalize(userAnswer)
	best, bestDistance := -1, -1
	for i, candidate := range candidates {
		d := v.nearest(user, Normalize(candidate))
		if best == -1 || d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best, bestDistance
}

// ScaledTolerance is the difficulty-scaled edit budget:
// max(1, floor(length*(10-difficulty)/20)).
func ScaledTolerance(length, difficulty int) int {
	return max(1, floorDiv(length*(10-difficulty), 20))
}

// ListTolerance is the fixed edit budget for list matching: max(1, floor(length/4)).
func ListTolerance(length int) int {
	return max(1, floorDiv(length, 4))
}

func (v *Validator) matches(user, correct string, tolerance func(int) int) bool {
	if user == correct {
		return true
	}
	if withinDistance(user, correct, tolerance(len(correct))) {
		return true
	}
	if !v.nameParts {
		return false
	}
	for _, part := range nameParts(correct) {
		if user == part || withinDistance(user, part, tolerance(len(part))) {
			return true
		}
	}
	return false
}

func (v *Validator) nearest(user, correct string) int {
	best := Distance(user, correct)
	if !v.nameParts {
		return best
	}
	for _, part := range nameParts(correct) {
		best = min(best, Distance(user, part))
	}
	return best
}

// nameParts splits a normalized multi-word answer into the words long enough
// to stand alone. Single-word answers have no parts.
func nameParts(normalized string) []string {
	words := strings.Fields(normalized)
	if len(words) < 2 {
		return nil
	}
	parts := words[:0]
	for _, w := range words {
		if len(w) >= MinNamePartLength {
			parts = append(parts, w)
		}
	}
	return parts
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
