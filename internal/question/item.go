package question

import "encoding/json"

// Item is one drawable question. Payload carries the mode-specific record
// untouched; the engine only reads ID, Difficulty, Theme and Answers.
type Item struct {
	ID         string          `json:"id"`
	Mode       Mode            `json:"mode"`
	Difficulty int             `json:"difficulty,omitempty"`
	Theme      string          `json:"theme,omitempty"`
	Answers    []string        `json:"answers"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Answer returns the primary canonical answer, or "" when the item has none.
func (i Item) Answer() string {
	if len(i.Answers) == 0 {
		return ""
	}
	return i.Answers[0]
}

// Theme groups champion questions.
type Theme struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Filter selects items from a pool. A nil Filter matches everything.
type Filter func(Item) bool

// ByDifficulty matches items of exactly the given difficulty tier.
func ByDifficulty(level int) Filter {
	return func(it Item) bool { return it.Difficulty == level }
}

// ByTheme matches champion items belonging to the theme.
func ByTheme(themeID string) Filter {
	return func(it Item) bool { return it.Theme == themeID }
}

// All combines filters with AND semantics; nil entries are ignored.
func All(filters ...Filter) Filter {
	active := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			active = append(active, f)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(it Item) bool {
		for _, f := range active {
			if !f(it) {
				return false
			}
		}
		return true
	}
}

func (f Filter) match(it Item) bool {
	return f == nil || f(it)
}
