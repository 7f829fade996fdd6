package question

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog errors.
var (
	ErrDuplicateID = errors.New("duplicate item id")
	ErrMissingID   = errors.New("item has no id")
)

// Catalog is the immutable static data of every mode, loaded once at startup
// and shared read-only by all sessions.
type Catalog struct {
	items  map[Mode][]Item
	themes []Theme
}

// NewCatalog validates and freezes the loaded data. Every item must carry a
// non-empty id unique within its mode, and modes must be known.
func NewCatalog(items map[Mode][]Item, themes []Theme) (*Catalog, error) {
	c := &Catalog{
		items:  make(map[Mode][]Item, len(Modes)),
		themes: slices.Clone(themes),
	}
	for mode, list := range items {
		if !mode.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
		}
		if err := checkIDs(mode, list); err != nil {
			return nil, err
		}
		frozen := slices.Clone(list)
		for i := range frozen {
			frozen[i].Mode = mode
		}
		c.items[mode] = frozen
	}
	return c, nil
}

// Items returns the items of mode. The slice is shared; do not modify it.
func (c *Catalog) Items(mode Mode) []Item {
	return c.items[mode]
}

// Size returns the number of items loaded for mode.
func (c *Catalog) Size(mode Mode) int {
	return len(c.items[mode])
}

// Themes returns a copy of the champion themes.
func (c *Catalog) Themes() []Theme {
	return slices.Clone(c.themes)
}

// Empty reports whether no mode has any item.
func (c *Catalog) Empty() bool {
	for _, list := range c.items {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

func checkIDs(mode Mode, items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%s item %d: %w", mode, i, ErrMissingID)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%s item %q: %w", mode, it.ID, ErrDuplicateID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
