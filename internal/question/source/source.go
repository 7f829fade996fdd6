// Package source loads the static question data of every game mode. Loading
// happens once at startup, before any session draws from the pools.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// Loader produces the catalog of every mode.
type Loader interface {
	Load(ctx context.Context) (*question.Catalog, error)
}

// flexID accepts ids written either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", data)
	}
	if i, err := n.Int64(); err == nil {
		*f = flexID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexID(n.String())
	return nil
}

// assemble assigns structural ids to records lacking one, drops repeated
// structural duplicates (the same question listed twice), and freezes the
// result into a catalog.
func assemble(items map[question.Mode][]question.Item, themes []question.Theme, logger zerolog.Logger) (*question.Catalog, error) {
	for mode, list := range items {
		kept := list[:0]
		seen := make(map[string]struct{}, len(list))
		dropped := 0
		for _, it := range list {
			if it.ID == "" {
				id, err := question.StructuralID(it.Payload)
				if err != nil {
					return nil, fmt.Errorf("%s: derive id: %w", mode, err)
				}
				if _, dup := seen[id]; dup {
					dropped++
					continue
				}
				seen[id] = struct{}{}
				it.ID = id
			}
			kept = append(kept, it)
		}
		if dropped > 0 {
			logger.Warn().Str("mode", string(mode)).Int("dropped", dropped).Msg("duplicate records without id ignored")
		}
		items[mode] = kept
	}

	catalog, err := question.NewCatalog(items, themes)
	if err != nil {
		return nil, err
	}
	for _, mode := range question.Modes {
		logger.Info().Str("mode", string(mode)).Int("items", catalog.Size(mode)).Msg("pool loaded")
	}
	return catalog, nil
}
