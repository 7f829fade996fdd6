package repository

import (
	"context"
	"fmt"
)

// ItemRow is one stored question of any mode.
type ItemRow struct {
	Mode       string   `db:"mode"`
	ItemID     string   `db:"item_id"`
	Theme      string   `db:"theme"`
	Difficulty int32    `db:"difficulty"`
	Answers    []string `db:"answers"`
	Payload    []byte   `db:"payload"`
}

// ThemeRow is one champion theme.
type ThemeRow struct {
	ThemeID  string `db:"theme_id"`
	Title    string `db:"title"`
	Category string `db:"category"`
}

type itemStore interface {
	ListItems(ctx context.Context) ([]ItemRow, error)
	ListThemes(ctx context.Context) ([]ThemeRow, error)
	InsertItem(ctx context.Context, row ItemRow) error
	InsertTheme(ctx context.Context, row ThemeRow) error
}

// ItemRepository wraps queries for the curated question tables.
type ItemRepository struct {
	store itemStore
}

func NewItemRepository(store itemStore) *ItemRepository {
	return &ItemRepository{store: store}
}

// Items returns every stored question, ordered by mode then insertion.
func (r *ItemRepository) Items(ctx context.Context) ([]ItemRow, error) {
	rows, err := r.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return rows, nil
}

// Themes returns the champion themes.
func (r *ItemRepository) Themes(ctx context.Context) ([]ThemeRow, error) {
	rows, err := r.store.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return rows, nil
}

// Insert stores a question, e.g. when seeding from the JSON files.
func (r *ItemRepository) Insert(ctx context.Context, row ItemRow) error {
	if err := r.store.InsertItem(ctx, row); err != nil {
		return fmt.Errorf("insert item %s/%s: %w", row.Mode, row.ItemID, err)
	}
	return nil
}

// InsertTheme stores a champion theme.
func (r *ItemRepository) InsertTheme(ctx context.Context, row ThemeRow) error {
	if err := r.store.InsertTheme(ctx, row); err != nil {
		return fmt.Errorf("insert theme %s: %w", row.ThemeID, err)
	}
	return nil
}
