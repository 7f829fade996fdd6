package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listItemsSQL = `
SELECT mode, item_id, COALESCE(theme, '') AS theme, difficulty, answers, payload
FROM trivia_items
ORDER BY mode, position`

	listThemesSQL = `
SELECT theme_id, title, category
FROM trivia_themes
ORDER BY position`

	insertItemSQL = `
INSERT INTO trivia_items (mode, item_id, theme, difficulty, answers, payload)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
ON CONFLICT (mode, item_id) DO UPDATE
SET theme = EXCLUDED.theme, difficulty = EXCLUDED.difficulty,
    answers = EXCLUDED.answers, payload = EXCLUDED.payload`

	insertThemeSQL = `
INSERT INTO trivia_themes (theme_id, title, category)
VALUES ($1, $2, $3)
ON CONFLICT (theme_id) DO UPDATE
SET title = EXCLUDED.title, category = EXCLUDED.category`
)

// PgStore runs the item queries against Postgres.
type PgStore struct {
	pool *pgxpool.Pool
}

var _ itemStore = (*PgStore)(nil)

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) ListItems(ctx context.Context) ([]ItemRow, error) {
	rows, err := s.pool.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ItemRow])
}

func (s *PgStore) ListThemes(ctx context.Context) ([]ThemeRow, error) {
	rows, err := s.pool.Query(ctx, listThemesSQL)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ThemeRow])
}

func (s *PgStore) InsertItem(ctx context.Context, row ItemRow) error {
	_, err := s.pool.Exec(ctx, insertItemSQL, row.Mode, row.ItemID, row.Theme, row.Difficulty, row.Answers, row.Payload)
	return err
}

func (s *PgStore) InsertTheme(ctx context.Context, row ThemeRow) error {
	_, err := s.pool.Exec(ctx, insertThemeSQL, row.ThemeID, row.Title, row.Category)
	return err
}
