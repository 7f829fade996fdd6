package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/db/repository"
	"github.com/gokatarajesh/trivia-engine/internal/question"
)

type itemRepository interface {
	Items(ctx context.Context) ([]repository.ItemRow, error)
	Themes(ctx context.Context) ([]repository.ThemeRow, error)
}

// PostgresLoader reads the curated question tables.
type PostgresLoader struct {
	repo   itemRepository
	logger zerolog.Logger
}

var _ Loader = (*PostgresLoader)(nil)

func NewPostgresLoader(repo itemRepository, logger zerolog.Logger) *PostgresLoader {
	return &PostgresLoader{
		repo:   repo,
		logger: logger.With().Str("component", "postgres_loader").Logger(),
	}
}

// Load builds the catalog from every stored row.
func (l *PostgresLoader) Load(ctx context.Context) (*question.Catalog, error) {
	rows, err := l.repo.Items(ctx)
	if err != nil {
		return nil, err
	}
	themeRows, err := l.repo.Themes(ctx)
	if err != nil {
		return nil, err
	}

	items := make(map[question.Mode][]question.Item, len(question.Modes))
	for _, row := range rows {
		mode, err := question.ParseMode(row.Mode)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", row.ItemID, err)
		}
		items[mode] = append(items[mode], question.Item{
			ID:         row.ItemID,
			Difficulty: int(row.Difficulty),
			Theme:      row.Theme,
			Answers:    row.Answers,
			Payload:    json.RawMessage(row.Payload),
		})
	}

	themes := make([]question.Theme, 0, len(themeRows))
	for _, tr := range themeRows {
		themes = append(themes, question.Theme{ID: tr.ThemeID, Title: tr.Title, Category: tr.Category})
	}
	return assemble(items, themes, l.logger)
}

// Seed copies a catalog into the question tables so later starts can use
// PostgresLoader.
func Seed(ctx context.Context, repo *repository.ItemRepository, catalog *question.Catalog) (int, error) {
	for _, th := range catalog.Themes() {
		if err := repo.InsertTheme(ctx, repository.ThemeRow{ThemeID: th.ID, Title: th.Title, Category: th.Category}); err != nil {
			return 0, err
		}
	}

	inserted := 0
	for _, mode := range question.Modes {
		for _, it := range catalog.Items(mode) {
			payload := []byte(it.Payload)
			if len(payload) == 0 {
				payload = []byte("{}")
			}
			row := repository.ItemRow{
				Mode:       string(mode),
				ItemID:     it.ID,
				Theme:      it.Theme,
				Difficulty: int32(it.Difficulty),
				Answers:    it.Answers,
				Payload:    payload,
			}
			if err := repo.Insert(ctx, row); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}
