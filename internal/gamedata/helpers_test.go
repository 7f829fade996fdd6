package gamedata

import (
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/question"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func tieredItems(prefix string, n, tiers int) []question.Item {
	items := make([]question.Item, n)
	for i := range items {
		items[i] = question.Item{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			Difficulty: i%tiers + 1,
			Answers:    []string{fmt.Sprintf("answer %d", i)},
		}
	}
	return items
}

func testCatalog(t *testing.T) *question.Catalog {
	t.Helper()

	var champion []question.Item
	themes := []question.Theme{
		{ID: "t1", Title: "Coupe du Monde", Category: "Compétitions"},
		{ID: "t2", Title: "Real Madrid", Category: "Clubs"},
		{ID: "t3", Title: "Zidane", Category: "Joueurs"},
		{ID: "t4", Title: "Ligue 1", Category: "Compétitions"},
		{ID: "t5", Title: "Ballon d'Or", Category: "Trophées"},
	}
	for _, th := range themes {
		for q := 1; q <= 6; q++ {
			champion = append(champion, question.Item{
				ID:      fmt.Sprintf("%s_q%d", th.ID, q),
				Theme:   th.ID,
				Answers: []string{"answer"},
			})
		}
	}

	catalog, err := question.NewCatalog(map[question.Mode][]question.Item{
		question.ModeChampion: champion,
		question.ModeMillions: tieredItems("m", 30, 15),
		question.ModeSurvival: tieredItems("s", 10, 5),
		question.ModeAuctions: {
			{ID: "a1", Answers: []string{"Zinédine Zidane", "Thierry Henry", "Olivier Giroud", "Karim Benzema"}},
		},
		question.ModeWhoAmI: tieredItems("w", 5, 3),
	}, themes)
	require.NoError(t, err)
	return catalog
}

func loadedService(t *testing.T, seed uint64) *Service {
	t.Helper()
	svc := NewService(answer.NewValidator(), testLogger(), WithSeed(seed))
	require.NoError(t, svc.Load(testCatalog(t)))
	return svc
}
