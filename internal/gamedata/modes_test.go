package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

func TestSurvivalTier(t *testing.T) {
	cases := map[int]int{
		-1: 1, 0: 1, 1: 1, 3: 1, 5: 1,
		6: 2, 7: 2, 10: 2,
		12: 3, 18: 4, 20: 4,
		21: 5, 23: 5, 100: 5,
	}
	for round, want := range cases {
		assert.Equal(t, want, SurvivalTier(round), "round %d", round)
	}
}

func TestDrawSurvivalFollowsTier(t *testing.T) {
	svc := loadedService(t, 5)

	for _, round := range []int{3, 7, 12, 18, 23} {
		item, ok, err := svc.DrawSurvival(round)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, SurvivalTier(round), item.Difficulty, "round %d", round)
	}
}

func TestDrawSurvivalFallsBackWhenTierExhausted(t *testing.T) {
	svc := loadedService(t, 5)

	// Two tier-1 questions exist; the third round-1 draw must fall back.
	for i := 0; i < 2; i++ {
		item, ok, err := svc.DrawSurvival(1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, item.Difficulty)
	}
	item, ok, err := svc.DrawSurvival(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, 1, item.Difficulty)

	remaining, err := svc.RemainingCount(question.ModeSurvival, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, remaining)
}

func TestDrawMillionsByLevel(t *testing.T) {
	svc := loadedService(t, 5)

	for i := 0; i < 2; i++ {
		item, ok, err := svc.DrawMillions(15)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 15, item.Difficulty)
	}
	_, ok, err := svc.DrawMillions(15)
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := svc.RemainingCount(question.ModeMillions, question.ByDifficulty(15))
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestChampionThemes(t *testing.T) {
	svc := loadedService(t, 11)

	themes, err := svc.ChampionThemes(0)
	require.NoError(t, err)
	assert.Len(t, themes, 4)

	all, err := svc.ChampionThemes(10)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Drain one theme; it must disappear from the selection.
	questions, err := svc.ChampionQuestions("t3", 10)
	require.NoError(t, err)
	assert.Len(t, questions, 6)

	remaining, err := svc.ChampionThemes(10)
	require.NoError(t, err)
	assert.Len(t, remaining, 4)
	for _, th := range remaining {
		assert.NotEqual(t, "t3", th.ID)
	}
}

func TestChampionQuestions(t *testing.T) {
	svc := loadedService(t, 11)

	first, err := svc.ChampionQuestions("t1", 0)
	require.NoError(t, err)
	assert.Len(t, first, 5)
	for _, q := range first {
		assert.Equal(t, "t1", q.Theme)
	}

	rest, err := svc.ChampionQuestions("t1", 5)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, err := svc.ChampionQuestions("missing", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChampionNotReady(t *testing.T) {
	svc := NewService(nil, testLogger())
	_, err := svc.ChampionThemes(4)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = svc.ChampionQuestions("t1", 5)
	assert.ErrorIs(t, err, ErrNotReady)
}

func themeIDs(themes []question.Theme) []string {
	ids := make([]string, 0, len(themes))
	for _, th := range themes {
		ids = append(ids, th.ID)
	}
	return ids
}

func TestSearchThemes(t *testing.T) {
	svc := loadedService(t, 5)

	cases := map[string][]string{
		"Zidane":         {"t3"},
		"Real Madrid":    {"t2"},
		"real madrid":    {"t2"},
		"Coupe du Monde": {"t1"},
		"competitions":   {"t1", "t4"},
		"ballon d'or":    {"t5"},
		"":               {"t1", "t2", "t3", "t4", "t5"},
		"   ":            {"t1", "t2", "t3", "t4", "t5"},
		"Bundesliga":     {},
	}
	for query, want := range cases {
		got, err := svc.SearchThemes(query)
		require.NoError(t, err)
		assert.Equal(t, want, themeIDs(got), "query %q", query)
	}
}

func TestSearchThemesIgnoresDrawHistory(t *testing.T) {
	svc := loadedService(t, 5)

	_, err := svc.ChampionQuestions("t3", 6)
	require.NoError(t, err)

	got, err := svc.SearchThemes("zidane")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, themeIDs(got))
}

func TestSearchThemesSkipsThemesWithoutQuestions(t *testing.T) {
	catalog, err := question.NewCatalog(map[question.Mode][]question.Item{
		question.ModeChampion: {{ID: "t1_q1", Theme: "t1", Answers: []string{"Zidane"}}},
	}, []question.Theme{
		{ID: "t1", Title: "Zidane", Category: "Joueurs"},
		{ID: "t9", Title: "Zidane en club", Category: "Joueurs"},
	})
	require.NoError(t, err)
	svc := NewService(nil, testLogger())
	require.NoError(t, svc.Load(catalog))

	got, err := svc.SearchThemes("zidane")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, themeIDs(got))
}

func TestSearchThemesNotReady(t *testing.T) {
	_, err := NewService(nil, testLogger()).SearchThemes("x")
	assert.ErrorIs(t, err, ErrNotReady)
}
