package gamedata

import (
	"slices"
	"strings"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// survivalRoundsPerTier is how many survival rounds are played at each
// difficulty tier before the next one kicks in.
const (
	survivalRoundsPerTier = 5
	survivalMaxTier       = 5
)

// SurvivalTier maps a 1-based survival round to its difficulty tier (1-5).
func SurvivalTier(round int) int {
	if round < 1 {
		return 1
	}
	return min((round-1)/survivalRoundsPerTier+1, survivalMaxTier)
}

// DrawMillions draws a millions question for the given prize-ladder level.
func (s *Service) DrawMillions(level int) (question.Item, bool, error) {
	return s.DrawNext(question.ModeMillions, question.ByDifficulty(level))
}

// DrawSurvival draws a question for the round's tier and falls back to any
// unused question once that tier runs dry.
func (s *Service) DrawSurvival(round int) (question.Item, bool, error) {
	item, ok, err := s.DrawNext(question.ModeSurvival, question.ByDifficulty(SurvivalTier(round)))
	if err != nil || ok {
		return item, ok, err
	}
	return s.DrawNext(question.ModeSurvival, nil)
}

// ChampionThemes returns up to n random themes that still have unused
// questions. n <= 0 selects the default of four.
func (s *Service) ChampionThemes(n int) ([]question.Theme, error) {
	if n <= 0 {
		n = defaultChampionThemes
	}
	pool, err := s.pool(question.ModeChampion)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	available := make([]question.Theme, 0, len(s.themes))
	for _, th := range s.themes {
		if pool.RemainingCount(question.ByTheme(th.ID)) > 0 {
			available = append(available, th)
		}
	}
	s.mu.RUnlock()

	s.mu.Lock()
	s.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	s.mu.Unlock()

	if len(available) > n {
		available = available[:n]
	}
	return available, nil
}

// ChampionQuestions draws up to n unused questions of a theme. n <= 0 selects
// the default of five. Fewer are returned when the theme runs out.
func (s *Service) ChampionQuestions(themeID string, n int) ([]question.Item, error) {
	if n <= 0 {
		n = defaultChampionQuestions
	}
	out := make([]question.Item, 0, n)
	for len(out) < n {
		item, ok, err := s.DrawNext(question.ModeChampion, question.ByTheme(themeID))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out, nil
}

// SearchThemes lists the champion themes whose title or category contains
// query, compared after normalization so "competitions" finds
// "Compétitions". An empty query returns every theme that has questions.
// Draw history does not hide a theme here.
func (s *Service) SearchThemes(query string) ([]question.Theme, error) {
	pool, err := s.pool(question.ModeChampion)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	themes := slices.Clone(s.themes)
	s.mu.RUnlock()

	needle := answer.Normalize(query)
	out := make([]question.Theme, 0, len(themes))
	for _, th := range themes {
		if len(pool.Items(question.ByTheme(th.ID))) == 0 {
			continue
		}
		if needle == "" ||
			strings.Contains(answer.Normalize(th.Title), needle) ||
			strings.Contains(answer.Normalize(th.Category), needle) {
			out = append(out, th)
		}
	}
	return out, nil
}
