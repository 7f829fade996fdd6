package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// Data file names, one per mode. Champion themes and questions share a file.
const (
	FileChampion     = "tlmvpsp_questions.json"
	FileMillions     = "qvgdm.json"
	FileSurvival     = "ko.json"
	FileAuctions     = "auctions.json"
	FileWhoAmI       = "quisuisje.json"
	FileMercato      = "mercato.json"
	FileOddOneOut    = "intrus.json"
	FileMissingPiece = "pieces.json"
	FileHigherLower  = "plusmoins.json"
)

// Higher/lower answers.
const (
	AnswerHigher = "Plus"
	AnswerLower  = "Moins"
)

// fetchFunc returns the raw bytes of one data file.
type fetchFunc func(ctx context.Context, name string) ([]byte, error)

// record holds the fields every flat mode file shares. Answer fields differ
// in name and shape per mode and are decoded by the mode's answers func.
type record struct {
	ID         flexID `json:"id"`
	Difficulty int    `json:"difficulty"`
}

type flatMode struct {
	mode    question.Mode
	file    string
	answers func(raw json.RawMessage) ([]string, json.RawMessage, error)
}

var flatModes = []flatMode{
	{question.ModeMillions, FileMillions, singleAnswer},
	{question.ModeSurvival, FileSurvival, singleAnswer},
	{question.ModeAuctions, FileAuctions, answerList},
	{question.ModeWhoAmI, FileWhoAmI, targetAnswer},
	{question.ModeMercato, FileMercato, singleAnswer},
	{question.ModeOddOneOut, FileOddOneOut, singleAnswer},
	{question.ModeMissingPiece, FileMissingPiece, singleAnswer},
	{question.ModeHigherLower, FileHigherLower, higherLowerAnswer},
}

type championTheme struct {
	ID        flexID             `json:"id"`
	Title     string             `json:"title"`
	Category  string             `json:"category"`
	Questions []championQuestion `json:"questions"`
}

type championQuestion struct {
	ID          flexID   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Points      int      `json:"points"`
	Explanation string   `json:"explanation"`
}

// championPayload is the flattened champion question served to clients.
type championPayload struct {
	ID          string   `json:"id"`
	ThemeID     string   `json:"theme_id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	PointValue  int      `json:"point_value"`
	Explanation string   `json:"explanation"`
}

// decodeAll fetches and decodes every mode file.
func decodeAll(ctx context.Context, fetch fetchFunc) (map[question.Mode][]question.Item, []question.Theme, error) {
	items := make(map[question.Mode][]question.Item, len(question.Modes))

	data, err := fetch(ctx, FileChampion)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", FileChampion, err)
	}
	champion, themes, err := decodeChampion(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", FileChampion, err)
	}
	items[question.ModeChampion] = champion

	for _, fm := range flatModes {
		data, err := fetch(ctx, fm.file)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch %s: %w", fm.file, err)
		}
		list, err := decodeFlat(fm, data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", fm.file, err)
		}
		items[fm.mode] = list
	}
	return items, themes, nil
}

// decodeChampion flattens themes into questions with ids "<theme>_q<n>".
// Themes without questions are skipped.
func decodeChampion(data []byte) ([]question.Item, []question.Theme, error) {
	var raw []championTheme
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	var (
		items  []question.Item
		themes []question.Theme
	)
	for _, th := range raw {
		if len(th.Questions) == 0 {
			continue
		}
		themeID := string(th.ID)
		themes = append(themes, question.Theme{ID: themeID, Title: th.Title, Category: th.Category})

		for _, q := range th.Questions {
			points := q.Points
			if points == 0 {
				points = 1
			}
			options := q.Options
			if options == nil {
				options = []string{}
			}
			p := championPayload{
				ID:          fmt.Sprintf("%s_q%s", themeID, q.ID),
				ThemeID:     themeID,
				Question:    q.Question,
				Options:     options,
				Answer:      q.Answer,
				PointValue:  points,
				Explanation: q.Explanation,
			}
			payload, err := json.Marshal(p)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, question.Item{
				ID:      p.ID,
				Theme:   themeID,
				Answers: []string{q.Answer},
				Payload: payload,
			})
		}
	}
	return items, themes, nil
}

func decodeFlat(fm flatMode, data []byte) ([]question.Item, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	items := make([]question.Item, 0, len(raws))
	for i, raw := range raws {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		answers, payload, err := fm.answers(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, question.Item{
			ID:         string(r.ID),
			Difficulty: r.Difficulty,
			Answers:    answers,
			Payload:    payload,
		})
	}
	return items, nil
}

func singleAnswer(raw json.RawMessage) ([]string, json.RawMessage, error) {
	var r struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, nil, err
	}
	return []string{r.Answer}, raw, nil
}

func answerList(raw json.RawMessage) ([]string, json.RawMessage, error) {
	var r struct {
		Answers []string `json:"answers"`
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, nil, err
	}
	return r.Answers, raw, nil
}

func targetAnswer(raw json.RawMessage) ([]string, json.RawMessage, error) {
	var r struct {
		Target string `json:"target"`
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, nil, err
	}
	return []string{r.Target}, raw, nil
}

// higherLowerAnswer forces the answer to "Plus" or "Moins"; anything else in
// the source data is treated as "Plus". The payload is rewritten to match.
// Its target field is an object and is left to the payload.
func higherLowerAnswer(raw json.RawMessage) ([]string, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, err
	}
	var correct string
	if v, ok := fields["correct_answer"]; ok {
		if err := json.Unmarshal(v, &correct); err != nil {
			return nil, nil, fmt.Errorf("correct_answer: %w", err)
		}
	}
	if correct == AnswerHigher || correct == AnswerLower {
		return []string{correct}, raw, nil
	}

	fields["correct_answer"] = json.RawMessage(`"` + AnswerHigher + `"`)
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, err
	}
	return []string{AnswerHigher}, payload, nil
}
