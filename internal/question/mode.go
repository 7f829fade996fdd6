package question

import (
	"errors"
	"fmt"
	"strings"
)

// Mode identifies one game mode and therefore one question pool.
type Mode string

// Game modes.
const (
	ModeChampion     Mode = "champion"
	ModeMillions     Mode = "millions"
	ModeSurvival     Mode = "survival"
	ModeAuctions     Mode = "auctions"
	ModeWhoAmI       Mode = "whoami"
	ModeMercato      Mode = "mercato"
	ModeOddOneOut    Mode = "oddoneout"
	ModeMissingPiece Mode = "missingpiece"
	ModeHigherLower  Mode = "higherlower"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{
	ModeChampion,
	ModeMillions,
	ModeSurvival,
	ModeAuctions,
	ModeWhoAmI,
	ModeMercato,
	ModeOddOneOut,
	ModeMissingPiece,
	ModeHigherLower,
}

// ErrUnknownMode is returned for mode names outside Modes.
var ErrUnknownMode = errors.New("unknown game mode")

// ParseMode resolves a mode name, ignoring case and surrounding spaces.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
	return m, nil
}

// Valid reports whether m is one of Modes.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}
