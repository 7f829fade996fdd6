package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledTolerance(t *testing.T) {
	cases := []struct {
		length, difficulty, want int
	}{
		{13, 5, 3},
		{13, 8, 1},
		{0, 5, 1},
		{20, 0, 10},
		{20, 10, 1},
		{20, 15, 1},
		{15, 5, 3},
		{40, 2, 16},
		{7, -3, 4},
		{6, 5, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ScaledTolerance(tc.length, tc.difficulty), "len=%d difficulty=%d", tc.length, tc.difficulty)
	}
}

func TestListTolerance(t *testing.T) {
	for length, want := range map[int]int{0: 1, 3: 1, 4: 1, 15: 3, 17: 4} {
		assert.Equal(t, want, ListTolerance(length), "len=%d", length)
	}
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.Validate("mbappe", "Kylian Mbappé"))
	assert.True(t, v.Validate("MBAPPE", "Kylian Mbappé"))
	assert.True(t, v.Validate("Mbape", "Kylian Mbappé"))
	assert.False(t, v.ValidateWithDifficulty("Pogba", "Kylian Mbappé", 8))
	assert.False(t, v.Validate("Platini", "Zinédine Zidane"))
	assert.True(t, v.Validate("Zinedine Zidane", "Zinédine Zidane"))
	assert.True(t, v.Validate("Griezzman", "Antoine Griezmann"))
	assert.True(t, v.Validate("Ronaldo", "Cristiano Ronaldo"))
}

func TestValidateWithDifficulty(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		user, correct string
		difficulty    int
		want          bool
	}{
		{"Karim Benzma", "Karim Benzema", 15, true},
		{"Karim Bnzma", "Karim Benzema", 15, false},
		{"Karim Bnzma", "Karim Benzema", 5, true},
		{"Pari", "Paris", 15, true},
		{"Lyon", "Lille", 1, false},
		{"Marsellie", "Marseille", 10, false},
		{"Marsellie", "Marseille", 0, true},
		{"Marseille", "Marseile", 5, true},
	}
	for _, tc := range cases {
		got := v.ValidateWithDifficulty(tc.user, tc.correct, tc.difficulty)
		assert.Equal(t, tc.want, got, "%q vs %q at %d", tc.user, tc.correct, tc.difficulty)
	}
}

func TestValidateEmptyAnswers(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.Validate("", ""))
	// An empty canonical answer still forgives one character.
	assert.True(t, v.Validate("x", ""))
	assert.True(t, v.Validate("?!", ""))
	assert.False(t, v.Validate("ab", ""))
}

func TestValidateWithoutNameParts(t *testing.T) {
	v := NewValidator(WithNamePartMatching(false))

	assert.False(t, v.Validate("mbappe", "Kylian Mbappé"))
	assert.False(t, v.Validate("Zidane", "Zinédine Zidane"))
	assert.True(t, v.Validate("Zinedine Zidane", "Zinédine Zidane"))
	assert.True(t, v.Validate("Karim Bnzma", "Karim Benzema"))
}

func TestValidateAgainstList(t *testing.T) {
	v := NewValidator()
	candidates := []string{"Zinédine Zidane", "Thierry Henry", "Olivier Giroud", "Karim Benzema"}

	cases := map[string]int{
		"zidane":         0,
		"Henry":          1,
		"giroud":         2,
		"benzema":        3,
		"Pogba":          -1,
		"Thiery Henri":   1,
		"zidan":          0,
		"Zinedine Zidan": 0,
	}
	for input, want := range cases {
		assert.Equal(t, want, v.ValidateAgainstList(input, candidates), "input %q", input)
	}

	assert.Equal(t, -1, v.ValidateAgainstList("x", nil))
}

func TestValidateAgainstListFirstMatchWins(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, 0, v.ValidateAgainstList("Henri", []string{"Henry", "Henri"}))
}

func TestValidateAgainstListWithoutNameParts(t *testing.T) {
	v := NewValidator(WithNamePartMatching(false))
	candidates := []string{"Zinédine Zidane", "Thierry Henry"}

	assert.Equal(t, -1, v.ValidateAgainstList("zidane", candidates))
	assert.Equal(t, 1, v.ValidateAgainstList("Thiery Henri", candidates))
}

func TestClosest(t *testing.T) {
	v := NewValidator()

	idx, d := v.Closest("Henri", []string{"Henry", "Thierry Henry"})
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, d)

	idx, d = v.Closest("zidan", []string{"Thierry Henry", "Zinédine Zidane"})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, d)

	idx, d = v.Closest("x", nil)
	assert.Equal(t, -1, idx)
	assert.Equal(t, -1, d)
}

func TestWithDefaultDifficulty(t *testing.T) {
	strict := NewValidator(WithDefaultDifficulty(10))
	assert.Equal(t, 10, strict.Difficulty())
	assert.False(t, strict.Validate("Marsellie", "Marseille"))
	assert.True(t, strict.Validate("Marseile", "Marseille"))

	assert.Equal(t, DefaultDifficulty, NewValidator().Difficulty())
}
