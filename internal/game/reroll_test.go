package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/yacht/internal/dice"
)

func TestParseReroll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Reroll
	}{
		{"", Reroll{Keep: true}},
		{"   ", Reroll{Keep: true}},
		{"x", Reroll{Keep: true}},
		{"X", Reroll{Keep: true}},
		{"0 2 4", Reroll{Indices: []int{0, 2, 4}}},
		{"1,3", Reroll{Indices: []int{1, 3}}},
		{" 4 , 0 ", Reroll{Indices: []int{4, 0}}},
		{"2 2", Reroll{Indices: []int{2, 2}}},
		{"1 x", Reroll{Keep: true}},
	}
	for _, tt := range tests {
		got, err := ParseReroll(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRerollErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseReroll("5")
	require.ErrorIs(t, err, dice.ErrInvalidDieIndex)
	_, err = ParseReroll("0 -1")
	require.ErrorIs(t, err, dice.ErrInvalidDieIndex)
	_, err = ParseReroll("a")
	require.ErrorIs(t, err, ErrMalformedInput)
	_, err = ParseReroll("1;2")
	require.ErrorIs(t, err, ErrMalformedInput)
}
