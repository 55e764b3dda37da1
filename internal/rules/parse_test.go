package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Category
	}{
		{"0", Ones},
		{" 11 ", Yacht},
		{"6", FullHouse},
		{"full house", FullHouse},
		{"FULL_HOUSE", FullHouse},
		{"fulhouse", FullHouse},
		{"four-of-a-kind", FourOfAKind},
		{"big straight", BigStraight},
		{"smallstraight", SmallStraight},
		{"yaht", Yacht},
		{"choise", Choice},
		{"Sixs", Sixes},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategoryErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseCategory("12")
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategory("-1")
	require.ErrorIs(t, err, ErrInvalidCategory)

	for _, in := range []string{"", "   ", "banana", "tes"} {
		_, err := ParseCategory(in)
		require.ErrorIs(t, err, ErrUnknownCategory, "input %q", in)
	}
}
