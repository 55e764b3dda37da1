package game

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/yacht/internal/rules"
)

func seed(v int64) *int64 { return &v }

// classicScript keeps the first roll and fills categories in order.
func classicScript(players int) []string {
	var lines []string
	for r := 0; r < Rounds; r++ {
		for p := 0; p < players; p++ {
			lines = append(lines, "x", strconv.Itoa(r))
		}
	}
	return lines
}

func TestNewRequiresPlayers(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Players: 0}, newScript())
	require.ErrorIs(t, err, ErrNoPlayers)
}

func TestNewDrawsSeed(t *testing.T) {
	t.Parallel()

	e, err := New(Config{Players: 1}, newScript())
	require.NoError(t, err)
	require.Equal(t, Classic, e.Mode())
	require.Empty(t, e.Players())

	e, err = New(Config{Players: 1, Seed: seed(99)}, newScript())
	require.NoError(t, err)
	require.Equal(t, int64(99), e.Seed())
}

func TestRunClassicTwoPlayers(t *testing.T) {
	t.Parallel()

	term := newScript(classicScript(2)...)
	e, err := New(Config{Mode: Classic, Players: 2, Seed: seed(42)}, term)
	require.NoError(t, err)

	standings, err := e.Run([]string{"ana", ""})
	require.NoError(t, err)
	require.Len(t, standings, 2)
	require.Empty(t, term.input)
	require.Equal(t, Rounds-1, e.Round())

	names := map[string]bool{}
	for _, st := range standings {
		names[st.Name] = true
		sum := 0
		for c := 0; c < rules.Count; c++ {
			require.True(t, st.Used[c])
			sum += st.Scores[c]
		}
		require.Equal(t, sum, st.Total)
	}
	require.True(t, names["ana"])
	require.True(t, names["Player 2"])

	for _, p := range e.Players() {
		require.True(t, p.Board.Complete())
	}
	require.True(t, term.noticed("=== ROUND 1 of 12 ==="))
	require.True(t, term.noticed("=== ROUND 12 of 12 ==="))
	require.True(t, term.noticed("It is ana's turn."))
	require.Len(t, term.rolls, Rounds*2)

	_, err = e.Run([]string{"ana", "bo"})
	require.ErrorIs(t, err, ErrGameFinished)
}

func TestRunExtendedSinglePlayer(t *testing.T) {
	t.Parallel()

	var lines []string
	for r := 0; r < Rounds; r++ {
		switch PhaseFor(Extended, r) {
		case PhaseDownward:
			lines = append(lines, "x")
		case PhaseFirstRoll:
			lines = append(lines, strconv.Itoa(r))
		default:
			lines = append(lines, "x", strconv.Itoa(r))
		}
	}
	term := newScript(lines...)
	e, err := New(Config{Mode: Extended, Players: 1, Seed: seed(5)}, term)
	require.NoError(t, err)

	standings, err := e.Run([]string{"solo"})
	require.NoError(t, err)
	require.Empty(t, term.input)
	require.Len(t, standings, 1)
	require.Equal(t, 1, standings[0].Rank)
	require.True(t, e.Players()[0].Board.Complete())
	require.Len(t, term.rolls, Rounds)
	require.True(t, term.noticed("1ST ROLL"))
	require.True(t, term.noticed("FREE"))
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	play := func() (Standings, [][5]int) {
		term := newScript(classicScript(3)...)
		e, err := New(Config{Players: 3, Seed: seed(1234), Shuffle: true}, term)
		require.NoError(t, err)
		s, err := e.Run([]string{"a", "b", "c"})
		require.NoError(t, err)
		return s, term.rolls
	}
	s1, r1 := play()
	s2, r2 := play()
	require.Equal(t, s1, s2)
	require.Equal(t, r1, r2)
}

func TestRunShuffleAnnouncesOrder(t *testing.T) {
	t.Parallel()

	term := newScript(classicScript(2)...)
	e, err := New(Config{Players: 2, Seed: seed(3), Shuffle: true}, term)
	require.NoError(t, err)
	_, err = e.Run([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, term.noticed("Turn order: "))
	require.Len(t, e.Players(), 2)
}

func TestRunNameCountMismatch(t *testing.T) {
	t.Parallel()

	e, err := New(Config{Players: 2, Seed: seed(1)}, newScript())
	require.NoError(t, err)
	_, err = e.Run([]string{"only"})
	require.ErrorIs(t, err, ErrPlayerNames)
}

func TestRunWrapsTurnError(t *testing.T) {
	t.Parallel()

	e, err := New(Config{Players: 1, Seed: seed(1)}, newScript("x"))
	require.NoError(t, err)
	_, err = e.Run([]string{"ana"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "round 0, ana")
}
