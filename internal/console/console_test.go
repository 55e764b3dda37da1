package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/yacht/internal/game"
	"github.com/jask/yacht/internal/rules"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("first\r\nsecond\nlast")
	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "first", line)
	line, err = c.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "second", line)
	line, err = c.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "last", line)
	_, err = c.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 4, strings.Count(out.String(), "> "))
}

func TestShowDice(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	c.ShowDice([5]int{3, 1, 6, 6, 2})
	got := out.String()
	require.Contains(t, got, "Dice:")
	require.Contains(t, got, "[0]")
	require.Contains(t, got, "[4]")
	for _, v := range []string{"3", "1", "6", "2"} {
		require.Contains(t, got, v)
	}
}

func TestShowScoreboardPreview(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	b := game.NewScoreboard()
	require.NoError(t, b.Register(rules.Choice, 21))
	hand := rules.Hand{5, 5, 5, 2, 2}
	c.ShowScoreboard(b, &hand)

	got := out.String()
	require.Contains(t, got, "Scoreboard")
	require.Contains(t, got, "Full House")
	require.Contains(t, got, "(+19)")
	require.Contains(t, got, "(+15)")
	require.Contains(t, got, " 21")
	require.Contains(t, got, "Total")

	lines := strings.Split(got, "\n")
	for _, l := range lines {
		if strings.Contains(l, "Choice") {
			require.NotContains(t, l, "(+")
		}
	}
}

func TestShowScoreboardWithoutPreview(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	c.ShowScoreboard(game.NewScoreboard(), nil)
	require.NotContains(t, out.String(), "(+")
}

func TestAskPlayerCount(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("abc\n0\n-2\n3\n")
	n, err := c.AskPlayerCount()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Contains(t, out.String(), "'abc' is not a valid number")
	require.Contains(t, out.String(), "at least 1 player")

	c, _ = newTestConsole("zero\n")
	_, err = c.AskPlayerCount()
	require.ErrorIs(t, err, io.EOF)
}

func TestAskPlayerNames(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole(" ana \n\nbo\n")
	names, err := c.AskPlayerNames(3)
	require.NoError(t, err)
	require.Equal(t, []string{"ana", "", "bo"}, names)
	require.Contains(t, out.String(), "Type player 3's name: ")
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("maybe\nYES\nn\n")
	ok, err := c.Confirm("Save?")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, out.String(), "please answer y or n")

	ok, err = c.Confirm("Again?")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWelcomeAndRules(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	c.Welcome()
	c.ShowRules()
	require.Contains(t, out.String(), "Welcome to Yacht!")
	require.Contains(t, out.String(), "Four of a Kind")
	require.Contains(t, out.String(), "Downward")
}

func standingsFor(t *testing.T, totals map[string][]int, order ...string) game.Standings {
	t.Helper()
	players := make([]*game.Player, 0, len(order))
	for _, name := range order {
		p := game.NewPlayer(name)
		for i, pts := range totals[name] {
			require.NoError(t, p.Board.Register(rules.Category(i), pts))
		}
		players = append(players, p)
	}
	return game.Rank(players)
}

func TestShowStandings(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	s := standingsFor(t, map[string][]int{
		"ana": {3, 8},
		"bo":  {1},
		"cy":  {2, 2, 9},
		"di":  {0},
	}, "ana", "bo", "cy", "di")
	c.ShowStandings(s)

	got := out.String()
	require.Contains(t, got, "GAME OVER - FINAL RESULTS")
	require.Contains(t, got, "#1 cy")
	require.Contains(t, got, "#2 ana")
	require.Contains(t, got, "#3 bo")
	require.Contains(t, got, "Threes            :   9")
	require.Contains(t, got, "CONGRATULATIONS cy!")
	require.Contains(t, got, "YOU ARE THE YACHT CHAMPION!")
	require.NotContains(t, got, "Fours")
}

func TestShowStandingsTie(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("")
	s := standingsFor(t, map[string][]int{
		"ana": {5},
		"bo":  {5},
	}, "ana", "bo")
	c.ShowStandings(s)

	got := out.String()
	require.Equal(t, 2, strings.Count(got, "#1 "))
	require.Contains(t, got, "CONGRATULATIONS ana and bo!")
	require.Contains(t, got, "SHARE")
}

func TestPadNameTruncates(t *testing.T) {
	t.Parallel()

	require.Equal(t, nameWidth, len(padName("ana")))
	long := padName(strings.Repeat("x", 40))
	require.True(t, strings.HasSuffix(long, "…"))
}
