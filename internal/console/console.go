// Package console is the line-oriented terminal a game is played on. It
// implements game.Terminal and the setup and results screens around it.
package console

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/yacht/internal/dice"
	"github.com/jask/yacht/internal/game"
	"github.com/jask/yacht/internal/rules"
)

//go:embed rules.txt
var rulesText string

const nameWidth = 20

// Console reads answers from in and renders everything to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	st  styles
}

var _ game.Terminal = (*Console)(nil)

// New returns a console over in and out. Colors are used only when out is
// a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		st:  newStyles(lipgloss.NewRenderer(out)),
	}
}

// ReadLine prints prompt and returns the next input line without its line
// ending. A final line with no newline is returned before io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.st.prompt.Render(prompt))
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ShowDice prints the faces with their reroll positions.
func (c *Console) ShowDice(values [dice.Count]int) {
	var b strings.Builder
	b.WriteString("Dice:")
	for i, v := range values {
		b.WriteString("  ")
		b.WriteString(c.st.index.Render(fmt.Sprintf("[%d]", i)))
		b.WriteString(" ")
		b.WriteString(c.st.die.Render(strconv.Itoa(v)))
	}
	fmt.Fprintln(c.out, b.String())
}

// ShowScoreboard prints every category with its score. Open categories
// show "-" and, with a preview hand, what that hand would score there.
func (c *Console) ShowScoreboard(board *game.Scoreboard, preview *rules.Hand) {
	var b strings.Builder
	b.WriteString(c.st.title.Render("Scoreboard"))
	b.WriteString("\n")
	scores, used := board.Scores(), board.Used()
	for _, r := range rules.Rules() {
		cat := r.Category
		row := fmt.Sprintf("%2d  %-16s", int(cat), r.Name)
		if used[cat] {
			b.WriteString(c.st.filled.Render(fmt.Sprintf("%s %3d", row, scores[cat])))
		} else {
			b.WriteString(c.st.open.Render(fmt.Sprintf("%s %3s", row, "-")))
			if preview != nil {
				b.WriteString(c.st.preview.Render(fmt.Sprintf("  (+%d)", r.Score(*preview))))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(c.st.total.Render(fmt.Sprintf("    %-16s %3d", "Total", board.Total())))
	fmt.Fprintln(c.out, b.String())
}

// Notify prints msg on its own line. Lines starting with "Error" are
// highlighted.
func (c *Console) Notify(msg string) {
	style := c.st.notice
	if strings.HasPrefix(msg, "Error") || strings.HasPrefix(msg, "Invalid") {
		style = c.st.errText
	}
	fmt.Fprintln(c.out, style.Render(msg))
}

// Welcome prints the banner.
func (c *Console) Welcome() {
	fmt.Fprintln(c.out, c.st.banner.Render("Welcome to Yacht!"))
}

// ShowRules prints the rules text.
func (c *Console) ShowRules() {
	fmt.Fprintln(c.out, c.st.title.Render("Rules"))
	fmt.Fprintln(c.out, rulesText)
}

// Confirm asks a yes/no question until it gets y, yes, n or no.
func (c *Console) Confirm(question string) (bool, error) {
	for {
		line, err := c.ReadLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Notify("Error: please answer y or n.")
	}
}

// AskPlayerCount asks until it gets a whole number of at least one.
func (c *Console) AskPlayerCount() (int, error) {
	for {
		line, err := c.ReadLine("How many players (minimum 1)? ")
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil {
			c.Notify(fmt.Sprintf("Error: '%s' is not a valid number.", line))
			continue
		}
		if n < 1 {
			c.Notify("Error: The game requires at least 1 player to start.")
			continue
		}
		return n, nil
	}
}

// AskPlayerNames asks for n names. Names are trimmed; blank answers stay
// blank so the engine can number them.
func (c *Console) AskPlayerNames(n int) ([]string, error) {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := c.ReadLine(fmt.Sprintf("Type player %d's name: ", i+1))
		if err != nil {
			return nil, err
		}
		names = append(names, strings.TrimSpace(line))
	}
	return names, nil
}

// ShowStandings prints the final results: places with trophies for the
// top three, each player's filled categories, and the winners.
func (c *Console) ShowStandings(s game.Standings) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, c.st.title.Render("GAME OVER - FINAL RESULTS"))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out)

	for _, st := range s {
		line := fmt.Sprintf("%s%s: %5d points", c.trophy(st.Rank), padName(st.Name), st.Total)
		fmt.Fprintln(c.out, line)
		fmt.Fprintln(c.out, "  Categories:")
		for _, r := range rules.Rules() {
			if st.Used[r.Category] {
				fmt.Fprintf(c.out, "    %-18s: %3d\n", r.Name, st.Scores[r.Category])
			}
		}
		fmt.Fprintln(c.out)
	}

	winners := s.Winners()
	if len(winners) == 0 {
		return
	}
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	stars := strings.Repeat("*", 20)
	fmt.Fprintln(c.out, stars)
	fmt.Fprintln(c.out, c.st.winner.Render("CONGRATULATIONS "+strings.Join(names, " and ")+"!"))
	if len(winners) > 1 {
		fmt.Fprintln(c.out, c.st.winner.Render("YOU SHARE THE YACHT CHAMPIONSHIP!"))
	} else {
		fmt.Fprintln(c.out, c.st.winner.Render("YOU ARE THE YACHT CHAMPION!"))
	}
	fmt.Fprintln(c.out, stars)
}

func (c *Console) trophy(rank int) string {
	switch rank {
	case 1:
		return c.st.gold.Render("#1 ")
	case 2:
		return c.st.silver.Render("#2 ")
	case 3:
		return c.st.bronze.Render("#3 ")
	default:
		return "   "
	}
}

func padName(name string) string {
	name = ansi.Truncate(name, nameWidth, "…")
	if w := ansi.StringWidth(name); w < nameWidth {
		name += strings.Repeat(" ", nameWidth-w)
	}
	return name
}
