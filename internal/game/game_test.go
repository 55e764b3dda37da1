package game

import (
	"io"
	"strings"

	"github.com/jask/yacht/internal/dice"
	"github.com/jask/yacht/internal/rules"
)

// scriptTerminal answers prompts from a fixed script and records output.
// ReadLine returns io.EOF once the script runs out.
type scriptTerminal struct {
	input       []string
	prompts     []string
	rolls       [][dice.Count]int
	notices     []string
	boardsShown int
}

func newScript(lines ...string) *scriptTerminal {
	return &scriptTerminal{input: lines}
}

func (s *scriptTerminal) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.input) == 0 {
		return "", io.EOF
	}
	line := s.input[0]
	s.input = s.input[1:]
	return line, nil
}

func (s *scriptTerminal) ShowDice(values [dice.Count]int) {
	s.rolls = append(s.rolls, values)
}

func (s *scriptTerminal) ShowScoreboard(*Scoreboard, *rules.Hand) {
	s.boardsShown++
}

func (s *scriptTerminal) Notify(msg string) {
	s.notices = append(s.notices, msg)
}

func (s *scriptTerminal) noticed(substr string) bool {
	for _, n := range s.notices {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}

func (s *scriptTerminal) rerollPrompts() int {
	n := 0
	for _, p := range s.prompts {
		if strings.HasPrefix(p, "Rolls left") {
			n++
		}
	}
	return n
}
