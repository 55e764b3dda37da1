package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jask/yacht/internal/dice"
)

// Reroll is a parsed reroll selection. Keep ends the rolling early;
// otherwise Indices are the dice to roll again and the rest stay locked.
type Reroll struct {
	Keep    bool
	Indices []int
}

// ParseReroll reads a reroll selection such as "0 2,4" or "x". An empty
// line or any X token keeps all dice. Numbers outside 0-4 fail with
// dice.ErrInvalidDieIndex, anything else with ErrMalformedInput.
func ParseReroll(input string) (Reroll, error) {
	tokens := strings.FieldsFunc(strings.ToUpper(input), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return Reroll{Keep: true}, nil
	}

	keep := false
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "X" {
			keep = true
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Reroll{}, fmt.Errorf("%w: %q", ErrMalformedInput, tok)
		}
		if n < 0 || n >= dice.Count {
			return Reroll{}, fmt.Errorf("%w: %d (want 0-%d)", dice.ErrInvalidDieIndex, n, dice.Count-1)
		}
		indices = append(indices, n)
	}
	if keep {
		return Reroll{Keep: true}, nil
	}
	return Reroll{Indices: indices}, nil
}
