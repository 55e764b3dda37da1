package game

import (
	"fmt"
	"strings"

	"github.com/jask/yacht/internal/rules"
)

// Rounds is the length of a game: one round per category.
const Rounds = rules.Count

// Mode selects the roll and category rules applied each round.
type Mode int

const (
	// Classic allows three rolls and a free category every round.
	Classic Mode = iota
	// Extended splits the game into Downward, First-Roll and Free phases.
	Extended
)

func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "classic" or "extended" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return Classic, nil
	case "extended":
		return Extended, nil
	default:
		return Classic, fmt.Errorf("invalid mode %q: must be 'classic' or 'extended'", s)
	}
}

// Phase is the rule set in force for one round.
type Phase int

const (
	PhaseClassic Phase = iota
	// PhaseDownward is Extended rounds 0-3: up to three rolls, category forced to the round index.
	PhaseDownward
	// PhaseFirstRoll is Extended rounds 4-7: a single roll, free category.
	PhaseFirstRoll
	// PhaseFree is Extended rounds 8-11: up to three rolls, free category.
	PhaseFree
)

// PhaseFor returns the phase of round (0-indexed) under mode.
func PhaseFor(mode Mode, round int) Phase {
	if mode != Extended {
		return PhaseClassic
	}
	switch {
	case round <= 3:
		return PhaseDownward
	case round <= 7:
		return PhaseFirstRoll
	default:
		return PhaseFree
	}
}

// MaxRolls is the roll budget of a turn in this phase.
func (p Phase) MaxRolls() int {
	if p == PhaseFirstRoll {
		return 1
	}
	return 3
}

// ForcedCategory returns the category a turn must score in, if the phase
// fixes one.
func (p Phase) ForcedCategory(round int) (rules.Category, bool) {
	if p != PhaseDownward {
		return -1, false
	}
	return rules.Category(round), true
}

func (p Phase) String() string {
	switch p {
	case PhaseClassic:
		return "classic"
	case PhaseDownward:
		return "downward"
	case PhaseFirstRoll:
		return "first-roll"
	case PhaseFree:
		return "free"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Header is the banner shown at the start of an Extended turn.
func (p Phase) Header() string {
	switch p {
	case PhaseDownward:
		return ">>> MODE: DOWNWARD (3 Rolls, Fixed Category)"
	case PhaseFirstRoll:
		return ">>> MODE: 1ST ROLL (1 Roll, Choice Category)"
	case PhaseFree:
		return ">>> MODE: FREE (3 Rolls, Choice Category)"
	default:
		return ""
	}
}
