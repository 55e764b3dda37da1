package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jask/yacht/internal/dice"
	"github.com/jask/yacht/internal/rules"
)

// Terminal is the IO boundary a game talks to. Every call is synchronous;
// ReadLine blocks until the player answers.
type Terminal interface {
	// ReadLine shows prompt and returns the next line of input.
	ReadLine(prompt string) (string, error)
	// ShowDice displays the five current faces.
	ShowDice(values [dice.Count]int)
	// ShowScoreboard displays board; when preview is set, open categories
	// show what preview would score in them.
	ShowScoreboard(board *Scoreboard, preview *rules.Hand)
	// Notify displays a one-line message.
	Notify(msg string)
}

// TurnResult describes a completed turn.
type TurnResult struct {
	Round    int
	Player   string
	Phase    Phase
	Rolls    int
	Hand     rules.Hand
	Category rules.Category
	Points   int
}

// TurnController runs one player's turn: rolls, reroll selection, category
// resolution and score registration.
type TurnController struct {
	dice *dice.Set
	term Terminal
	mode Mode
	log  zerolog.Logger
}

// NewTurnController returns a controller that rolls set and talks to term.
func NewTurnController(set *dice.Set, term Terminal, mode Mode, logger zerolog.Logger) *TurnController {
	return &TurnController{dice: set, term: term, mode: mode, log: logger}
}

// Play runs p's turn in round (0-indexed). Input errors are re-prompted;
// read errors, a filled forced category and exhausted category retries end
// the turn with an error.
func (t *TurnController) Play(p *Player, round int) (TurnResult, error) {
	phase := PhaseFor(t.mode, round)
	maxRolls := phase.MaxRolls()
	res := TurnResult{Round: round, Player: p.Name, Phase: phase}

	t.dice.UnlockAll()
	if t.mode == Extended {
		t.term.Notify(phase.Header())
	}

	for j := 0; j < maxRolls; j++ {
		t.dice.RollUnlocked()
		res.Rolls++
		values := t.dice.Values()
		t.term.ShowDice(values)
		t.log.Debug().
			Int("round", round).
			Str("player", p.Name).
			Int("roll", res.Rolls).
			Ints("dice", values[:]).
			Msg("rolled")

		left := maxRolls - 1 - j
		if left == 0 {
			break
		}
		sel, err := t.askReroll(left)
		if err != nil {
			return res, err
		}
		if sel.Keep {
			break
		}
		t.dice.LockAll()
		for _, i := range sel.Indices {
			if err := t.dice.SetLocked(i, false); err != nil {
				return res, err
			}
		}
	}

	res.Hand = rules.Hand(t.dice.Values())
	cat, points, err := t.score(p, round, phase, res.Hand)
	if err != nil {
		return res, err
	}
	res.Category, res.Points = cat, points
	t.term.Notify(fmt.Sprintf("Points registered: %d (%s)", points, cat))
	t.log.Info().
		Int("round", round).
		Str("player", p.Name).
		Str("category", cat.String()).
		Int("points", points).
		Msg("score registered")
	return res, nil
}

func (t *TurnController) askReroll(rollsLeft int) (Reroll, error) {
	prompt := fmt.Sprintf("Rolls left: %d. Which dice do you want to REROLL? (0-4, or X to keep): ", rollsLeft)
	for {
		line, err := t.term.ReadLine(prompt)
		if err != nil {
			return Reroll{}, fmt.Errorf("read reroll selection: %w", err)
		}
		sel, err := ParseReroll(line)
		if err == nil {
			return sel, nil
		}
		t.term.Notify(fmt.Sprintf("Invalid! Use 0-4 or X (%v)", err))
	}
}

func (t *TurnController) score(p *Player, round int, phase Phase, hand rules.Hand) (rules.Category, int, error) {
	if cat, forced := phase.ForcedCategory(round); forced {
		t.term.Notify(fmt.Sprintf("Downward phase: scoring automatically in category %d (%s)", cat, cat))
		points, err := rules.Score(cat, hand)
		if err != nil {
			return -1, 0, err
		}
		if err := p.Board.Register(cat, points); err != nil {
			t.log.Error().Err(err).Int("round", round).Str("player", p.Name).Msg("forced category rejected")
			return -1, 0, fmt.Errorf("forced category for round %d: %w", round, err)
		}
		return cat, points, nil
	}

	t.term.ShowScoreboard(p.Board, &hand)
	allowed := p.Board.Remaining()
	collisions := 0
	for {
		cat, err := t.askCategory()
		if err != nil {
			return -1, 0, err
		}
		points, err := rules.Score(cat, hand)
		if err != nil {
			return -1, 0, err
		}
		err = p.Board.Register(cat, points)
		if err == nil {
			return cat, points, nil
		}
		if !errors.Is(err, ErrCategoryAlreadyFilled) {
			return -1, 0, err
		}
		collisions++
		t.log.Warn().Str("player", p.Name).Str("category", cat.String()).Int("attempt", collisions).Msg("category already filled")
		if collisions > allowed {
			return -1, 0, fmt.Errorf("%w: %d filled categories chosen with %d open", ErrRetriesExhausted, collisions, allowed)
		}
		t.term.Notify("Error: Category already filled! Choose another one.")
	}
}

func (t *TurnController) askCategory() (rules.Category, error) {
	for {
		line, err := t.term.ReadLine("Choose a category index (0-11) or name: ")
		if err != nil {
			return -1, fmt.Errorf("read category: %w", err)
		}
		cat, err := rules.ParseCategory(line)
		if err == nil {
			return cat, nil
		}
		if errors.Is(err, rules.ErrInvalidCategory) {
			t.term.Notify("Error: Number must be between 0 and 11.")
			continue
		}
		t.term.Notify(fmt.Sprintf("Error: '%s' is not a valid category.", strings.TrimSpace(line)))
	}
}
