package game

import (
	"errors"
	"fmt"

	"github.com/jask/yacht/internal/rules"
)

var (
	// ErrCategoryAlreadyFilled is returned when a score is registered twice
	// for the same category.
	ErrCategoryAlreadyFilled = errors.New("category already filled")
	// ErrMalformedInput is returned for a player response that cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")
	// ErrRetriesExhausted ends a turn whose player kept choosing filled
	// categories more times than there are unfilled ones.
	ErrRetriesExhausted = errors.New("category retries exhausted")
	// ErrNoPlayers is returned when a game is created for fewer than one player.
	ErrNoPlayers = errors.New("at least one player is required")
	// ErrPlayerNames is returned when Run gets a name count that does not
	// match the configured number of players.
	ErrPlayerNames = errors.New("player names do not match player count")
	// ErrGameFinished is returned when Run is called on a finished engine.
	ErrGameFinished = errors.New("game already finished")
)

// Scoreboard records, per category, whether it is filled and with what.
// A category is written at most once; nothing resets or overwrites it.
type Scoreboard struct {
	scores [rules.Count]int
	used   [rules.Count]bool
}

// NewScoreboard returns an empty board.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Register writes points into cat. It is the only way to change a board.
func (b *Scoreboard) Register(cat rules.Category, points int) error {
	if err := checkCategory(cat); err != nil {
		return err
	}
	if b.used[cat] {
		return fmt.Errorf("%w: %s", ErrCategoryAlreadyFilled, cat)
	}
	b.scores[cat] = points
	b.used[cat] = true
	return nil
}

// IsUsed reports whether cat has been filled.
func (b *Scoreboard) IsUsed(cat rules.Category) (bool, error) {
	if err := checkCategory(cat); err != nil {
		return false, err
	}
	return b.used[cat], nil
}

// ScoreAt returns the points in cat, 0 while it is unfilled.
func (b *Scoreboard) ScoreAt(cat rules.Category) (int, error) {
	if err := checkCategory(cat); err != nil {
		return 0, err
	}
	return b.scores[cat], nil
}

// Total sums every category.
func (b *Scoreboard) Total() int {
	total := 0
	for _, s := range b.scores {
		total += s
	}
	return total
}

// Filled counts the categories already written.
func (b *Scoreboard) Filled() int {
	n := 0
	for _, u := range b.used {
		if u {
			n++
		}
	}
	return n
}

// Remaining counts the categories still open.
func (b *Scoreboard) Remaining() int { return rules.Count - b.Filled() }

// Complete reports whether every category is filled.
func (b *Scoreboard) Complete() bool { return b.Filled() == rules.Count }

// Scores returns a copy of the per-category points.
func (b *Scoreboard) Scores() [rules.Count]int { return b.scores }

// Used returns a copy of the per-category filled flags.
func (b *Scoreboard) Used() [rules.Count]bool { return b.used }

func checkCategory(cat rules.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %d (want 0-%d)", rules.ErrInvalidCategory, int(cat), rules.Count-1)
	}
	return nil
}

// Player is a named participant and the board they score on.
type Player struct {
	Name  string
	Board *Scoreboard
}

// NewPlayer returns a player with an empty board.
func NewPlayer(name string) *Player {
	return &Player{Name: name, Board: NewScoreboard()}
}

// Total returns the player's score so far.
func (p *Player) Total() int { return p.Board.Total() }
