package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jask/yacht/internal/dice"
)

// Config sets up a game session.
type Config struct {
	Mode    Mode
	Players int
	// Seed fixes the session generator. Nil draws a seed from crypto/rand;
	// Engine.Seed reports it either way.
	Seed *int64
	// Shuffle randomizes turn order once, before the first round.
	Shuffle bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's event logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine sequences a whole game: Rounds rounds, every player once per
// round, in a fixed turn order. It is single-use and not safe for
// concurrent calls.
type Engine struct {
	cfg     Config
	seed    int64
	rng     *rand.Rand
	dice    *dice.Set
	term    Terminal
	turn    *TurnController
	log     zerolog.Logger
	players []*Player
	round   int
	done    bool
}

// New prepares a session. The one generator built here backs every die
// and the optional turn-order shuffle.
func New(cfg Config, term Terminal, opts ...Option) (*Engine, error) {
	if cfg.Players < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoPlayers, cfg.Players)
	}
	if term == nil {
		return nil, fmt.Errorf("game: terminal is required")
	}
	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		s, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	e := &Engine{
		cfg:  cfg,
		seed: seed,
		rng:  dice.NewRNG(seed),
		term: term,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dice = dice.NewSet(e.rng)
	e.turn = NewTurnController(e.dice, term, cfg.Mode, e.log)
	return e, nil
}

// Seed returns the seed the session generator was built from.
func (e *Engine) Seed() int64 { return e.seed }

// Mode returns the session mode.
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Round returns the current round, 0-indexed.
func (e *Engine) Round() int { return e.round }

// Players returns the players in turn order. Empty before Run.
func (e *Engine) Players() []*Player {
	out := make([]*Player, len(e.players))
	copy(out, e.players)
	return out
}

// Run plays the full game for names and returns the final standings.
// Blank names become "Player N".
func (e *Engine) Run(names []string) (Standings, error) {
	if e.done {
		return nil, ErrGameFinished
	}
	if len(names) != e.cfg.Players {
		return nil, fmt.Errorf("%w: got %d names for %d players", ErrPlayerNames, len(names), e.cfg.Players)
	}

	e.players = make([]*Player, 0, len(names))
	for i, n := range names {
		name := strings.TrimSpace(n)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		e.players = append(e.players, NewPlayer(name))
	}
	if e.cfg.Shuffle && len(e.players) > 1 {
		e.rng.Shuffle(len(e.players), func(i, j int) {
			e.players[i], e.players[j] = e.players[j], e.players[i]
		})
		order := make([]string, len(e.players))
		for i, p := range e.players {
			order[i] = p.Name
		}
		e.term.Notify("Turn order: " + strings.Join(order, ", "))
	}

	e.log.Info().
		Str("mode", e.cfg.Mode.String()).
		Int64("seed", e.seed).
		Int("players", len(e.players)).
		Msg("game started")

	for r := 0; r < Rounds; r++ {
		e.round = r
		e.term.Notify(fmt.Sprintf("=== ROUND %d of %d ===", r+1, Rounds))
		e.log.Debug().Int("round", r).Str("phase", PhaseFor(e.cfg.Mode, r).String()).Msg("round started")
		for _, p := range e.players {
			e.term.Notify(fmt.Sprintf("It is %s's turn.", p.Name))
			if _, err := e.turn.Play(p, r); err != nil {
				return nil, fmt.Errorf("round %d, %s: %w", r, p.Name, err)
			}
		}
	}
	e.done = true

	standings := Rank(e.players)
	winners := standings.Winners()
	names = make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	e.log.Info().Strs("winners", names).Int("score", winners[0].Total).Msg("game finished")
	return standings, nil
}
