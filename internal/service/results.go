package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/yacht/internal/database"
	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/game"
	"github.com/jask/yacht/internal/rules"
)

// Result is a finished game as the services see it.
type Result struct {
	Mode      game.Mode
	Seed      int64
	Standings game.Standings
}

// ResultsService records finished games and reads them back.
type ResultsService struct {
	Games *repository.GameRepo
	Log   zerolog.Logger
}

// Record stores res and returns the new game id.
func (s *ResultsService) Record(ctx context.Context, res Result) (string, error) {
	if s.Games == nil {
		return "", fmt.Errorf("results: game repo not configured")
	}
	if len(res.Standings) == 0 {
		return "", fmt.Errorf("results: %w", game.ErrNoPlayers)
	}

	g := repository.Game{
		ID:          uuid.NewString(),
		Mode:        res.Mode.String(),
		Seed:        res.Seed,
		PlayerCount: len(res.Standings),
		CreatedAt:   database.Now(),
	}
	for _, st := range res.Standings {
		p := repository.GamePlayer{
			ID:     uuid.NewString(),
			GameID: g.ID,
			Name:   st.Name,
			Seat:   st.Seat,
			Rank:   st.Rank,
			Total:  st.Total,
		}
		for _, r := range rules.Rules() {
			if !st.Used[r.Category] {
				continue
			}
			p.Scores = append(p.Scores, repository.CategoryScore{
				CategoryID: int(r.Category),
				Name:       r.Name,
				Points:     st.Scores[r.Category],
			})
		}
		g.Players = append(g.Players, p)
	}

	if err := s.Games.Insert(ctx, g); err != nil {
		return "", fmt.Errorf("record game: %w", err)
	}
	s.Log.Info().Str("game", g.ID).Int("players", g.PlayerCount).Msg("game recorded")
	return g.ID, nil
}

// History returns up to limit games, newest first. limit <= 0 means all.
func (s *ResultsService) History(ctx context.Context, limit int) ([]repository.Game, error) {
	return s.Games.List(ctx, limit)
}

// Game returns one recorded game with its scores, or nil.
func (s *ResultsService) Game(ctx context.Context, id string) (*repository.Game, error) {
	return s.Games.Get(ctx, id)
}

// Leaderboard returns the best limit player totals ever recorded.
func (s *ResultsService) Leaderboard(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error) {
	return s.Games.Leaderboard(ctx, limit)
}
