package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/yacht/internal/database"
	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/game"
	"github.com/jask/yacht/internal/rules"
)

func setupDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	db, err := database.Setup(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, ctx
}

// sampleResult is ana 5+20=25 in seat 0 and bo 30 in seat 1.
func sampleResult(t *testing.T) Result {
	t.Helper()
	ana := game.NewPlayer("ana")
	require.NoError(t, ana.Board.Register(rules.Fives, 5))
	require.NoError(t, ana.Board.Register(rules.Choice, 20))
	bo := game.NewPlayer("bo")
	require.NoError(t, bo.Board.Register(rules.FullHouse, 30))
	return Result{Mode: game.Extended, Seed: 9, Standings: game.Rank([]*game.Player{ana, bo})}
}

func TestResultsRecordAndRead(t *testing.T) {
	t.Parallel()

	db, ctx := setupDB(t)
	svc := &ResultsService{Games: repository.NewGameRepo(db), Log: zerolog.Nop()}

	id, err := svc.Record(ctx, sampleResult(t))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	g, err := svc.Game(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.Equal(t, "extended", g.Mode)
	require.Equal(t, int64(9), g.Seed)
	require.Equal(t, 2, g.PlayerCount)
	require.Len(t, g.Players, 2)

	bo, ana := g.Players[0], g.Players[1]
	require.Equal(t, "bo", bo.Name)
	require.Equal(t, 1, bo.Rank)
	require.Equal(t, 1, bo.Seat)
	require.Equal(t, []repository.CategoryScore{{CategoryID: 6, Name: "Full House", Points: 30}}, bo.Scores)
	require.Equal(t, "ana", ana.Name)
	require.Equal(t, 25, ana.Total)
	require.Len(t, ana.Scores, 2)

	history, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, id, history[0].ID)

	board, err := svc.Leaderboard(ctx, 5)
	require.NoError(t, err)
	require.Len(t, board, 2)
	require.Equal(t, "bo", board[0].Name)
	require.Equal(t, 30, board[0].Total)
}

func TestResultsRecordRejectsEmpty(t *testing.T) {
	t.Parallel()

	db, ctx := setupDB(t)
	svc := &ResultsService{Games: repository.NewGameRepo(db)}
	_, err := svc.Record(ctx, Result{})
	require.ErrorIs(t, err, game.ErrNoPlayers)

	_, err = (&ResultsService{}).Record(ctx, sampleResult(t))
	require.Error(t, err)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()

	db, ctx := setupDB(t)
	results := &ResultsService{Games: repository.NewGameRepo(db)}
	_, err := results.Record(ctx, sampleResult(t))
	require.NoError(t, err)

	require.NoError(t, (&MaintenanceService{DB: db}).Reset(ctx))

	n, err := results.Games.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	cats, err := repository.NewCategoryRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, rules.Count)

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
