package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// GameRepo handles finished games, their players and per-category scores.
type GameRepo struct {
	db *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// Insert stores g with all its players and scores in one transaction.
func (r *GameRepo) Insert(ctx context.Context, g Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := insertGame(ctx, tx, g); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertGame(ctx context.Context, tx *sql.Tx, g Game) error {
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO games(id, mode, seed, player_count, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, g.ID, g.Mode, g.Seed, g.PlayerCount, g.CreatedAt); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	for _, p := range g.Players {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO game_players(id, game_id, name, seat, rank, total)
		VALUES (?, ?, ?, ?, ?, ?);
		`, p.ID, g.ID, p.Name, p.Seat, p.Rank, p.Total); err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
		for _, s := range p.Scores {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_scores(player_id, category_id, points)
			VALUES (?, ?, ?);
			`, p.ID, s.CategoryID, s.Points); err != nil {
				return fmt.Errorf("insert score %d for %s: %w", s.CategoryID, p.Name, err)
			}
		}
	}
	return nil
}

// List returns the most recent games first, with players but without
// per-category scores. limit <= 0 returns every game.
func (r *GameRepo) List(ctx context.Context, limit int) ([]Game, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, mode, seed, player_count, created_at
	FROM games
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	var out []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Mode, &g.Seed, &g.PlayerCount, &g.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// one connection: players are read after the games cursor is closed
	for i := range out {
		players, err := r.players(ctx, out[i].ID, false)
		if err != nil {
			return nil, err
		}
		out[i].Players = players
	}
	return out, nil
}

// Get returns the game with id, including scores, or nil if there is none.
func (r *GameRepo) Get(ctx context.Context, id string) (*Game, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, mode, seed, player_count, created_at FROM games WHERE id = ?`, id)
	var g Game
	if err := row.Scan(&g.ID, &g.Mode, &g.Seed, &g.PlayerCount, &g.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	players, err := r.players(ctx, g.ID, true)
	if err != nil {
		return nil, err
	}
	g.Players = players
	return &g, nil
}

func (r *GameRepo) players(ctx context.Context, gameID string, withScores bool) ([]GamePlayer, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, game_id, name, seat, rank, total
	FROM game_players
	WHERE game_id = ?
	ORDER BY rank, seat`, gameID)
	if err != nil {
		return nil, err
	}
	var out []GamePlayer
	for rows.Next() {
		var p GamePlayer
		if err := rows.Scan(&p.ID, &p.GameID, &p.Name, &p.Seat, &p.Rank, &p.Total); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if !withScores {
		return out, nil
	}
	for i := range out {
		scores, err := r.scores(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Scores = scores
	}
	return out, nil
}

func (r *GameRepo) scores(ctx context.Context, playerID string) ([]CategoryScore, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT s.category_id, c.name, s.points
	FROM player_scores s
	JOIN categories c ON c.id = s.category_id
	WHERE s.player_id = ?
	ORDER BY s.category_id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CategoryScore
	for rows.Next() {
		var s CategoryScore
		if err := rows.Scan(&s.CategoryID, &s.Name, &s.Points); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Leaderboard returns the highest player totals across all games. Equal
// totals are ordered by who got there first.
func (r *GameRepo) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT p.game_id, p.name, g.mode, p.total, p.rank, g.created_at
	FROM game_players p
	JOIN games g ON g.id = p.game_id
	ORDER BY p.total DESC, g.created_at ASC, p.seat ASC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.GameID, &e.Name, &e.Mode, &e.Total, &e.Rank, &e.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of recorded games.
func (r *GameRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n)
	return n, err
}
