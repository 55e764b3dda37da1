package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/yacht/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the history browser.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes every recorded game. Categories and the schema stay so the
// app can keep recording.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"player_scores",
			"game_players",
			"games",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
