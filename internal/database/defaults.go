package database

import (
	"context"
	"database/sql"

	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/rules"
)

// SeedDefaults makes the categories table match the scoring rules. It is
// idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	catRepo := repository.NewCategoryRepo(db)
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, r := range rules.Rules() {
			cat := repository.Category{ID: int(r.Category), Name: r.Name}
			if err := catRepo.UpsertTx(ctx, tx, cat); err != nil {
				return err
			}
		}
		return nil
	})
}
