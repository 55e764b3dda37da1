package repository

import (
	"context"
	"database/sql"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CategoryRepo handles categories.
type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Upsert(ctx context.Context, c Category) error {
	return upsertCategory(ctx, r.db, c)
}

// UpsertTx is Upsert inside tx.
func (r *CategoryRepo) UpsertTx(ctx context.Context, tx *sql.Tx, c Category) error {
	return upsertCategory(ctx, tx, c)
}

func upsertCategory(ctx context.Context, ex execer, c Category) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO categories(id, name)
	VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name;
	`, c.ID, c.Name)
	return err
}

func (r *CategoryRepo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
