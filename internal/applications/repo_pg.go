package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo stores application records in Postgres.
type PGRepo struct {
	db *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db}
}

func (r *PGRepo) Save(ctx context.Context, app Application) error {
	const q = `
		INSERT INTO applications (id, original_name, resume_url, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			original_name = EXCLUDED.original_name,
			resume_url = EXCLUDED.resume_url`
	if _, err := r.db.ExecContext(ctx, q, app.ID, app.OriginalName, app.ResumeURL, app.CreatedAt); err != nil {
		return fmt.Errorf("save application %s: %w", app.ID, err)
	}
	return nil
}

func (r *PGRepo) Get(ctx context.Context, id string) (Application, error) {
	const q = `
		SELECT id, original_name, resume_url, created_at
		FROM applications
		WHERE id = $1`
	var app Application
	err := r.db.QueryRowContext(ctx, q, id).Scan(&app.ID, &app.OriginalName, &app.ResumeURL, &app.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	if err != nil {
		return Application{}, fmt.Errorf("get application %s: %w", id, err)
	}
	return app, nil
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Application, error) {
	const q = `
		SELECT id, original_name, resume_url, created_at
		FROM applications
		ORDER BY created_at DESC
		LIMIT $1`
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.OriginalName, &app.ResumeURL, &app.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}
