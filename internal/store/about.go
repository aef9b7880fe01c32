package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

// GetAbout returns the singleton about section, or sql.ErrNoRows.
func (q *Queries) GetAbout(ctx context.Context) (model.About, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT id, title, content, image_url, details, updated_at FROM about LIMIT 1")

	var (
		a       model.About
		details string
	)
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.ImageURL, &details, &a.UpdatedAt); err != nil {
		return model.About{}, err
	}
	if err := json.Unmarshal([]byte(details), &a.Details); err != nil {
		return model.About{}, fmt.Errorf("decoding about details: %w", err)
	}
	return a, nil
}

// EnsureAbout returns the singleton row, creating it with defaults on first
// call. The second return value reports whether the row was created.
func (q *Queries) EnsureAbout(ctx context.Context) (model.About, bool, error) {
	a, err := q.GetAbout(ctx)
	if err == nil {
		return a, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.About{}, false, err
	}

	// Fixed id so concurrent first reads cannot create two rows.
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO about (id, title, content, details, updated_at)
		 VALUES (1, 'About Me', 'Tell visitors about yourself here.', '[]', ?)
		 ON CONFLICT (id) DO NOTHING`,
		time.Now().UTC())
	if err != nil {
		return model.About{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return model.About{}, false, err
	}

	a, err = q.GetAbout(ctx)
	return a, inserted > 0, err
}

// UpdateAboutParams holds the partial update for the about section.
// Nil fields are left unchanged.
type UpdateAboutParams struct {
	Title    *string
	Content  *string
	ImageURL *string
	Details  []model.AboutDetail
}

// UpdateAbout applies a partial update to the existing singleton row.
// Returns sql.ErrNoRows if the row has never been initialized.
func (q *Queries) UpdateAbout(ctx context.Context, arg UpdateAboutParams) (model.About, error) {
	a, err := q.GetAbout(ctx)
	if err != nil {
		return model.About{}, err
	}

	if arg.Title != nil {
		a.Title = *arg.Title
	}
	if arg.Content != nil {
		a.Content = *arg.Content
	}
	if arg.ImageURL != nil {
		a.ImageURL = *arg.ImageURL
	}
	if arg.Details != nil {
		a.Details = arg.Details
	}

	details, err := json.Marshal(a.Details)
	if err != nil {
		return model.About{}, fmt.Errorf("encoding about details: %w", err)
	}

	_, err = q.db.ExecContext(ctx,
		`UPDATE about SET title = ?, content = ?, image_url = ?, details = ?, updated_at = ?
		 WHERE id = ?`,
		a.Title, a.Content, a.ImageURL, string(details), time.Now().UTC(), a.ID)
	if err != nil {
		return model.About{}, err
	}
	return q.GetAbout(ctx)
}
