package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

const heroColumns = `id, greeting, name, tagline, description,
	primary_button_text, primary_button_link,
	secondary_button_text, secondary_button_link, updated_at`

// GetHero returns the singleton hero section, or sql.ErrNoRows.
func (q *Queries) GetHero(ctx context.Context) (model.Hero, error) {
	row := q.db.QueryRowContext(ctx, "SELECT "+heroColumns+" FROM hero LIMIT 1")
	var h model.Hero
	err := row.Scan(&h.ID, &h.Greeting, &h.Name, &h.Tagline, &h.Description,
		&h.PrimaryButtonText, &h.PrimaryButtonLink,
		&h.SecondaryButtonText, &h.SecondaryButtonLink, &h.UpdatedAt)
	return h, err
}

// EnsureHero returns the singleton row, creating it with defaults on first
// call. The second return value reports whether the row was created.
func (q *Queries) EnsureHero(ctx context.Context) (model.Hero, bool, error) {
	h, err := q.GetHero(ctx)
	if err == nil {
		return h, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Hero{}, false, err
	}

	// Fixed id so concurrent first reads cannot create two rows.
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO hero (id, greeting, name, tagline, description,
			primary_button_text, primary_button_link, updated_at)
		 VALUES (1, 'Hi, my name is', 'Your Name', 'I build things for the web.',
			'Welcome to my portfolio.', 'View Projects', '#projects', ?)
		 ON CONFLICT (id) DO NOTHING`,
		time.Now().UTC())
	if err != nil {
		return model.Hero{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return model.Hero{}, false, err
	}

	h, err = q.GetHero(ctx)
	return h, inserted > 0, err
}

// UpdateHeroParams holds the partial update for the hero section.
// Nil fields are left unchanged.
type UpdateHeroParams struct {
	Greeting            *string
	Name                *string
	Tagline             *string
	Description         *string
	PrimaryButtonText   *string
	PrimaryButtonLink   *string
	SecondaryButtonText *string
	SecondaryButtonLink *string
}

// UpdateHero applies a partial update to the existing singleton row.
// Returns sql.ErrNoRows if the row has never been initialized.
func (q *Queries) UpdateHero(ctx context.Context, arg UpdateHeroParams) (model.Hero, error) {
	h, err := q.GetHero(ctx)
	if err != nil {
		return model.Hero{}, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&h.Greeting, arg.Greeting)
	apply(&h.Name, arg.Name)
	apply(&h.Tagline, arg.Tagline)
	apply(&h.Description, arg.Description)
	apply(&h.PrimaryButtonText, arg.PrimaryButtonText)
	apply(&h.PrimaryButtonLink, arg.PrimaryButtonLink)
	apply(&h.SecondaryButtonText, arg.SecondaryButtonText)
	apply(&h.SecondaryButtonLink, arg.SecondaryButtonLink)

	_, err = q.db.ExecContext(ctx,
		`UPDATE hero SET greeting = ?, name = ?, tagline = ?, description = ?,
			primary_button_text = ?, primary_button_link = ?,
			secondary_button_text = ?, secondary_button_link = ?, updated_at = ?
		 WHERE id = ?`,
		h.Greeting, h.Name, h.Tagline, h.Description,
		h.PrimaryButtonText, h.PrimaryButtonLink,
		h.SecondaryButtonText, h.SecondaryButtonLink, time.Now().UTC(), h.ID)
	if err != nil {
		return model.Hero{}, err
	}
	return q.GetHero(ctx)
}
