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

// GetContactInfo returns the singleton contact section, or sql.ErrNoRows.
func (q *Queries) GetContactInfo(ctx context.Context) (model.ContactInfo, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT id, email, phone, location, social_links, updated_at FROM contact_info LIMIT 1")

	var (
		c     model.ContactInfo
		links string
	)
	if err := row.Scan(&c.ID, &c.Email, &c.Phone, &c.Location, &links, &c.UpdatedAt); err != nil {
		return model.ContactInfo{}, err
	}
	if err := json.Unmarshal([]byte(links), &c.SocialLinks); err != nil {
		return model.ContactInfo{}, fmt.Errorf("decoding social links: %w", err)
	}
	return c, nil
}

// EnsureContactInfo returns the singleton row, creating it with defaults on
// first call. The second return value reports whether the row was created.
func (q *Queries) EnsureContactInfo(ctx context.Context) (model.ContactInfo, bool, error) {
	c, err := q.GetContactInfo(ctx)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.ContactInfo{}, false, err
	}

	// Fixed id so concurrent first reads cannot create two rows.
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_info (id, email, social_links, updated_at)
		 VALUES (1, 'you@example.com', '[]', ?)
		 ON CONFLICT (id) DO NOTHING`,
		time.Now().UTC())
	if err != nil {
		return model.ContactInfo{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return model.ContactInfo{}, false, err
	}

	c, err = q.GetContactInfo(ctx)
	return c, inserted > 0, err
}

// UpdateContactInfoParams holds the partial update for the contact section.
// Nil fields are left unchanged.
type UpdateContactInfoParams struct {
	Email       *string
	Phone       *string
	Location    *string
	SocialLinks []model.SocialLink
}

// UpdateContactInfo applies a partial update to the existing singleton row.
// Returns sql.ErrNoRows if the row has never been initialized.
func (q *Queries) UpdateContactInfo(ctx context.Context, arg UpdateContactInfoParams) (model.ContactInfo, error) {
	c, err := q.GetContactInfo(ctx)
	if err != nil {
		return model.ContactInfo{}, err
	}

	if arg.Email != nil {
		c.Email = *arg.Email
	}
	if arg.Phone != nil {
		c.Phone = *arg.Phone
	}
	if arg.Location != nil {
		c.Location = *arg.Location
	}
	if arg.SocialLinks != nil {
		c.SocialLinks = arg.SocialLinks
	}

	links, err := json.Marshal(c.SocialLinks)
	if err != nil {
		return model.ContactInfo{}, fmt.Errorf("encoding social links: %w", err)
	}

	_, err = q.db.ExecContext(ctx,
		`UPDATE contact_info SET email = ?, phone = ?, location = ?, social_links = ?, updated_at = ?
		 WHERE id = ?`,
		c.Email, c.Phone, c.Location, string(links), time.Now().UTC(), c.ID)
	if err != nil {
		return model.ContactInfo{}, err
	}
	return q.GetContactInfo(ctx)
}
