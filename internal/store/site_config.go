package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

const siteConfigColumns = "id, site_name, theme_color, meta_description, setup_key, updated_at"

// GetSiteConfig returns the singleton site configuration, or sql.ErrNoRows
// if it has not been initialized yet.
func (q *Queries) GetSiteConfig(ctx context.Context) (model.SiteConfig, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+siteConfigColumns+" FROM site_config LIMIT 1")
	var c model.SiteConfig
	err := row.Scan(&c.ID, &c.SiteName, &c.ThemeColor, &c.MetaDescription, &c.SetupKey, &c.UpdatedAt)
	return c, err
}

// EnsureSiteConfig returns the singleton row, creating it with defaults and
// the given setup key on first call. The second return value reports whether
// the row was created by this call.
func (q *Queries) EnsureSiteConfig(ctx context.Context, setupKey string) (model.SiteConfig, bool, error) {
	cfg, err := q.GetSiteConfig(ctx)
	if err == nil {
		return cfg, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.SiteConfig{}, false, err
	}

	// Fixed id so concurrent first reads cannot create two rows.
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO site_config (id, site_name, theme_color, meta_description, setup_key, updated_at)
		 VALUES (1, 'Portfolio', '#6366f1', 'Personal portfolio website', ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		setupKey, time.Now().UTC())
	if err != nil {
		return model.SiteConfig{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return model.SiteConfig{}, false, err
	}

	cfg, err = q.GetSiteConfig(ctx)
	return cfg, inserted > 0, err
}

// UpdateSiteConfigParams holds the partial update for the site configuration.
// Nil fields are left unchanged. The setup key is deliberately not updatable
// through this path.
type UpdateSiteConfigParams struct {
	SiteName        *string
	ThemeColor      *string
	MetaDescription *string
}

// UpdateSiteConfig applies a partial update to the existing singleton row.
// Returns sql.ErrNoRows if the row has never been initialized.
func (q *Queries) UpdateSiteConfig(ctx context.Context, arg UpdateSiteConfigParams) (model.SiteConfig, error) {
	cfg, err := q.GetSiteConfig(ctx)
	if err != nil {
		return model.SiteConfig{}, err
	}

	if arg.SiteName != nil {
		cfg.SiteName = *arg.SiteName
	}
	if arg.ThemeColor != nil {
		cfg.ThemeColor = *arg.ThemeColor
	}
	if arg.MetaDescription != nil {
		cfg.MetaDescription = *arg.MetaDescription
	}

	_, err = q.db.ExecContext(ctx,
		`UPDATE site_config SET site_name = ?, theme_color = ?, meta_description = ?, updated_at = ?
		 WHERE id = ?`,
		cfg.SiteName, cfg.ThemeColor, cfg.MetaDescription, time.Now().UTC(), cfg.ID)
	if err != nil {
		return model.SiteConfig{}, err
	}
	return q.GetSiteConfig(ctx)
}
