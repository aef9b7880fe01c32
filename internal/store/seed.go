package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed ensures the singleton site configuration exists. When no setup key is
// configured a random one is generated and logged once at startup so the
// operator can bootstrap the first administrator account.
func Seed(ctx context.Context, db *sql.DB, setupKey string) error {
	queries := New(db)

	generated := false
	if setupKey == "" {
		setupKey = uuid.NewString()
		generated = true
	}

	cfg, created, err := queries.EnsureSiteConfig(ctx, setupKey)
	if err != nil {
		return fmt.Errorf("ensuring site config: %w", err)
	}

	if created {
		if generated {
			slog.Info("created site config with generated setup key",
				"setup_key", cfg.SetupKey,
			)
		} else {
			slog.Info("created site config with configured setup key")
		}
	}

	return nil
}
