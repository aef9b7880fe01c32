package store

import (
	"context"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent inserts an operational event-log row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	if arg.CreatedAt.IsZero() {
		arg.CreatedAt = time.Now().UTC()
	}
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO events (level, category, message, metadata, created_at) VALUES (?, ?, ?, ?, ?)",
		arg.Level, arg.Category, arg.Message, arg.Metadata, arg.CreatedAt)
	return err
}

// ListRecentEvents returns the most recent events, newest first.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, level, category, message, metadata, created_at FROM events ORDER BY created_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// PruneExpiredSessions deletes expired server-side session rows. The session
// store prunes its own entries too; this keeps the table small on deployments
// where the in-process cleanup goroutine is disabled.
func (q *Queries) PruneExpiredSessions(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE expiry < julianday('now')")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
