package store

import (
	"context"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

const messageColumns = "id, name, email, subject, message, read, created_at"

// CreateMessageParams holds the fields for CreateMessage.
type CreateMessageParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CreateMessage inserts a contact message with read=false and returns the row.
func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (model.ContactMessage, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, read, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		arg.Name, arg.Email, arg.Subject, arg.Message, time.Now().UTC())
	if err != nil {
		return model.ContactMessage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ContactMessage{}, err
	}
	return q.GetMessage(ctx, id)
}

// GetMessage returns the message with the given id, or sql.ErrNoRows.
func (q *Queries) GetMessage(ctx context.Context, id int64) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := q.db.QueryRowContext(ctx,
		"SELECT "+messageColumns+" FROM contact_messages WHERE id = ?", id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	return m, err
}

// ListMessages returns all messages, newest first.
func (q *Queries) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+messageColumns+" FROM contact_messages ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountUnreadMessages returns the number of unread messages.
func (q *Queries) CountUnreadMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contact_messages WHERE read = 0").Scan(&n)
	return n, err
}

// MarkMessageRead flips the read flag to true. The flag never reverts:
// marking an already-read message is a no-op. Returns the updated row or
// sql.ErrNoRows if the id does not exist.
func (q *Queries) MarkMessageRead(ctx context.Context, id int64) (model.ContactMessage, error) {
	if _, err := q.db.ExecContext(ctx,
		"UPDATE contact_messages SET read = 1 WHERE id = ?", id); err != nil {
		return model.ContactMessage{}, err
	}
	return q.GetMessage(ctx, id)
}

// DeleteMessage removes a message. Deleting a nonexistent id is not an error.
func (q *Queries) DeleteMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	return err
}
