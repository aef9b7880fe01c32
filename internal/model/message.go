package model

import "time"

// ContactMessage is a visitor submission from the public contact form.
// Messages are append-only: the only mutation is the one-way read flag,
// until an admin deletes the row.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
