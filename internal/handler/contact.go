package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/aman7heaven/Personal-portfolio/internal/mailer"
	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

const (
	maxContactNameLen    = 200
	maxContactSubjectLen = 300
	maxContactMessageLen = 5000
)

// ContactHandler handles the public contact form and the admin message
// inbox. Submissions are persisted before any notification attempt, so a
// failed email never loses the message.
type ContactHandler struct {
	queries    *store.Queries
	sender     mailer.Sender
	ownerEmail string
}

// NewContactHandler creates a new ContactHandler. sender may be nil when
// SMTP is not configured; submissions are then stored without notification.
func NewContactHandler(db *sql.DB, sender mailer.Sender, ownerEmail string) *ContactHandler {
	return &ContactHandler{
		queries:    store.New(db),
		sender:     sender,
		ownerEmail: ownerEmail,
	}
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in *contactInput) validate() map[string]string {
	details := make(map[string]string)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	switch {
	case in.Name == "":
		details["name"] = "name is required"
	case len(in.Name) > maxContactNameLen:
		details["name"] = "name is too long"
	}
	if in.Email == "" {
		details["email"] = "email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		details["email"] = "email is not a valid address"
	}
	switch {
	case in.Subject == "":
		details["subject"] = "subject is required"
	case len(in.Subject) > maxContactSubjectLen:
		details["subject"] = "subject is too long"
	}
	switch {
	case in.Message == "":
		details["message"] = "message is required"
	case len(in.Message) > maxContactMessageLen:
		details["message"] = "message is too long"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// Submit handles POST /api/contact. The message is stored first; if the
// owner notification fails afterwards the handler reports an error, but the
// submission is already in the inbox.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if details := in.validate(); details != nil {
		WriteValidationError(w, details)
		return
	}

	msg, err := h.queries.CreateMessage(r.Context(), store.CreateMessageParams{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		WriteInternalError(w, "storing contact message", err)
		return
	}
	slog.Info("contact message received", "message_id", msg.ID, "from", msg.Email)

	if h.sender != nil && h.ownerEmail != "" {
		notification := mailer.ContactNotification(h.ownerEmail, msg.Name, msg.Email, msg.Subject, msg.Message)
		if err := h.sender.Send(r.Context(), notification); err != nil {
			slog.Error("contact notification failed", "message_id", msg.ID, "error", err)
			WriteError(w, http.StatusInternalServerError, "notification_failed",
				"Your message was received but the notification email could not be sent", nil)
			return
		}
	}

	WriteJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/admin/contact-messages, newest first.
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListMessages(r.Context())
	if err != nil {
		WriteInternalError(w, "listing messages", err)
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

// UnreadCount handles GET /api/admin/contact-messages/unread-count.
func (h *ContactHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.queries.CountUnreadMessages(r.Context())
	if err != nil {
		WriteInternalError(w, "counting unread messages", err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// MarkRead handles PATCH /api/admin/contact-messages/{id}/read. The read flag is
// one-way; marking an already-read message again is a no-op.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	msg, err := h.queries.MarkMessageRead(r.Context(), id)
	if err != nil {
		writeStoreError(w, "message", err)
		return
	}
	WriteJSON(w, http.StatusOK, msg)
}

// DeleteMessage handles DELETE /api/admin/contact-messages/{id}.
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteMessage(r.Context(), id); err != nil {
		WriteInternalError(w, "deleting message", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
