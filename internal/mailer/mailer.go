// Package mailer sends contact-form notification emails to the site owner
// over SMTP. Delivery is best-effort: callers persist the message first and
// treat send failures as a reporting problem, not a storage problem.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"
)

// Message is one outbound notification.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers notification messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender sends messages through an SMTP server.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// NewSMTP creates an SMTPSender. Authentication is used only when a
// username is configured.
func NewSMTP(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send delivers one message with plain-text and HTML alternatives.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

// ContactNotification formats a contact-form submission as a notification
// message addressed to the site owner.
func ContactNotification(ownerEmail, name, email, subject, body string) Message {
	text := fmt.Sprintf("New contact message\n\nFrom: %s <%s>\nSubject: %s\n\n%s\n",
		name, email, subject, body)

	htmlBody := fmt.Sprintf(
		"<h2>New contact message</h2>"+
			"<p><strong>From:</strong> %s &lt;%s&gt;</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(name), html.EscapeString(email),
		html.EscapeString(subject), html.EscapeString(body))

	return Message{
		To:      ownerEmail,
		Subject: fmt.Sprintf("[Portfolio] %s", subject),
		Text:    text,
		HTML:    htmlBody,
	}
}
