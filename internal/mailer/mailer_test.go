package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactNotification(t *testing.T) {
	msg := ContactNotification("owner@x.com", "Visitor", "v@x.com", "Hello", "I like your site")

	assert.Equal(t, "owner@x.com", msg.To)
	assert.Equal(t, "[Portfolio] Hello", msg.Subject)
	require.Contains(t, msg.Text, "Visitor <v@x.com>")
	require.Contains(t, msg.Text, "I like your site")
	assert.Contains(t, msg.HTML, "<strong>From:</strong>")
}

func TestContactNotification_EscapesHTML(t *testing.T) {
	msg := ContactNotification("owner@x.com", "<script>alert(1)</script>", "v@x.com", "s", "b")

	assert.NotContains(t, msg.HTML, "<script>", "HTML body must escape user input")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}
