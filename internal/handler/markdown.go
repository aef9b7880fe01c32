package handler

import (
	"bytes"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var sanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts markdown to sanitized HTML for public responses.
// Stored content stays markdown; rendering happens on the way out.
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		slog.Warn("rendering markdown", "error", err)
		return ""
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}
