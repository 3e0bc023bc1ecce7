package services

import (
	"strings"

	"github.com/calebreed/verbump/internal/core/domain"
)

// Renderer produces commit messages and changelog lines.
type Renderer struct {
	style domain.ChangelogStyle
}

// NewRenderer creates a renderer with the given changelog style.
func NewRenderer(style domain.ChangelogStyle) *Renderer {
	return &Renderer{style: style}
}

// Message renders a commit message from structured answers. The issue
// id is trimmed and uppercased; the body is appended after a blank
// line only when non-empty after trimming.
func (r *Renderer) Message(fields domain.MessageFields) string {
	issueID := strings.ToUpper(strings.TrimSpace(fields.IssueID))
	description := strings.TrimSpace(fields.Description)

	message := issueID + " " + fields.Verb + " " + description

	if body := strings.TrimSpace(fields.Body); body != "" {
		message += "\n\n" + body
	}
	return message
}

// ChangelogLine reformats a message for changelog display. The issue
// id is embedded per the configured style; without one the message
// passes through unchanged.
func (r *Renderer) ChangelogLine(issueID, message string) string {
	return r.style.Apply(issueID, message)
}
