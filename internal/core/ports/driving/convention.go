package driving

import "github.com/calebreed/verbump/internal/core/domain"

// ConventionService exposes the commit convention: parsing,
// validation, suggestion and rendering of commit messages.
type ConventionService interface {
	// Parse decomposes a raw commit message into its fields.
	// Parsing is total; unrecognised parts degrade to description text.
	Parse(message string) domain.ParsedCommit

	// ManualBump extracts the first [bump:<level>] override from a
	// message. A [bump:none] directive yields no override.
	ManualBump(message string) (domain.Increment, bool)

	// Validate checks a complete commit message against the convention.
	// Returns a pass flag and, on failure, a human-readable reason.
	Validate(message string) (bool, string)

	// ValidateIssueID reports whether s is a well-formed issue id
	// after trimming and case folding.
	ValidateIssueID(s string) bool

	// ValidateVerb reports whether s is an exact key of the verb table.
	ValidateVerb(s string) bool

	// ValidateDescription reports whether s meets the minimum
	// description length after trimming.
	ValidateDescription(s string) bool

	// SuggestVerbs returns the verbs matching a prefix, in table order.
	SuggestVerbs(prefix string) []string

	// Render produces a commit message from structured answers.
	Render(fields domain.MessageFields) string

	// ChangelogLine reformats a message for changelog display,
	// embedding the issue id per the configured style.
	ChangelogLine(issueID, message string) string

	// Table returns the effective verb table.
	Table() *domain.VerbTable

	// Schema describes the expected commit format.
	Schema() string

	// Example returns example commit messages.
	Example() string
}
