package domain

import "fmt"

const unknownDescription = "Unknown"

// ChangelogStyle defines how an issue id is embedded into a changelog
// line. The embedding template varies across teams, so it is a
// configurable policy rather than a fixed behaviour.
type ChangelogStyle string

// Available changelog styles.
const (
	// ChangelogStylePrefix renders "[ENG-123] message".
	ChangelogStylePrefix ChangelogStyle = "prefix"

	// ChangelogStyleSuffix renders "message (ENG-123)".
	ChangelogStyleSuffix ChangelogStyle = "suffix"
)

// ParseChangelogStyle converts a style name into a ChangelogStyle.
func ParseChangelogStyle(s string) (ChangelogStyle, error) {
	switch ChangelogStyle(s) {
	case ChangelogStylePrefix:
		return ChangelogStylePrefix, nil
	case ChangelogStyleSuffix:
		return ChangelogStyleSuffix, nil
	default:
		return "", fmt.Errorf("%w: unknown changelog style %q", ErrInvalidConfig, s)
	}
}

// IsValid returns true if the style is recognised.
func (s ChangelogStyle) IsValid() bool {
	switch s {
	case ChangelogStylePrefix, ChangelogStyleSuffix:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ChangelogStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s ChangelogStyle) Description() string {
	switch s {
	case ChangelogStylePrefix:
		return "[ID] message"
	case ChangelogStyleSuffix:
		return "message (ID)"
	default:
		return unknownDescription
	}
}

// Apply embeds an issue id into a changelog message according to the
// style. When the issue id is empty the message passes through
// unchanged.
func (s ChangelogStyle) Apply(issueID, message string) string {
	if issueID == "" {
		return message
	}
	switch s {
	case ChangelogStyleSuffix:
		return message + " (" + issueID + ")"
	default:
		return "[" + issueID + "] " + message
	}
}
