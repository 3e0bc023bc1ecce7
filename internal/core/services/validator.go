package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/calebreed/verbump/internal/core/domain"
)

// Validator checks commit messages and their fields against the
// convention. All checks are total: any well-formed string input
// produces a verdict, never an error.
type Validator struct {
	table   *domain.VerbTable
	pattern *domain.IssuePattern
}

// NewValidator creates a validator over a verb table and issue pattern.
func NewValidator(table *domain.VerbTable, pattern *domain.IssuePattern) *Validator {
	return &Validator{table: table, pattern: pattern}
}

// IssueID reports whether s is a well-formed issue id after trimming
// and case folding.
func (v *Validator) IssueID(s string) bool {
	return v.pattern.Match(s)
}

// Description reports whether s meets the minimum length after
// trimming. Length is counted in characters, not bytes, so multi-byte
// text is measured the way a reader would count it.
func (v *Validator) Description(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= domain.MinDescriptionLength
}

// Verb reports whether s is an exact, case-sensitive key of the verb
// table.
func (v *Validator) Verb(s string) bool {
	return v.table.Has(s)
}

// Message checks a complete commit message. The first line must carry
// the three-field <ISSUE-ID> <Verb> <description> shape; each field is
// then validated in order and the first failing check determines the
// returned reason.
func (v *Validator) Message(message string) (bool, string) {
	if strings.TrimSpace(message) == "" {
		return false, "Empty commit message"
	}

	firstLine := strings.TrimSpace(message)
	if idx := strings.Index(firstLine, "\n"); idx >= 0 {
		firstLine = strings.TrimSpace(firstLine[:idx])
	}

	issueID, rest := cutToken(firstLine)
	verb, description := cutToken(rest)
	if issueID == "" || verb == "" || description == "" {
		return false, "Invalid format: expected '<ISSUE-ID> <Verb> <description>'"
	}

	if !v.IssueID(issueID) {
		return false, fmt.Sprintf("Invalid issue ID format: '%s'", issueID)
	}

	if !v.Verb(verb) {
		return false, fmt.Sprintf("Invalid verb: '%s' is not in the approved list", verb)
	}

	if !v.Description(description) {
		return false, fmt.Sprintf("Description too short (minimum %d characters)", domain.MinDescriptionLength)
	}

	return true, ""
}

// SuggestVerbs returns the verbs matching a prefix, in table order.
func (v *Validator) SuggestVerbs(prefix string) []string {
	return v.table.Suggest(prefix)
}
