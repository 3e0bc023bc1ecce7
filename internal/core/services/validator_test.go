package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebreed/verbump/internal/core/domain"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(domain.DefaultVerbTable(), domain.DefaultIssuePattern())
}

func TestValidator_IssueID(t *testing.T) {
	validator := newTestValidator(t)

	assert.True(t, validator.IssueID("ENG-123"))
	assert.True(t, validator.IssueID("eng-123"))
	assert.True(t, validator.IssueID(" OPS-1 "))
	assert.False(t, validator.IssueID("E-123"))
	assert.False(t, validator.IssueID("ENG123"))
	assert.False(t, validator.IssueID(""))
}

func TestValidator_Description(t *testing.T) {
	validator := newTestValidator(t)

	assert.True(t, validator.Description("Fixed bug"))
	assert.True(t, validator.Description("abc"))
	assert.False(t, validator.Description("ab"))
	assert.False(t, validator.Description("  a  "))
	assert.False(t, validator.Description(""))

	// Length counts characters, not bytes.
	assert.False(t, validator.Description("éé"))
	assert.True(t, validator.Description("ééé"))
}

func TestValidator_Verb(t *testing.T) {
	validator := newTestValidator(t)

	assert.True(t, validator.Verb("Fixed"))
	assert.True(t, validator.Verb("Added"))
	assert.False(t, validator.Verb("fixed"))
	assert.False(t, validator.Verb("Fixing"))
	assert.False(t, validator.Verb(""))
}

func TestValidator_Message(t *testing.T) {
	validator := newTestValidator(t)

	tests := []struct {
		name   string
		input  string
		valid  bool
		reason string
	}{
		{
			name:  "valid message",
			input: "ENG-123 Fixed authentication bug",
			valid: true,
		},
		{
			name:  "valid message with body",
			input: "ENG-123 Fixed authentication bug\n\nMore detail here.",
			valid: true,
		},
		{
			name:   "empty message",
			input:  "",
			valid:  false,
			reason: "Empty commit message",
		},
		{
			name:   "whitespace-only message",
			input:  "   \n  ",
			valid:  false,
			reason: "Empty commit message",
		},
		{
			name:   "missing description",
			input:  "ENG-123 Fix",
			valid:  false,
			reason: "Invalid format: expected '<ISSUE-ID> <Verb> <description>'",
		},
		{
			name:   "only an issue id",
			input:  "ENG-123",
			valid:  false,
			reason: "Invalid format: expected '<ISSUE-ID> <Verb> <description>'",
		},
		{
			name:   "bad issue id",
			input:  "E-123 Fixed authentication bug",
			valid:  false,
			reason: "Invalid issue ID format: 'E-123'",
		},
		{
			name:   "unapproved verb",
			input:  "ENG-123 Fixing authentication bug",
			valid:  false,
			reason: "Invalid verb: 'Fixing' is not in the approved list",
		},
		{
			name:   "description too short",
			input:  "ENG-123 Fixed ab",
			valid:  false,
			reason: "Description too short (minimum 3 characters)",
		},
		{
			name:   "multi-byte description below minimum",
			input:  "ENG-123 Fixed éé",
			valid:  false,
			reason: "Description too short (minimum 3 characters)",
		},
		{
			name:  "multi-byte description at minimum",
			input: "ENG-123 Fixed ééé",
			valid: true,
		},
		{
			name:  "description with internal spaces",
			input: "ENG-123 Fixed auth  module   bug",
			valid: true,
		},
		{
			name:   "issue id check runs before verb check",
			input:  "bad-id Fixing things",
			valid:  false,
			reason: "Invalid issue ID format: 'bad-id'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := validator.Message(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidator_SuggestVerbs(t *testing.T) {
	validator := newTestValidator(t)

	assert.Equal(t, []string{"Fixed", "Formatted"}, validator.SuggestVerbs("f"))
	assert.Equal(t, []string{"Fixed"}, validator.SuggestVerbs("fix"))
	assert.Empty(t, validator.SuggestVerbs("zzz"))
}
