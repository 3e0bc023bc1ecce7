package services

import (
	"fmt"
	"strings"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/ports/driving"
)

// Ensure Convention implements the interface.
var _ driving.ConventionService = (*Convention)(nil)

// Convention bundles the parser, validator and renderer built from the
// effective configuration. It is the initialisation point where bad
// configuration becomes a fatal error.
type Convention struct {
	table     *domain.VerbTable
	pattern   *domain.IssuePattern
	parser    *Parser
	validator *Validator
	renderer  *Renderer
}

// NewConvention validates the raw settings and builds the convention.
//
// Custom verb entries must carry non-empty keys and one of the four
// known level names; the issue pattern must compile. Any violation
// aborts with an error wrapping domain.ErrInvalidConfig rather than
// being silently ignored.
func NewConvention(settings domain.Settings) (*Convention, error) {
	table := domain.DefaultVerbTable()
	if len(settings.Verbs) > 0 {
		custom := make(map[string]domain.Increment, len(settings.Verbs))
		for verb, level := range settings.Verbs {
			if strings.TrimSpace(verb) == "" {
				return nil, fmt.Errorf("%w: empty verb key", domain.ErrInvalidConfig)
			}
			increment, err := domain.ParseIncrement(level)
			if err != nil {
				return nil, fmt.Errorf("%w: verb %q: %v", domain.ErrInvalidConfig, verb, err)
			}
			custom[verb] = increment
		}
		table = table.Extend(custom)
	}

	expr := settings.IssuePattern
	if expr == "" {
		expr = domain.DefaultIssuePatternExpr
	}
	pattern, err := domain.CompileIssuePattern(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: issue pattern: %v", domain.ErrInvalidConfig, err)
	}

	style := domain.ChangelogStylePrefix
	if settings.ChangelogStyle != "" {
		style, err = domain.ParseChangelogStyle(settings.ChangelogStyle)
		if err != nil {
			return nil, err
		}
	}

	parser := NewParser(table, pattern)
	return &Convention{
		table:     table,
		pattern:   pattern,
		parser:    parser,
		validator: NewValidator(table, pattern),
		renderer:  NewRenderer(style),
	}, nil
}

// Parse decomposes a raw commit message into its fields.
func (c *Convention) Parse(message string) domain.ParsedCommit {
	return c.parser.Parse(message)
}

// ManualBump extracts the first manual override from a message.
func (c *Convention) ManualBump(message string) (domain.Increment, bool) {
	return c.parser.ManualBump(message)
}

// Validate checks a complete commit message against the convention.
func (c *Convention) Validate(message string) (bool, string) {
	return c.validator.Message(message)
}

// ValidateIssueID reports whether s is a well-formed issue id.
func (c *Convention) ValidateIssueID(s string) bool {
	return c.validator.IssueID(s)
}

// ValidateVerb reports whether s is an approved verb.
func (c *Convention) ValidateVerb(s string) bool {
	return c.validator.Verb(s)
}

// ValidateDescription reports whether s is long enough.
func (c *Convention) ValidateDescription(s string) bool {
	return c.validator.Description(s)
}

// SuggestVerbs returns the verbs matching a prefix.
func (c *Convention) SuggestVerbs(prefix string) []string {
	return c.validator.SuggestVerbs(prefix)
}

// Render produces a commit message from structured answers.
func (c *Convention) Render(fields domain.MessageFields) string {
	return c.renderer.Message(fields)
}

// ChangelogLine reformats a message for changelog display.
func (c *Convention) ChangelogLine(issueID, message string) string {
	return c.renderer.ChangelogLine(issueID, message)
}

// Table returns the effective verb table.
func (c *Convention) Table() *domain.VerbTable {
	return c.table
}

// Schema describes the expected commit format.
func (c *Convention) Schema() string {
	return "<ISSUE-ID> <Verb> <description>\n" +
		"\n" +
		"[optional body]\n" +
		"\n" +
		"[bump:major|minor|patch|none] (optional)"
}

// Example returns example commit messages.
func (c *Convention) Example() string {
	return "ENG-1234 Fixed authentication bug in login flow\n" +
		"OPS-567 Added monitoring dashboard for API endpoints\n" +
		"BUG-890 Changed database schema to support multi-tenancy\n" +
		"\n" +
		"With manual bump:\n" +
		"ENG-999 Updated config handling\n" +
		"\n" +
		"This change requires a major version bump due to config format changes.\n" +
		"[bump:major]"
}
