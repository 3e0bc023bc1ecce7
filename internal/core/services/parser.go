package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/calebreed/verbump/internal/core/domain"
)

// manualBumpRe matches a [bump:<level>] directive anywhere in a commit
// message. Both the literal and the level name are case-insensitive.
var manualBumpRe = regexp.MustCompile(`(?i)\[bump:(major|minor|patch|none)\]`)

// Parser decomposes raw commit messages.
// A parser is immutable after construction.
type Parser struct {
	table   *domain.VerbTable
	pattern *domain.IssuePattern
}

// NewParser creates a parser over a verb table and issue pattern.
func NewParser(table *domain.VerbTable, pattern *domain.IssuePattern) *Parser {
	return &Parser{table: table, pattern: pattern}
}

// Parse decomposes a commit message into its fields.
//
// The message splits into a first line and an optional body on the
// first line break. When the first line does not open with an issue id
// the whole line becomes the description. A first token after the
// issue id that is not an approved verb is reclassified as prose, not
// treated as an error.
func (p *Parser) Parse(message string) domain.ParsedCommit {
	trimmed := strings.TrimSpace(message)

	firstLine := trimmed
	body := ""
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		firstLine = strings.TrimSpace(trimmed[:idx])
		body = strings.TrimSpace(trimmed[idx+1:])
	}

	parsed := domain.ParsedCommit{Body: body}
	parsed.ManualBump, parsed.HasManualBump = p.ManualBump(message)

	issueID, rest, ok := p.pattern.SplitFirstLine(firstLine)
	if !ok {
		parsed.Description = firstLine
		return parsed
	}
	parsed.IssueID = issueID

	verb, remainder := cutToken(rest)
	if !p.table.Has(verb) {
		parsed.Description = rest
		return parsed
	}

	parsed.Verb = verb
	parsed.Description = remainder
	return parsed
}

// ManualBump extracts the manual override from a commit message.
// Only the first occurrence is honoured, and a "none" level yields no
// override rather than an explicit none increment.
func (p *Parser) ManualBump(message string) (domain.Increment, bool) {
	m := manualBumpRe.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	level := domain.Increment(strings.ToLower(m[1]))
	if level == domain.IncrementNone {
		return "", false
	}
	return level, true
}

// IncrementFrom derives the increment for a single commit message:
// a manual override wins, otherwise the first-line verb is looked up
// in the table. Returns ok=false when neither applies.
func (p *Parser) IncrementFrom(message string) (domain.Increment, bool) {
	if level, ok := p.ManualBump(message); ok {
		return level, true
	}

	parsed := p.Parse(message)
	if parsed.Verb == "" {
		return "", false
	}
	level, ok := p.table.Lookup(parsed.Verb)
	return level, ok
}

// cutToken splits off the first whitespace-delimited token. The
// remainder keeps internal whitespace verbatim, with only leading
// whitespace removed.
func cutToken(s string) (token, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
