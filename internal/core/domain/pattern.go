package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultIssuePatternExpr matches issue ids shaped like ENG-123:
// two or more uppercase letters, a dash, one or more digits.
const DefaultIssuePatternExpr = `^[A-Z]{2,}-[0-9]+$`

// IssuePattern is a compiled issue-id matching rule.
//
// The pattern is applied in two ways: as a full match against a
// candidate issue id (case-normalised to uppercase first), and as the
// leading capture of a commit first line, where matching is
// case-insensitive and the capture is uppercased by the caller.
type IssuePattern struct {
	expr string
	full *regexp.Regexp
	line *regexp.Regexp

	issueIdx int
	restIdx  int
}

// CompileIssuePattern compiles an issue-id pattern expression.
// The expression is anchored as a full match; leading ^ and trailing $
// are accepted and stripped before embedding. A pattern that does not
// compile is a configuration failure.
func CompileIssuePattern(expr string) (*IssuePattern, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(expr, "^"), "$")
	if body == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPattern)
	}

	full, err := regexp.Compile("^(?:" + body + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	line, err := regexp.Compile(`^(?P<issue>(?i:` + body + `))\s+(?P<rest>.*)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &IssuePattern{
		expr:     expr,
		full:     full,
		line:     line,
		issueIdx: line.SubexpIndex("issue"),
		restIdx:  line.SubexpIndex("rest"),
	}, nil
}

// DefaultIssuePattern returns the compiled default pattern.
// The default expression always compiles.
func DefaultIssuePattern() *IssuePattern {
	p, err := CompileIssuePattern(DefaultIssuePatternExpr)
	if err != nil {
		panic(err)
	}
	return p
}

// Expr returns the original pattern expression.
func (p *IssuePattern) Expr() string {
	return p.expr
}

// Match reports whether s is a well-formed issue id.
// Input is trimmed and uppercased before matching, so matching is
// idempotent under case folding.
func (p *IssuePattern) Match(s string) bool {
	return p.full.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// SplitFirstLine splits a commit first line into an issue id and the
// remaining text. The issue id is matched case-insensitively and
// returned uppercased; the remainder is trimmed. Returns ok=false when
// the line does not open with an issue id.
func (p *IssuePattern) SplitFirstLine(line string) (issueID, rest string, ok bool) {
	m := p.line.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.ToUpper(m[p.issueIdx]), strings.TrimSpace(m[p.restIdx]), true
}
