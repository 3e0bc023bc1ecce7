package services

import "github.com/calebreed/verbump/internal/core/domain"

// Resolver reduces a batch of commits to a single increment.
type Resolver struct {
	parser *Parser
}

// NewResolver creates a resolver backed by a parser.
func NewResolver(parser *Parser) *Resolver {
	return &Resolver{parser: parser}
}

// Resolve picks the increment for a batch of commits.
//
// Manual overrides are checked first across the whole batch: the first
// commit carrying one decides the result, regardless of what any other
// commit says. Without overrides the verb-derived increments reduce to
// the highest-priority level. A batch whose highest level is none (or
// that derives nothing at all) reports no increment; none is never
// surfaced as an actionable result.
func (r *Resolver) Resolve(commits []domain.Commit) (domain.Increment, bool) {
	for _, c := range commits {
		if level, ok := r.parser.ManualBump(c.Message); ok {
			return level, true
		}
	}

	var highest domain.Increment
	found := false
	for _, c := range commits {
		level, ok := r.parser.IncrementFrom(c.Message)
		if !ok {
			continue
		}
		if !found || level.Priority() > highest.Priority() {
			highest = level
			found = true
		}
	}

	if !found || highest.Priority() == 0 {
		return "", false
	}
	return highest, true
}
