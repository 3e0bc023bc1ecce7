package services

import (
	"context"
	"fmt"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/ports/driven"
	"github.com/calebreed/verbump/internal/core/ports/driving"
	"github.com/calebreed/verbump/internal/logger"
)

// Ensure Release implements the interface.
var _ driving.ReleaseService = (*Release)(nil)

// Release derives release information from commit ranges.
type Release struct {
	reader     driven.CommitReader
	convention *Convention
	resolver   *Resolver
}

// NewRelease creates a release service.
func NewRelease(reader driven.CommitReader, convention *Convention) *Release {
	return &Release{
		reader:     reader,
		convention: convention,
		resolver:   NewResolver(convention.parser),
	}
}

// Resolve reduces a batch of commits to a single increment.
func (r *Release) Resolve(commits []domain.Commit) (domain.Increment, bool) {
	return r.resolver.Resolve(commits)
}

// Increment resolves the increment for a revision range.
func (r *Release) Increment(ctx context.Context, from, to string) (domain.Increment, bool, error) {
	commits, err := r.reader.CommitsBetween(ctx, from, to)
	if err != nil {
		return "", false, fmt.Errorf("read commits: %w", err)
	}
	logger.Debug("resolving increment across %d commits", len(commits))

	level, ok := r.resolver.Resolve(commits)
	return level, ok, nil
}

// Changelog returns the reformatted changelog lines for a revision
// range, one per commit. Lines keep log order; a commit without an
// issue id contributes its first line unchanged.
func (r *Release) Changelog(ctx context.Context, from, to string) ([]string, error) {
	commits, err := r.reader.CommitsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}

	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		parsed := r.convention.Parse(c.Message)

		message := parsed.Description
		if parsed.Verb != "" {
			message = parsed.Verb + " " + parsed.Description
		}
		lines = append(lines, r.convention.ChangelogLine(parsed.IssueID, message))
	}
	return lines, nil
}
