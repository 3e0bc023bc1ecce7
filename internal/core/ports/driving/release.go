package driving

import (
	"context"

	"github.com/calebreed/verbump/internal/core/domain"
)

// ReleaseService derives release information from batches of commits.
type ReleaseService interface {
	// Resolve reduces a batch of commits to a single increment.
	// A manual override in any commit short-circuits the batch; the
	// first commit carrying one wins. Returns ok=false when nothing in
	// the batch warrants an increment.
	Resolve(commits []domain.Commit) (domain.Increment, bool)

	// Increment resolves the increment for a revision range, reading
	// commits through the configured CommitReader.
	Increment(ctx context.Context, from, to string) (domain.Increment, bool, error)

	// Changelog returns the reformatted changelog lines for a
	// revision range, one per commit.
	Changelog(ctx context.Context, from, to string) ([]string, error)
}
