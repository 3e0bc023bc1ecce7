package driven

import (
	"context"

	"github.com/calebreed/verbump/internal/core/domain"
)

// CommitReader supplies the ordered commit records for a revision range.
// The core never reads from storage itself; callers own where commits
// come from.
type CommitReader interface {
	// CommitsBetween returns the commits reachable from to but not from
	// from, in log order (most recent first). An empty from means all
	// commits up to to; an empty to means HEAD.
	CommitsBetween(ctx context.Context, from, to string) ([]domain.Commit, error)
}
