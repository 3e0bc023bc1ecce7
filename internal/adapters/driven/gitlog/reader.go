// Package gitlog implements the CommitReader port by shelling out to
// the local git binary. No network access is involved; the repository
// is read through `git log` only.
package gitlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.CommitReader = (*Reader)(nil)

// Field and record separators for the log format. Unit separator and
// record separator cannot appear in commit metadata.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Reader reads commits from a local git repository.
type Reader struct {
	repoPath string
}

// NewReader creates a reader for the repository at repoPath.
// An empty path means the current directory.
func NewReader(repoPath string) *Reader {
	if repoPath == "" {
		repoPath = "."
	}
	return &Reader{repoPath: repoPath}
}

// CommitsBetween returns the commits in from..to, most recent first.
// An empty from yields every commit reachable from to; an empty to
// defaults to HEAD.
func (r *Reader) CommitsBetween(ctx context.Context, from, to string) ([]domain.Commit, error) {
	if to == "" {
		to = "HEAD"
	}
	rangeSpec := to
	if from != "" {
		rangeSpec = from + ".." + to
	}

	cmd := exec.CommandContext(ctx,
		"git", "-C", r.repoPath,
		"log", "--pretty=format:%H"+fieldSep+"%an"+fieldSep+"%B"+recordSep,
		rangeSpec,
	)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git log %s: %s", rangeSpec, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	return parseLog(out), nil
}

// parseLog splits raw `git log` output into commit records.
func parseLog(out []byte) []domain.Commit {
	var commits []domain.Commit
	for _, record := range strings.Split(string(out), recordSep) {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}

		parts := strings.SplitN(record, fieldSep, 3)
		if len(parts) < 3 {
			continue
		}
		commits = append(commits, domain.Commit{
			SHA:     strings.TrimSpace(parts[0]),
			Author:  strings.TrimSpace(parts[1]),
			Message: strings.TrimSpace(parts[2]),
		})
	}
	return commits
}
