package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebreed/verbump/internal/core/domain"
)

func messages(msgs ...string) []domain.Commit {
	commits := make([]domain.Commit, 0, len(msgs))
	for _, m := range msgs {
		commits = append(commits, domain.Commit{Message: m})
	}
	return commits
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(newTestParser(t))

	tests := []struct {
		name     string
		commits  []domain.Commit
		expected domain.Increment
		found    bool
	}{
		{
			name:     "single patch commit",
			commits:  messages("ENG-1 Fixed x"),
			expected: domain.IncrementPatch,
			found:    true,
		},
		{
			name:     "highest increment wins",
			commits:  messages("ENG-1 Fixed x", "ENG-2 Added y"),
			expected: domain.IncrementMinor,
			found:    true,
		},
		{
			name:     "major wins regardless of order",
			commits:  messages("ENG-1 Fixed x", "ENG-2 Added y", "ENG-3 Changed z"),
			expected: domain.IncrementMajor,
			found:    true,
		},
		{
			name:     "order reversed still yields major",
			commits:  messages("ENG-3 Changed z", "ENG-2 Added y", "ENG-1 Fixed x"),
			expected: domain.IncrementMajor,
			found:    true,
		},
		{
			name:     "manual override beats every verb",
			commits:  messages("ENG-1 Changed z", "ENG-2 Fixed x\n\n[bump:patch]"),
			expected: domain.IncrementPatch,
			found:    true,
		},
		{
			name:     "first override in batch order wins",
			commits:  messages("ENG-1 Fixed x\n\n[bump:minor]", "ENG-2 Fixed y\n\n[bump:major]"),
			expected: domain.IncrementMinor,
			found:    true,
		},
		{
			name:    "only none-mapped verbs yield no increment",
			commits: messages("ENG-1 Documented the API", "ENG-2 Formatted code"),
			found:   false,
		},
		{
			name:    "unrecognised messages yield no increment",
			commits: messages("merge branch main", "wip"),
			found:   false,
		},
		{
			name:    "empty batch yields no increment",
			commits: nil,
			found:   false,
		},
		{
			name:     "bump none is treated as absent and verbs still count",
			commits:  messages("ENG-1 Fixed x\n\n[bump:none]", "ENG-2 Added y"),
			expected: domain.IncrementMinor,
			found:    true,
		},
		{
			name:     "mix of recognised and unrecognised commits",
			commits:  messages("wip", "ENG-2 Added y", "merge branch"),
			expected: domain.IncrementMinor,
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := resolver.Resolve(tt.commits)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}
