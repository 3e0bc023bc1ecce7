package gitlog

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	raw := "abc123" + fieldSep + "Alice" + fieldSep + "ENG-1 Fixed auth bug\n\nbody text\n" + recordSep +
		"\ndef456" + fieldSep + "Bob" + fieldSep + "ENG-2 Added metrics\n" + recordSep

	commits := parseLog([]byte(raw))

	require.Len(t, commits, 2)
	assert.Equal(t, "abc123", commits[0].SHA)
	assert.Equal(t, "Alice", commits[0].Author)
	assert.Equal(t, "ENG-1 Fixed auth bug\n\nbody text", commits[0].Message)
	assert.Equal(t, "def456", commits[1].SHA)
	assert.Equal(t, "ENG-2 Added metrics", commits[1].Message)
}

func TestParseLog_Empty(t *testing.T) {
	assert.Empty(t, parseLog(nil))
	assert.Empty(t, parseLog([]byte("\n")))
}

func TestParseLog_SkipsMalformedRecords(t *testing.T) {
	raw := "only-a-sha" + recordSep +
		"\nabc123" + fieldSep + "Alice" + fieldSep + "ENG-1 Fixed it\n" + recordSep

	commits := parseLog([]byte(raw))

	require.Len(t, commits, 1)
	assert.Equal(t, "abc123", commits[0].SHA)
}

// TestReader_CommitsBetween runs against a throwaway git repository.
func TestReader_CommitsBetween(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repo := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", repo}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	run("init")
	run("commit", "--allow-empty", "-m", "ENG-1 Fixed auth bug")
	run("commit", "--allow-empty", "-m", "ENG-2 Added metrics\n\nwith a body")

	reader := NewReader(repo)
	commits, err := reader.CommitsBetween(context.Background(), "", "HEAD")

	require.NoError(t, err)
	require.Len(t, commits, 2)

	// Log order: most recent first
	assert.Equal(t, "ENG-2 Added metrics\n\nwith a body", commits[0].Message)
	assert.Equal(t, "ENG-1 Fixed auth bug", commits[1].Message)
	assert.NotEmpty(t, commits[0].SHA)
	assert.Equal(t, "test", commits[0].Author)
}

func TestReader_CommitsBetween_BadRange(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repo := t.TempDir()
	cmd := exec.Command("git", "-C", repo, "init")
	require.NoError(t, cmd.Run())

	reader := NewReader(repo)
	_, err := reader.CommitsBetween(context.Background(), "", "does-not-exist")

	assert.Error(t, err)
}
