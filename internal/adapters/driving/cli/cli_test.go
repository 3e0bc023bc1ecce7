package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/services"
)

// stubReader feeds fixed commits to the release service in tests.
type stubReader struct {
	commits []domain.Commit
}

func (s *stubReader) CommitsBetween(_ context.Context, _, _ string) ([]domain.Commit, error) {
	return s.commits, nil
}

// initTestServices wires the CLI to services built from defaults and a
// stubbed commit reader.
func initTestServices(t *testing.T, commits []domain.Commit) {
	t.Helper()

	convention, err := services.NewConvention(domain.DefaultSettings())
	require.NoError(t, err)

	Initialize(convention, services.NewRelease(&stubReader{commits: commits}, convention))
	t.Cleanup(func() { Initialize(nil, nil) })
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
