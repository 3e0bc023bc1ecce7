package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	changelogFrom string
	changelogTo   string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Print reformatted changelog lines for a commit range",
	Long: `Prints one changelog line per commit in the revision range, with
the issue id embedded according to the configured changelog style.
Commits without an issue id pass through unchanged.`,
	RunE: runChangelog,
}

func init() {
	changelogCmd.Flags().StringVar(&changelogFrom, "from", "", "lower bound of the revision range (exclusive)")
	changelogCmd.Flags().StringVar(&changelogTo, "to", "HEAD", "upper bound of the revision range")
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	lines, err := releaseService.Changelog(context.Background(), changelogFrom, changelogTo)
	if err != nil {
		return fmt.Errorf("build changelog: %w", err)
	}

	if len(lines) == 0 {
		cmd.Println("No commits in range.")
		return nil
	}
	for _, line := range lines {
		cmd.Println(line)
	}
	return nil
}
