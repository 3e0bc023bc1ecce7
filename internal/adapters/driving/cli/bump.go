package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	bumpFrom string
	bumpTo   string
	bumpJSON bool
)

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Determine the version increment for a commit range",
	Long: `Resolves the semantic-version increment for the commits in a
revision range. A manual [bump:<level>] override in any commit wins;
otherwise the highest verb-derived increment across the range is
reported. Prints the level uppercased (MAJOR, MINOR, PATCH), or "none"
when nothing warrants an increment; --json emits the lowercase name.`,
	RunE: runBump,
}

func init() {
	bumpCmd.Flags().StringVar(&bumpFrom, "from", "", "lower bound of the revision range (exclusive)")
	bumpCmd.Flags().StringVar(&bumpTo, "to", "HEAD", "upper bound of the revision range")
	bumpCmd.Flags().BoolVar(&bumpJSON, "json", false, "output the result as JSON with the lowercase level name")
	rootCmd.AddCommand(bumpCmd)
}

func runBump(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	level, ok, err := releaseService.Increment(context.Background(), bumpFrom, bumpTo)
	if err != nil {
		return fmt.Errorf("resolve increment: %w", err)
	}

	if bumpJSON {
		result := struct {
			Increment string `json:"increment"`
		}{Increment: "none"}
		if ok {
			result.Increment = level.String()
		}
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if !ok {
		cmd.Println("none")
		return nil
	}
	cmd.Println(strings.ToUpper(level.String()))
	return nil
}
