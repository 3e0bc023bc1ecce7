package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check [message]",
	Short: "Validate a commit message against the convention",
	Long: `Validates a commit message against the
<ISSUE-ID> <Verb> <description> format.

The message is taken from the argument, from a file via --file, or
from stdin when neither is given. Pointing --file at the message file
git passes to the commit-msg hook makes this command usable as a hook:

  verbump check --file "$1"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "read the message from a file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if conventionService == nil {
		return errors.New("convention service not configured")
	}

	message, err := readMessage(cmd, args)
	if err != nil {
		return err
	}

	ok, reason := conventionService.Validate(message)
	if !ok {
		return errors.New(reason)
	}

	cmd.Println("OK")
	return nil
}

// readMessage resolves the commit message from argument, file or stdin.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", err
		}
		return stripComments(string(data)), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return stripComments(string(data)), nil
}

// stripComments drops the comment lines git appends to hook message
// files.
func stripComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
