package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the expected commit message format",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if conventionService == nil {
			return errors.New("convention service not configured")
		}
		cmd.Println(conventionService.Schema())
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show example commit messages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if conventionService == nil {
			return errors.New("convention service not configured")
		}
		cmd.Println(conventionService.Example())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(exampleCmd)
}
