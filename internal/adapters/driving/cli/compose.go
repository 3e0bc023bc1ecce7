package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calebreed/verbump/internal/adapters/driving/tui"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Interactively compose a commit message",
	Long: `Walks through issue id, verb, description and optional body, then
prints the rendered commit message. Use it with git directly:

  git commit -m "$(verbump compose)"`,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, _ []string) error {
	if conventionService == nil {
		return errors.New("convention service not configured")
	}

	program := tea.NewProgram(tui.NewComposeModel(conventionService))
	final, err := program.Run()
	if err != nil {
		return err
	}

	model, ok := final.(*tui.ComposeModel)
	if !ok || model.Aborted() {
		return errors.New("compose aborted")
	}

	cmd.Println(model.Message())
	return nil
}
