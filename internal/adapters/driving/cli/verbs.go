package cli

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calebreed/verbump/internal/core/domain"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	verbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	levelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// Section headers, one per impact group.
var verbSections = []struct {
	header string
	level  domain.Increment
}{
	{"── Breaking Changes (Major) ──", domain.IncrementMajor},
	{"── New Features (Minor) ──", domain.IncrementMinor},
	{"── Fixes & Maintenance (Patch) ──", domain.IncrementPatch},
	{"── Other Changes ──", domain.IncrementNone},
}

var verbsCmd = &cobra.Command{
	Use:   "verbs [prefix]",
	Short: "List approved verbs, optionally filtered by prefix",
	Long: `Without an argument, lists every approved verb grouped by version
impact. With a prefix argument, lists the matching verbs only (the
match is case-insensitive).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerbs,
}

func init() {
	rootCmd.AddCommand(verbsCmd)
}

func runVerbs(cmd *cobra.Command, args []string) error {
	if conventionService == nil {
		return errors.New("convention service not configured")
	}

	if len(args) == 1 {
		matches := conventionService.SuggestVerbs(args[0])
		if len(matches) == 0 {
			cmd.Printf("No verbs match %q.\n", args[0])
			return nil
		}
		table := conventionService.Table()
		for _, verb := range matches {
			level, _ := table.Lookup(verb)
			cmd.Printf("%s - %s\n", verb, level.Description())
		}
		return nil
	}

	table := conventionService.Table()
	for _, section := range verbSections {
		verbs := table.ByLevel(section.level)
		if len(verbs) == 0 {
			continue
		}
		cmd.Println(sectionStyle.Render(section.header))
		for _, verb := range verbs {
			cmd.Printf("  %s %s\n",
				verbStyle.Render(verb),
				levelStyle.Render("- "+section.level.Description()),
			)
		}
		cmd.Println()
	}
	return nil
}
