// Package cli implements the cobra command-line interface.
// Commands operate through the driving ports only; services are
// injected with Initialize (in main) or built lazily from the
// configuration file on first use.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebreed/verbump/internal/adapters/driven/config/file"
	"github.com/calebreed/verbump/internal/adapters/driven/gitlog"
	"github.com/calebreed/verbump/internal/core/ports/driving"
	"github.com/calebreed/verbump/internal/core/services"
	"github.com/calebreed/verbump/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagConfig  string
	flagRepo    string
	flagVerbose bool

	conventionService driving.ConventionService
	releaseService    driving.ReleaseService
)

var rootCmd = &cobra.Command{
	Use:   "verbump",
	Short: "Linear-style commit messages and semantic version bumps",
	Long: `verbump enforces the <ISSUE-ID> <Verb> <description> commit convention
and derives semantic-version increments from commit history.

Commit verbs map to increments (Changed -> major, Added -> minor,
Fixed -> patch, ...) and a [bump:<level>] directive in a commit body
overrides the verb-derived increment for the whole batch.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: ensureServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&flagRepo, "repo", "C", "", "path to the git repository (default current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
}

// Initialize injects the services used by the CLI commands.
// Tests use it to substitute services; main relies on the lazy path.
func Initialize(convention driving.ConventionService, release driving.ReleaseService) {
	conventionService = convention
	releaseService = release
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices builds the services from configuration unless they
// were already injected.
func ensureServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if conventionService != nil && releaseService != nil {
		return nil
	}

	store, err := file.NewSettingsStore(flagConfig)
	if err != nil {
		return fmt.Errorf("locate config: %w", err)
	}

	settings, err := store.Load()
	if err != nil {
		return err
	}
	logger.Debug("settings loaded from %s", store.Path())

	convention, err := services.NewConvention(settings)
	if err != nil {
		return err
	}

	conventionService = convention
	releaseService = services.NewRelease(gitlog.NewReader(flagRepo), convention)
	return nil
}
