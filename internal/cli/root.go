package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagetable/internal/config"
	"github.com/rshade/pagetable/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// appState carries the resolved configuration from the root PersistentPreRunE to
// subcommands.
type appState struct {
	lookupEnv func(string) (string, bool)
	cfg       *config.Config
}

// NewRootCmd creates the root Cobra command for the pagetable CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult
	app := &appState{lookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:           "pagetable",
		Short:         "Paged table viewer and pagination engine",
		Long:          "pagetable: browse tabular data one page at a time with a windowed page selector",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			app.cfg = cfg

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $PAGETABLE_CONFIG or ~/.pagetable/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Int("page-size", 0, "records per page (overrides config file and env var)")
	cmd.PersistentFlags().Int("middle-buttons", 0, "page buttons between the ellipses (overrides config file and env var)")

	cmd.AddCommand(newViewCmd(app), newStateCmd(app), newDemoCmd(app), newConfigCmd(app))
	return cmd
}

// loadConfig resolves the config file, then applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, lookupEnv)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("page-size") {
		cfg.Table.PageSize, _ = cmd.Flags().GetInt("page-size")
	}
	if cmd.Flags().Changed("middle-buttons") {
		cfg.Table.MiddleButtonCount, _ = cmd.Flags().GetInt("middle-buttons")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}
	return cfg, nil
}

// newConfigCmd creates the config command group.
func newConfigCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(newConfigShowCmd(app), newConfigValidateCmd(app))
	return cmd
}

const rootCmdExample = `  # Browse a CSV file one page at a time
  pagetable view costs.csv

  # Print page 7 of a CSV file as plain text with 10 rows per page
  pagetable view costs.csv --page 7 --plain --page-size 10

  # Export the page selector state as JSON
  pagetable state costs.csv --page 8 --output json

  # Watch random rows stream into the table
  pagetable demo

  # Run the feed without a terminal UI and log every page change
  pagetable demo --headless --interval 100ms --debug`
