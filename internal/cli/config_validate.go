package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagetable/internal/config"
	"github.com/rshade/pagetable/internal/pagination"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(app *appState) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Loads the configuration file, applies PAGETABLE_* environment variables and flags,
and checks that page size and middle button count are at least 1 and the demo bounds are
consistent.`,
		Example: `  # Validate current configuration
  pagetable config validate

  # Validate a specific file and show the resulting table settings
  pagetable config validate --config ./pagetable.yaml --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// PersistentPreRunE already rejected invalid configuration.
			cmd.Println("Configuration is valid")
			if verbose {
				printVerboseDetails(cmd, app.cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Printf("  Page size:          %d\n", cfg.Table.PageSize)
	cmd.Printf("  Middle buttons:     %d\n", cfg.Table.MiddleButtonCount)
	cmd.Printf("  Default page size:  %d\n", pagination.DefaultPageSize)
	cmd.Printf("  Columns:            %d\n", len(cfg.Table.HeaderOrDefault()))
	cmd.Printf("  Log level:          %s\n", cfg.Logging.Level)
	cmd.Printf("  Demo feed:          %d ticks every %s, %d-%d rows\n",
		cfg.Demo.Ticks, cfg.Demo.Interval, cfg.Demo.MinBatch, cfg.Demo.MaxBatch)
}

// newConfigShowCmd creates the config show command, which prints the effective config.
func newConfigShowCmd(app *appState) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			switch output {
			case outputJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(app.cfg)
			case outputYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2) //nolint:mnd // Two-space YAML indent.
				if err := enc.Encode(app.cfg); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported output format: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml or json")
	return cmd
}
