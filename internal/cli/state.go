package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagetable/internal/pagination"
	"github.com/rshade/pagetable/internal/tui"
)

// Output formats for the state command.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

const tabPadding = 2

// newStateCmd creates the state command, which prints the page selector state.
func newStateCmd(app *appState) *cobra.Command {
	var (
		page   int
		output string
		src    sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "state [file.csv]",
		Short: "Print the page selector state for a page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			ctx := cmd.Context()
			source, err := loadSource(ctx, app.cfg, args, src)
			if err != nil {
				return err
			}
			e, err := loadEngine(ctx, app.cfg, source.records, src.batchSize)
			if err != nil {
				return err
			}

			meta := pagination.NewMeta(e.SetCurrentPage(page), true)
			return renderMeta(cmd.OutOrStdout(), output, meta, e.State())
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to compute (clamped to the page count)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	addSourceFlags(cmd, &src)
	return cmd
}

func validateOutput(output string) error {
	switch output {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func renderMeta(w io.Writer, output string, meta pagination.Meta, s pagination.State) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(meta); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderMetaTable(w, meta, s)
	}
}

func renderMetaTable(w io.Writer, meta pagination.Meta, s pagination.State) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	rows := [][2]string{
		{"Current page", strconv.Itoa(meta.CurrentPage)},
		{"Total pages", strconv.Itoa(meta.TotalPages)},
		{"Page size", strconv.Itoa(meta.PageSize)},
		{"Records", strconv.Itoa(meta.TotalItems)},
		{"Window", fmt.Sprint(meta.Window)},
		{"Prev ellipsis", strconv.FormatBool(meta.ShowPrevEllipsis)},
		{"Next ellipsis", strconv.FormatBool(meta.ShowNextEllipsis)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", tui.RenderFooter(s, false))
	return err
}
