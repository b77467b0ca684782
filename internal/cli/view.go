package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagetable/internal/ingest"
	"github.com/rshade/pagetable/internal/tui"
)

// newViewCmd creates the view command, which browses a table page by page.
func newViewCmd(app *appState) *cobra.Command {
	var (
		page    int
		plain   bool
		noColor bool
		src     sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "view [file.csv]",
		Short: "Browse a CSV file or sample rows one page at a time",
		Long: `Browse a table one page at a time.

In a terminal this opens an interactive view: left/right change page, 1-9 click the n-th
numbered page button, [ and ] jump by a window, home/end go to the first or last page,
g opens go-to-page, m rewrites a random row of the current page and d deletes the current
page. Piped output prints one page. Records are loaded in batches of --batch-size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source, err := loadSource(ctx, app.cfg, args, src)
			if err != nil {
				return err
			}
			e, err := loadEngine(ctx, app.cfg, source.records, src.batchSize)
			if err != nil {
				return err
			}
			e.SetCurrentPage(page)

			switch tui.DetectOutputMode(false, noColor, plain) {
			case tui.OutputModeInteractive:
				m := tui.NewModel(ctx, e, source.header, ingest.NewGenerator(seedOrNow(src.seed)))
				if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
					return fmt.Errorf("failed to run interactive TUI: %w", err)
				}
				return nil
			case tui.OutputModeStyled:
				_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderStyled(source.header, e.CurrentPageData(), e.State()))
				return err
			default:
				return tui.RenderPlain(cmd.OutOrStdout(), source.header, e.CurrentPageData(), e.State())
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "initial page (clamped to the page count)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print one page as plain text")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	addSourceFlags(cmd, &src)
	return cmd
}

func addSourceFlags(cmd *cobra.Command, src *sourceFlags) {
	cmd.Flags().IntVar(&src.sample, "sample", 0, "generate N random rows instead of reading a file")
	cmd.Flags().Int64Var(&src.seed, "seed", 0, "random seed for --sample and row edits (0 = time based)")
	cmd.Flags().IntVar(&src.batchSize, "batch-size", defaultLoadBatch, "records appended per batch while loading")
}
