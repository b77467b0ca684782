package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagetable/internal/config"
	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/engine"
	"github.com/rshade/pagetable/internal/ingest"
	"github.com/rshade/pagetable/internal/logging"
	"github.com/rshade/pagetable/internal/tui"
)

// demoFlags overrides the demo section of the config.
type demoFlags struct {
	ticks    int
	interval time.Duration
	seed     int64
	headless bool
	edits    bool
}

// newDemoCmd creates the demo command, which streams random rows into a live table.
func newDemoCmd(app *appState) *cobra.Command {
	var flags demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Stream random rows into a paged table",
		Long: `Stream batches of random rows into a paged table on a timer.

Interactive mode shows the table while it fills. --headless runs the same feed without a
terminal UI, logs every page change and prints the final page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			demo := app.cfg.Demo
			if cmd.Flags().Changed("ticks") {
				demo.Ticks = flags.ticks
			}
			if cmd.Flags().Changed("interval") {
				demo.Interval = flags.interval
			}
			if cmd.Flags().Changed("seed") {
				demo.Seed = flags.seed
			}
			if err := demo.Validate(); err != nil {
				return fmt.Errorf("%w: demo: %w", config.ErrInvalidConfig, err)
			}

			header := app.cfg.Table.Header
			if len(header) == 0 {
				header = config.DefaultHeader(demo.Columns)
			}

			if flags.headless || !isTerminal(os.Stdout) {
				return runHeadlessDemo(cmd.Context(), cmd.OutOrStdout(), app.cfg, demo, header, flags.edits)
			}
			return runInteractiveDemo(cmd.Context(), app.cfg, demo, header)
		},
	}

	cmd.Flags().IntVar(&flags.ticks, "ticks", config.DefaultDemoTicks, "number of batches to append")
	cmd.Flags().DurationVar(&flags.interval, "interval", config.DefaultDemoInterval, "delay before each batch")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().BoolVar(&flags.headless, "headless", false, "run without the terminal UI")
	cmd.Flags().BoolVar(&flags.edits, "edits", true, "after the feed, modify a row and delete the last page (headless only)")
	return cmd
}

// demoSource returns a feed source producing a random-size batch per tick.
func demoSource(gen *ingest.Generator, demo config.DemoConfig, width int) ingest.Source {
	return func(int) []dataset.Record {
		return gen.Rows(gen.BatchSize(demo.MinBatch, demo.MaxBatch), width)
	}
}

func newDemoFeeder(ctx context.Context, demo config.DemoConfig) (*ingest.Feeder, error) {
	feeder, err := ingest.NewFeeder(ingest.MinBatchSize, demo.Interval)
	if err != nil {
		return nil, err
	}
	return feeder.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "feed")), nil
}

// runHeadlessDemo feeds the engine through a Queue from a producer goroutine while the
// queue consumer owns the engine.
func runHeadlessDemo(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	demo config.DemoConfig,
	header []string,
	edits bool,
) error {
	log := logging.FromContext(ctx)

	e, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	e.OnPageChange(func(c engine.PageChange) {
		log.Info().Ctx(ctx).
			Str("change", c.Kind.String()).
			Int("page", c.Page).
			Int("page_count", c.State.TotalPages).
			Int("records", c.State.TotalRecords).
			Msg("page changed")
	})

	feeder, err := newDemoFeeder(ctx, demo)
	if err != nil {
		return err
	}

	seed := seedOrNow(demo.Seed)
	gen := ingest.NewGenerator(seed)
	queue := engine.NewQueue(e, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queue.Run(gctx)
	})
	g.Go(func() error {
		defer queue.Close()

		err := feeder.Stream(gctx, demo.Ticks, demoSource(gen, demo, len(header)),
			func(ctx context.Context, batch []dataset.Record, _ int) error {
				return queue.Do(ctx, func(e *engine.Engine) error {
					return e.UpdateData(batch, engine.Append, 0)
				})
			})
		if err != nil {
			return err
		}
		if !edits {
			return nil
		}
		return queue.Do(gctx, func(e *engine.Engine) error {
			return applyDemoEdits(e, ingest.NewGenerator(seed+1))
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("demo feed: %w", err)
	}

	return tui.RenderPlain(w, header, e.CurrentPageData(), e.State())
}

// applyDemoEdits moves to the middle page, rewrites one random row there and then deletes
// the last page.
func applyDemoEdits(e *engine.Engine, gen *ingest.Generator) error {
	e.SetCurrentPage((e.PageCount() + 1) / 2) //nolint:mnd // Middle page.
	rows := e.CurrentPageData()
	if len(rows) == 0 {
		return nil
	}

	i := gen.Intn(len(rows))
	if err := e.UpdateData([]dataset.Record{gen.Randomize(rows[i])}, engine.Modify, e.PageOffset()+i); err != nil {
		return err
	}

	e.SetCurrentPage(e.PageCount())
	return e.UpdateData(e.CurrentPageData(), engine.Delete, 0)
}

// runInteractiveDemo runs the TUI; the Bubble Tea event loop owns the engine and the feed
// goroutine delivers batches as messages.
func runInteractiveDemo(ctx context.Context, cfg *config.Config, demo config.DemoConfig, header []string) error {
	e, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}

	feeder, err := newDemoFeeder(ctx, demo)
	if err != nil {
		return err
	}

	seed := seedOrNow(demo.Seed)
	m := tui.NewModel(ctx, e, header, ingest.NewGenerator(seed+1))
	m.SetFeeding(true)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	go func() {
		feeder.WithProgressCallback(tui.FeedProgress(p.Send))
		err := feeder.Stream(ctx, demo.Ticks, demoSource(ingest.NewGenerator(seed), demo, len(header)), tui.FeedSink(p.Send))
		p.Send(tui.FeedDoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
