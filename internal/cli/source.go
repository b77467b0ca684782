package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rshade/pagetable/internal/config"
	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/engine"
	"github.com/rshade/pagetable/internal/ingest"
	"github.com/rshade/pagetable/internal/logging"
)

// ErrNoInput is returned when a command has neither a CSV file nor --sample rows.
var ErrNoInput = errors.New("no input: pass a CSV file or --sample N")

// defaultLoadBatch is the number of records appended per batch when loading a table.
const defaultLoadBatch = 1000

// sourceFlags selects where table records come from.
type sourceFlags struct {
	sample    int
	seed      int64
	batchSize int
}

// tableSource is a loaded header and its records.
type tableSource struct {
	header  []string
	records []dataset.Record
}

// loadSource reads the CSV at args[0], or generates --sample rows when no file is given.
// The config header, when set, replaces the CSV header.
func loadSource(ctx context.Context, cfg *config.Config, args []string, flags sourceFlags) (tableSource, error) {
	log := logging.FromContext(ctx)

	if len(args) > 0 {
		header, records, err := ingest.LoadCSV(args[0])
		if err != nil {
			return tableSource{}, err
		}
		if len(cfg.Table.Header) > 0 {
			header = cfg.Table.Header
		}
		log.Debug().Ctx(ctx).Str("file", args[0]).Int("records", len(records)).Msg("csv loaded")
		return tableSource{header: header, records: records}, nil
	}

	if flags.sample <= 0 {
		return tableSource{}, ErrNoInput
	}

	header := cfg.Table.HeaderOrDefault()
	records := ingest.NewGenerator(seedOrNow(flags.seed)).Rows(flags.sample, len(header))
	log.Debug().Ctx(ctx).Int("records", len(records)).Msg("sample rows generated")
	return tableSource{header: header, records: records}, nil
}

// newEngine builds an empty engine using the table config, logging to the context logger.
func newEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, error) {
	e, err := engine.New(nil, cfg.Table.Pagination(),
		engine.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "engine")))
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return e, nil
}

// loadEngine builds an empty engine and appends records to it in batches through a
// Feeder, the same path a live feed takes.
func loadEngine(ctx context.Context, cfg *config.Config, records []dataset.Record, batchSize int) (*engine.Engine, error) {
	log := logging.FromContext(ctx)

	feeder, err := ingest.NewFeeder(batchSize, 0)
	if err != nil {
		return nil, err
	}
	feeder.WithLogger(logging.ComponentLogger(*log, "load"))

	e, err := newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Int("records", len(records)).
		Int("batches", feeder.BatchCount(len(records))).
		Msg("loading records")

	err = feeder.Feed(ctx, records, func(_ context.Context, batch []dataset.Record, _ int) error {
		return e.UpdateData(batch, engine.Append, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return e, nil
}

func seedOrNow(seed int64) uint64 {
	if seed != 0 {
		return uint64(seed) //nolint:gosec // Seed bits are reinterpreted, sign does not matter.
	}
	return uint64(time.Now().UnixNano()) //nolint:gosec // Clock values are positive.
}
