package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/pagetable/internal/dataset"
)

// Feed configuration limits.
const (
	DefaultBatchSize = 100
	MinBatchSize     = 1
	MaxBatchSize     = 10000
)

// Feed errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 10000")
	ErrInvalidInterval  = errors.New("feed interval must not be negative")
	ErrNilSink          = errors.New("feed sink cannot be nil")
	ErrNilSource        = errors.New("feed source cannot be nil")
)

// Sink receives one batch. index is 0-based.
type Sink func(ctx context.Context, batch []dataset.Record, index int) error

// Source produces the batch for tick index.
type Source func(index int) []dataset.Record

// ProgressCallback is invoked after every delivered batch.
type ProgressCallback func(ProgressSnapshot)

// Feeder delivers records to a sink in batches, optionally pacing them with an interval.
type Feeder struct {
	batchSize  int
	interval   time.Duration
	onProgress ProgressCallback
	logger     zerolog.Logger
}

// NewFeeder creates a feeder. An interval of zero delivers batches back to back.
func NewFeeder(batchSize int, interval time.Duration) (*Feeder, error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidInterval, interval)
	}
	return &Feeder{batchSize: batchSize, interval: interval, logger: zerolog.Nop()}, nil
}

// WithProgressCallback sets the progress callback.
func (f *Feeder) WithProgressCallback(cb ProgressCallback) *Feeder {
	f.onProgress = cb
	return f
}

// WithLogger sets the logger.
func (f *Feeder) WithLogger(logger zerolog.Logger) *Feeder {
	f.logger = logger
	return f
}

// BatchCount returns how many batches Feed makes of n records.
func (f *Feeder) BatchCount(n int) int {
	return (n + f.batchSize - 1) / f.batchSize
}

// Feed splits records into batches of the configured size and hands them to sink in
// order. It stops on the first sink error or when ctx is done.
func (f *Feeder) Feed(ctx context.Context, records []dataset.Record, sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}

	batches := f.BatchCount(len(records))
	source := func(i int) []dataset.Record {
		start := i * f.batchSize
		end := min(start+f.batchSize, len(records))
		return records[start:end]
	}
	return f.run(ctx, NewProgress(len(records), batches), batches, source, sink)
}

// Stream calls source for each of ticks batches and hands the result to sink.
func (f *Feeder) Stream(ctx context.Context, ticks int, source Source, sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if source == nil {
		return ErrNilSource
	}
	return f.run(ctx, NewProgress(0, ticks), ticks, source, sink)
}

func (f *Feeder) run(ctx context.Context, progress *Progress, batches int, source Source, sink Sink) error {
	for i := range batches {
		if err := f.wait(ctx); err != nil {
			return err
		}

		batch := source(i)
		if err := sink(ctx, batch, i); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		progress.AddBatch(len(batch))

		snap := progress.Snapshot()
		f.logger.Debug().
			Int("batch", i).
			Int("rows", len(batch)).
			Float64("percent", snap.PercentComplete).
			Msg("batch delivered")

		if f.onProgress != nil {
			f.onProgress(snap)
		}
	}
	return nil
}

func (f *Feeder) wait(ctx context.Context) error {
	if f.interval == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
