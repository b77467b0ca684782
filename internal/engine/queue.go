package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultQueueSize is the command buffer used when NewQueue gets a non-positive size.
const DefaultQueueSize = 64

// ErrQueueClosed is returned by Do once the queue has stopped accepting commands.
var ErrQueueClosed = errors.New("engine queue closed")

// Command is a unit of work executed against the engine on the queue's goroutine.
type Command func(e *Engine) error

type request struct {
	cmd  Command
	done chan error
}

// Queue serializes access to one Engine from many goroutines. Commands run one at a
// time, in submission order, on the goroutine that calls Run. Observers registered on the
// engine are therefore also called from that goroutine.
type Queue struct {
	engine  *Engine
	cmds    chan request
	closing chan struct{}
	stopped chan struct{}
	once    sync.Once
	logger  zerolog.Logger
}

// NewQueue wraps e. The caller must start Run exactly once.
func NewQueue(e *Engine, size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		engine:  e,
		cmds:    make(chan request, size),
		closing: make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  e.logger,
	}
}

// Run executes commands until Close is called or ctx is done. It returns nil after
// Close and ctx.Err() on cancellation. Commands still buffered when Run returns fail
// with ErrQueueClosed.
func (q *Queue) Run(ctx context.Context) error {
	defer close(q.stopped)

	var executed int
	for {
		select {
		case <-ctx.Done():
			q.logger.Debug().Int("executed", executed).Msg("engine queue cancelled")
			return ctx.Err()
		case <-q.closing:
			q.logger.Debug().Int("executed", executed).Msg("engine queue closed")
			return nil
		case req := <-q.cmds:
			req.done <- req.cmd(q.engine)
			executed++
		}
	}
}

// Do submits cmd and waits for its result.
func (q *Queue) Do(ctx context.Context, cmd Command) error {
	req := request{cmd: cmd, done: make(chan error, 1)}

	select {
	case <-q.closing:
		return ErrQueueClosed
	case <-q.stopped:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	case q.cmds <- req:
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-q.stopped:
		// Run may have executed the command just before stopping.
		select {
		case err := <-req.done:
			return err
		default:
			return ErrQueueClosed
		}
	}
}

// Close stops the queue. It is safe to call more than once.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.closing) })
}
