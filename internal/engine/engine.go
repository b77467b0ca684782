package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/pagination"
)

// ChangeKind tells observers which refresh a page change calls for.
type ChangeKind int

const (
	// ChangeNavigation means only the current page moved; the data is unchanged, so a
	// presentation layer can refresh the visible rows in place.
	ChangeNavigation ChangeKind = iota
	// ChangeData means the records changed; page count and controls may differ, so the
	// whole control row should be rebuilt.
	ChangeData
)

// String returns the change kind name used in logs.
func (k ChangeKind) String() string {
	if k == ChangeData {
		return "data"
	}
	return "navigation"
}

// PageChange is delivered to observers after every recompute.
type PageChange struct {
	Page  int
	Kind  ChangeKind
	State pagination.State
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing of mutations and navigation.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns the records of a paged table and its derived page-selector state.
type Engine struct {
	store     *dataset.Store
	cfg       pagination.Config
	state     pagination.State
	observers []func(PageChange)
	logger    zerolog.Logger
}

// New creates an engine over a copy of initial, starting on page 1.
// cfg is fixed for the engine's lifetime.
func New(initial []dataset.Record, cfg pagination.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		store:  dataset.NewStore(initial),
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.state = pagination.Compute(cfg, e.store.Total(), pagination.FirstPage)
	return e, nil
}

// UpdateData applies rows with the given operation and recomputes the page state,
// keeping the current page (clamped to the new page count).
//
// index is only used by Modify and is the absolute record index of rows[0]; callers
// editing the current page pass (CurrentPage()-1)*PageSize() plus any in-page offset.
// A negative index for Modify returns dataset.ErrInvalidArgument and changes nothing.
func (e *Engine) UpdateData(rows []dataset.Record, op Operation, index int) error {
	switch op {
	case Append:
		e.store.Append(rows)
	case Modify:
		if err := e.store.Modify(rows, index); err != nil {
			e.logger.Warn().Err(err).Int("index", index).Int("rows", len(rows)).Msg("modify rejected")
			return err
		}
	case Delete:
		removed := e.store.Delete(rows)
		e.logger.Debug().Int("targets", len(rows)).Int("removed", removed).Msg("rows deleted")
	default:
		return fmt.Errorf("%w: unknown operation %d", dataset.ErrInvalidArgument, int(op))
	}

	e.logger.Debug().
		Str("operation", op.String()).
		Int("rows", len(rows)).
		Int("total", e.store.Total()).
		Msg("data updated")

	e.recompute(ChangeData, e.state.CurrentPage)
	return nil
}

// SetCurrentPage moves to page, clamped to [1, PageCount()], and returns the new state.
// Observers are notified even when the page does not move.
func (e *Engine) SetCurrentPage(page int) pagination.State {
	e.recompute(ChangeNavigation, page)
	return e.State()
}

// Navigate applies a relative navigation action. Disabled actions (prev on the first
// page, next on the last) do nothing and report false.
func (e *Engine) Navigate(action pagination.Action) (pagination.State, bool) {
	target, ok := pagination.Target(e.state, action)
	if !ok {
		return e.State(), false
	}
	e.logger.Debug().Str("action", action.String()).Int("target", target).Msg("navigate")
	return e.SetCurrentPage(target), true
}

// GoTo parses typed page input and moves there. Numbers out of range are clamped;
// non-numeric input returns pagination.ErrInvalidPageInput and leaves the page unchanged.
func (e *Engine) GoTo(input string) (pagination.State, error) {
	page, err := pagination.ParsePage(input)
	if err != nil {
		return e.State(), err
	}
	return e.SetCurrentPage(page), nil
}

// Activate handles a click on a button descriptor. Hidden or disabled buttons are
// ignored. Descriptors from an older render still work: their page is clamped.
func (e *Engine) Activate(b pagination.Button) (pagination.State, bool) {
	if !b.Visible || !b.Enabled {
		return e.State(), false
	}
	return e.SetCurrentPage(b.Page), true
}

// OnCurrentPageChanged registers a handler called with the current page at the end of
// every page-changing call, including data updates.
func (e *Engine) OnCurrentPageChanged(handler func(page int)) {
	if handler == nil {
		return
	}
	e.OnPageChange(func(c PageChange) { handler(c.Page) })
}

// OnPageChange registers a handler receiving the full change, including whether a data
// update or navigation caused it. Handlers run synchronously in registration order.
func (e *Engine) OnPageChange(handler func(PageChange)) {
	if handler == nil {
		return
	}
	e.observers = append(e.observers, handler)
}

func (e *Engine) recompute(kind ChangeKind, requested int) {
	e.state = pagination.Compute(e.cfg, e.store.Total(), requested)

	e.logger.Debug().
		Str("change", kind.String()).
		Int("requested", requested).
		Int("page", e.state.CurrentPage).
		Int("page_count", e.state.TotalPages).
		Bool("prev_ellipsis", e.state.ShowPrevEllipsis).
		Bool("next_ellipsis", e.state.ShowNextEllipsis).
		Msg("page state recomputed")

	for _, observer := range e.observers {
		observer(PageChange{Page: e.state.CurrentPage, Kind: kind, State: e.state.Clone()})
	}
}

// CurrentPageData returns a copy of the records on the current page.
func (e *Engine) CurrentPageData() []dataset.Record {
	return e.store.Page(e.state.CurrentPage, e.cfg.PageSize)
}

// State returns a snapshot of the page-selector state.
func (e *Engine) State() pagination.State {
	return e.state.Clone()
}

// Buttons returns the declarative control row for the current state.
func (e *Engine) Buttons() []pagination.Button {
	return pagination.Buttons(e.state)
}

// PageSize returns the configured records per page.
func (e *Engine) PageSize() int {
	return e.cfg.PageSize
}

// CurrentPage returns the 1-based current page.
func (e *Engine) CurrentPage() int {
	return e.state.CurrentPage
}

// PageCount returns the number of pages, at least 1.
func (e *Engine) PageCount() int {
	return e.state.TotalPages
}

// Total returns the number of records.
func (e *Engine) Total() int {
	return e.store.Total()
}

// Data returns a copy of every record.
func (e *Engine) Data() []dataset.Record {
	return e.store.All()
}

// PageOffset returns the absolute index of the first record on the current page, the
// base index for a Modify of the current page.
func (e *Engine) PageOffset() int {
	return (e.state.CurrentPage - 1) * e.cfg.PageSize
}
