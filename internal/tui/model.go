package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/engine"
	"github.com/rshade/pagetable/internal/ingest"
	"github.com/rshade/pagetable/internal/logging"
	"github.com/rshade/pagetable/internal/pagination"
)

// Key bindings.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keyLeft      = "left"
	keyRight     = "right"
	keyH         = "h"
	keyL         = "l"
	keyPgUp      = "pgup"
	keyPgDown    = "pgdown"
	keyQuickPrev = "["
	keyQuickNext = "]"
	keyHome      = "home"
	keyEnd       = "end"
	keyGoTo      = "g"
	keyModify    = "m"
	keyDelete    = "d"
)

// Layout defaults.
const (
	defaultWidth    = 100
	defaultHeight   = 30
	chromeLines     = 7
	minColumnWidth  = 6
	maxColumnWidth  = 24
	goToInputWidth  = 8
	goToInputLength = 9
)

// RecordsAppendedMsg appends rows to the table's data.
type RecordsAppendedMsg struct {
	Rows []dataset.Record
}

// FeedProgressMsg reports progress of a running feed.
type FeedProgressMsg struct {
	Snapshot ingest.ProgressSnapshot
}

// FeedDoneMsg is sent when a feed stops. Err is nil on normal completion.
type FeedDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model for a paged table. The Bubble Tea event loop is the
// engine's only writer; background producers deliver rows as messages.
type Model struct {
	engine *engine.Engine
	header []string
	gen    *ingest.Generator
	logger zerolog.Logger

	table      table.Model
	goTo       textinput.Model
	goToActive bool

	feeding  bool
	progress *ingest.ProgressSnapshot
	status   string
	err      error
	quitting bool

	width  int
	height int

	rebuilds  int
	refreshes int
}

// NewModel builds a model over e. gen supplies values for the modify action; when nil,
// modify is disabled.
func NewModel(ctx context.Context, e *engine.Engine, header []string, gen *ingest.Generator) *Model {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = goToInputLength
	ti.Width = goToInputWidth
	ti.Prompt = "Go to: "

	m := &Model{
		engine: e,
		header: header,
		gen:    gen,
		logger: logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		goTo:   ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	e.OnPageChange(m.onPageChange)
	m.rebuildTable()
	return m
}

// SetFeeding marks a feed as running so the status line reports it.
func (m *Model) SetFeeding(feeding bool) {
	m.feeding = feeding
}

// Init initializes the model (Bubble Tea interface).
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (Bubble Tea interface).
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case RecordsAppendedMsg:
		m.applyUpdate(msg.Rows, engine.Append, 0)
		return m, nil
	case FeedProgressMsg:
		snap := msg.Snapshot
		m.progress = &snap
		return m, nil
	case FeedDoneMsg:
		m.feeding = false
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		m.status = "feed finished"
		return m, nil
	case tea.KeyMsg:
		if m.goToActive {
			return m.handleGoToKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case keyLeft, keyH, keyPgUp:
		m.navigate(pagination.ActionPrev)
	case keyRight, keyL, keyPgDown:
		m.navigate(pagination.ActionNext)
	case keyQuickPrev:
		m.navigate(pagination.ActionQuickPrev)
	case keyQuickNext:
		m.navigate(pagination.ActionQuickNext)
	case keyHome:
		m.navigate(pagination.ActionFirst)
	case keyEnd:
		m.navigate(pagination.ActionLast)
	case keyGoTo:
		m.goToActive = true
		m.goTo.SetValue("")
		m.goTo.Focus()
		return m, textinput.Blink
	case keyModify:
		m.modifyCurrentPage()
	case keyDelete:
		m.deleteCurrentPage()
	default:
		if n, ok := pageButtonKey(msg.String()); ok {
			m.activatePageButton(n)
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pageButtonKey maps the keys 1-9 to a numbered button position.
func pageButtonKey(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '0'), true
}

// activatePageButton clicks the n-th visible numbered button (1-based), counting the
// first and last page buttons. Positions past the end are ignored.
func (m *Model) activatePageButton(n int) {
	var numbered []pagination.Button
	for _, b := range m.engine.Buttons() {
		if !b.Visible {
			continue
		}
		switch b.Role {
		case pagination.RoleFirst, pagination.RolePage, pagination.RoleLast:
			numbered = append(numbered, b)
		}
	}
	if n > len(numbered) {
		return
	}
	if _, ok := m.engine.Activate(numbered[n-1]); ok {
		m.err = nil
	}
}

func (m *Model) handleGoToKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		m.goToActive = false
		m.goTo.Blur()
		if _, err := m.engine.GoTo(m.goTo.Value()); err != nil {
			m.err = err
		} else {
			m.err = nil
		}
		return m, nil
	case keyEsc:
		m.goToActive = false
		m.goTo.Blur()
		return m, nil
	case keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.goTo, cmd = m.goTo.Update(msg)
	return m, cmd
}

func (m *Model) navigate(action pagination.Action) {
	if _, moved := m.engine.Navigate(action); !moved {
		m.logger.Debug().Str("action", action.String()).Msg("navigation disabled")
	}
	m.err = nil
}

// modifyCurrentPage replaces one random row of the current page with new values.
func (m *Model) modifyCurrentPage() {
	rows := m.engine.CurrentPageData()
	if m.gen == nil || len(rows) == 0 {
		return
	}
	i := m.gen.Intn(len(rows))
	m.applyUpdate([]dataset.Record{m.gen.Randomize(rows[i])}, engine.Modify, m.engine.PageOffset()+i)
	m.status = fmt.Sprintf("modified row %d", m.engine.PageOffset()+i+1)
}

func (m *Model) deleteCurrentPage() {
	rows := m.engine.CurrentPageData()
	if len(rows) == 0 {
		return
	}
	m.applyUpdate(rows, engine.Delete, 0)
	m.status = fmt.Sprintf("deleted %d rows", len(rows))
}

func (m *Model) applyUpdate(rows []dataset.Record, op engine.Operation, index int) {
	if err := m.engine.UpdateData(rows, op, index); err != nil {
		m.err = err
		m.logger.Warn().Err(err).Str("operation", op.String()).Msg("update failed")
	}
}

func (m *Model) onPageChange(c engine.PageChange) {
	if c.Kind == engine.ChangeData {
		m.rebuildTable()
		return
	}
	m.refreshRows()
}

// rebuildTable reconstructs the table with columns sized for the current page.
func (m *Model) rebuildTable() {
	m.rebuilds++
	rows := m.pageRows()

	columns := make([]table.Column, len(m.header))
	for i, title := range m.header {
		width := max(len(title), minColumnWidth)
		for _, r := range rows {
			width = max(width, len(r[i]))
		}
		columns[i] = table.Column{Title: title, Width: min(width, maxColumnWidth)}
	}

	height := max(1, min(m.engine.PageSize(), m.height-chromeLines))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	m.table = t
}

// refreshRows swaps in the current page's rows without rebuilding columns.
func (m *Model) refreshRows() {
	m.refreshes++
	m.table.SetRows(m.pageRows())
	m.table.SetCursor(0)
}

func (m *Model) pageRows() []table.Row {
	records := m.engine.CurrentPageData()
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = DisplayRow(r, len(m.header))
	}
	return rows
}

// View renders the model (Bubble Tea interface).
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(RenderFooter(m.engine.State(), true))
	b.WriteString("\n")

	if m.goToActive {
		b.WriteString(m.goTo.View())
		b.WriteString("\n")
	}
	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render(
		"←/→ page  1-9 page button  [/] jump  home/end  g go to  m modify  d delete page  q quit"))
	return b.String()
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.feeding && m.progress != nil {
		return StatusStyle.Render(fmt.Sprintf("Loading batch %d/%d (%.0f%%)",
			m.progress.ProcessedBatches, m.progress.TotalBatches, m.progress.PercentComplete))
	}
	if m.status != "" {
		return StatusStyle.Render(m.status)
	}
	return ""
}

// FeedSink returns an ingest sink that delivers each batch to a running program.
func FeedSink(send func(tea.Msg)) ingest.Sink {
	return func(_ context.Context, batch []dataset.Record, _ int) error {
		send(RecordsAppendedMsg{Rows: batch})
		return nil
	}
}

// FeedProgress returns a progress callback that forwards snapshots to a running program.
func FeedProgress(send func(tea.Msg)) ingest.ProgressCallback {
	return func(s ingest.ProgressSnapshot) {
		send(FeedProgressMsg{Snapshot: s})
	}
}
