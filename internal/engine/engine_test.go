package engine

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/pagination"
)

func makeRecords(n int) []dataset.Record {
	out := make([]dataset.Record, n)
	for i := range out {
		out[i] = dataset.Record{fmt.Sprintf("r%d", i), "x"}
	}
	return out
}

func newEngine(t *testing.T, n, pageSize, middle int) *Engine {
	t.Helper()
	e, err := New(makeRecords(n), pagination.Config{PageSize: pageSize, MiddleButtonCount: middle})
	require.NoError(t, err)
	return e
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, p)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("starts on first page without notifying", func(t *testing.T) {
		e := newEngine(t, 60, 25, 10)
		assert.Equal(t, 1, e.CurrentPage())
		assert.Equal(t, 3, e.PageCount())
		assert.Equal(t, 60, e.Total())
		assert.Len(t, e.CurrentPageData(), 25)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(nil, pagination.Config{PageSize: 0, MiddleButtonCount: 10})
		require.ErrorIs(t, err, pagination.ErrInvalidPageSize)

		_, err = New(nil, pagination.Config{PageSize: 10, MiddleButtonCount: 0})
		require.ErrorIs(t, err, pagination.ErrInvalidMiddleButtonCount)
	})

	t.Run("copies initial records", func(t *testing.T) {
		initial := makeRecords(2)
		e, err := New(initial, pagination.DefaultConfig())
		require.NoError(t, err)
		initial[0][0] = "mutated"
		assert.Equal(t, "r0", e.Data()[0][0])
	})

	t.Run("empty data", func(t *testing.T) {
		e := newEngine(t, 0, 25, 10)
		assert.Equal(t, 0, e.Total())
		assert.Equal(t, 1, e.PageCount())
		assert.Equal(t, 1, e.CurrentPage())
		assert.Empty(t, e.CurrentPageData())

		s := e.State()
		assert.False(t, s.PrevEnabled)
		assert.False(t, s.NextEnabled)
		assert.False(t, s.ShowPrevEllipsis)
		assert.False(t, s.ShowNextEllipsis)
	})
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{500, 25, 20},
		{501, 25, 21},
		{7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.size), func(t *testing.T) {
			e := newEngine(t, tt.total, tt.size, 10)
			assert.Equal(t, tt.want, e.PageCount())
		})
	}
}

func TestSetCurrentPage(t *testing.T) {
	t.Run("window at both ends of 20 pages", func(t *testing.T) {
		e := newEngine(t, 500, 25, 10)

		s := e.SetCurrentPage(1)
		assert.Equal(t, pageRange(1, 10), s.Pages)
		assert.False(t, s.ShowPrevEllipsis)
		assert.True(t, s.ShowNextEllipsis)
		assert.False(t, s.PrevEnabled)
		assert.True(t, s.NextEnabled)

		s = e.SetCurrentPage(20)
		assert.Equal(t, pageRange(11, 20), s.Pages)
		assert.True(t, s.ShowPrevEllipsis)
		assert.False(t, s.ShowNextEllipsis)
		assert.True(t, s.PrevEnabled)
		assert.False(t, s.NextEnabled)
	})

	t.Run("clamps out of range", func(t *testing.T) {
		e := newEngine(t, 500, 25, 10)
		assert.Equal(t, 1, e.SetCurrentPage(-5).CurrentPage)
		assert.Equal(t, 20, e.SetCurrentPage(1_000_000_000).CurrentPage)
		assert.Equal(t, 1, e.SetCurrentPage(0).CurrentPage)
	})

	t.Run("idempotent", func(t *testing.T) {
		e := newEngine(t, 500, 25, 10)
		first := e.SetCurrentPage(8)
		second := e.SetCurrentPage(8)
		assert.Equal(t, first, second)
	})

	t.Run("current page data", func(t *testing.T) {
		e := newEngine(t, 60, 25, 10)
		e.SetCurrentPage(3)
		rows := e.CurrentPageData()
		require.Len(t, rows, 10)
		assert.Equal(t, "r50", rows[0][0])
		assert.Equal(t, 50, e.PageOffset())
	})
}

func TestUpdateData(t *testing.T) {
	t.Run("append is associative", func(t *testing.T) {
		a := makeRecords(3)
		b := []dataset.Record{{"b0"}, {"b1"}}

		split := newEngine(t, 0, 2, 10)
		require.NoError(t, split.UpdateData(a, Append, 0))
		require.NoError(t, split.UpdateData(b, Append, 0))

		joined := newEngine(t, 0, 2, 10)
		require.NoError(t, joined.UpdateData(append(append([]dataset.Record{}, a...), b...), Append, 0))

		assert.Equal(t, joined.Data(), split.Data())
		assert.Equal(t, joined.State(), split.State())
	})

	t.Run("modify overwrites then appends", func(t *testing.T) {
		e := newEngine(t, 3, 25, 10)
		require.NoError(t, e.UpdateData([]dataset.Record{{"m2"}, {"m3"}}, Modify, 2))

		data := e.Data()
		require.Len(t, data, 4)
		assert.Equal(t, dataset.Record{"r1", "x"}, data[1])
		assert.Equal(t, dataset.Record{"m2"}, data[2])
		assert.Equal(t, dataset.Record{"m3"}, data[3])
	})

	t.Run("modify negative index leaves data unchanged", func(t *testing.T) {
		e := newEngine(t, 3, 25, 10)
		before := e.Data()

		var calls int
		e.OnCurrentPageChanged(func(int) { calls++ })

		err := e.UpdateData([]dataset.Record{{"z"}}, Modify, -1)
		require.ErrorIs(t, err, dataset.ErrInvalidArgument)
		assert.Equal(t, before, e.Data())
		assert.Zero(t, calls)
	})

	t.Run("delete removes every equal record", func(t *testing.T) {
		e, err := New([]dataset.Record{{"a"}, {"b"}, {"a"}, {"c"}}, pagination.DefaultConfig())
		require.NoError(t, err)

		require.NoError(t, e.UpdateData([]dataset.Record{{"a"}, {"missing"}}, Delete, 0))
		assert.Equal(t, []dataset.Record{{"b"}, {"c"}}, e.Data())
	})

	t.Run("delete all data", func(t *testing.T) {
		e := newEngine(t, 30, 10, 10)
		e.SetCurrentPage(3)
		require.NoError(t, e.UpdateData(e.Data(), Delete, 0))

		assert.Equal(t, 0, e.Total())
		assert.Equal(t, 1, e.PageCount())
		assert.Equal(t, 1, e.CurrentPage())
	})

	t.Run("current page clamps after shrink", func(t *testing.T) {
		e := newEngine(t, 500, 25, 10)
		e.SetCurrentPage(20)
		require.NoError(t, e.UpdateData(e.CurrentPageData(), Delete, 0))

		assert.Equal(t, 19, e.PageCount())
		assert.Equal(t, 19, e.CurrentPage())
	})

	t.Run("current page kept after growth", func(t *testing.T) {
		e := newEngine(t, 100, 25, 10)
		e.SetCurrentPage(3)
		require.NoError(t, e.UpdateData(makeRecords(100), Append, 0))
		assert.Equal(t, 3, e.CurrentPage())
		assert.Equal(t, 8, e.PageCount())
	})

	t.Run("unknown operation", func(t *testing.T) {
		e := newEngine(t, 3, 25, 10)
		err := e.UpdateData(nil, Operation(42), 0)
		require.ErrorIs(t, err, dataset.ErrInvalidArgument)
		assert.Equal(t, 3, e.Total())
	})
}

func TestNotifications(t *testing.T) {
	e := newEngine(t, 500, 25, 10)

	var pages []int
	var changes []PageChange
	e.OnCurrentPageChanged(func(p int) { pages = append(pages, p) })
	e.OnPageChange(func(c PageChange) { changes = append(changes, c) })
	e.OnPageChange(nil)

	e.SetCurrentPage(4)
	require.NoError(t, e.UpdateData(makeRecords(10), Append, 0))
	e.SetCurrentPage(99)

	assert.Equal(t, []int{4, 4, 21}, pages)
	require.Len(t, changes, 3)
	assert.Equal(t, ChangeNavigation, changes[0].Kind)
	assert.Equal(t, ChangeData, changes[1].Kind)
	assert.Equal(t, 21, changes[2].State.TotalPages)

	// Snapshots handed to observers are detached from engine state.
	changes[2].State.Pages[0] = -1
	assert.NotEqual(t, -1, e.State().Pages[0])
}

func TestNavigate(t *testing.T) {
	e := newEngine(t, 500, 25, 10)

	_, moved := e.Navigate(pagination.ActionPrev)
	assert.False(t, moved, "prev disabled on first page")

	s, moved := e.Navigate(pagination.ActionNext)
	assert.True(t, moved)
	assert.Equal(t, 2, s.CurrentPage)

	s, _ = e.Navigate(pagination.ActionQuickNext)
	assert.Equal(t, 12, s.CurrentPage)

	s, _ = e.Navigate(pagination.ActionQuickNext)
	assert.Equal(t, 20, s.CurrentPage)

	_, moved = e.Navigate(pagination.ActionNext)
	assert.False(t, moved, "next disabled on last page")

	s, _ = e.Navigate(pagination.ActionQuickPrev)
	assert.Equal(t, 10, s.CurrentPage)

	s, _ = e.Navigate(pagination.ActionFirst)
	assert.Equal(t, 1, s.CurrentPage)

	s, _ = e.Navigate(pagination.ActionLast)
	assert.Equal(t, 20, s.CurrentPage)
}

func TestGoTo(t *testing.T) {
	e := newEngine(t, 500, 25, 10)

	s, err := e.GoTo(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, s.CurrentPage)

	s, err = e.GoTo("400")
	require.NoError(t, err)
	assert.Equal(t, 20, s.CurrentPage)

	s, err = e.GoTo("seven")
	require.ErrorIs(t, err, pagination.ErrInvalidPageInput)
	assert.Equal(t, 20, s.CurrentPage)
}

func TestActivate(t *testing.T) {
	e := newEngine(t, 500, 25, 10)

	buttons := e.Buttons()
	prev := buttons[0]
	require.Equal(t, pagination.RolePrev, prev.Role)
	_, ok := e.Activate(prev)
	assert.False(t, ok)

	var last pagination.Button
	for _, b := range buttons {
		if b.Role == pagination.RoleLast {
			last = b
		}
	}
	s, ok := e.Activate(last)
	require.True(t, ok)
	assert.Equal(t, 20, s.CurrentPage)

	hidden := pagination.Button{Role: pagination.RolePage, Page: 3, Visible: false, Enabled: true}
	_, ok = e.Activate(hidden)
	assert.False(t, ok)
	assert.Equal(t, 20, e.CurrentPage())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	e, err := New(makeRecords(5), pagination.DefaultConfig(), WithLogger(logger))
	require.NoError(t, err)

	require.ErrorIs(t, e.UpdateData(makeRecords(1), Modify, -3), dataset.ErrInvalidArgument)
	assert.Contains(t, buf.String(), "modify rejected")

	e.SetCurrentPage(1)
	assert.Contains(t, buf.String(), "page state recomputed")
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "append", Append.String())
	assert.Equal(t, "modify", Modify.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "operation(9)", Operation(9).String())
	assert.Equal(t, "data", ChangeData.String())
	assert.Equal(t, "navigation", ChangeNavigation.String())
}
