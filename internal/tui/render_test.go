package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/pagination"
)

func TestDisplayCell(t *testing.T) {
	tests := map[string]string{
		"":      Placeholder,
		"   ":   Placeholder,
		"nan":   Placeholder,
		"NaN":   Placeholder,
		"12.5":  "12.5",
		"nano":  "nano",
		" pad ": " pad ",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayCell(in), "input %q", in)
	}
}

func TestDisplayRow(t *testing.T) {
	assert.Equal(t, []string{"a", Placeholder, Placeholder}, DisplayRow(dataset.Record{"a", "nan"}, 3))
	assert.Equal(t, []string{"a"}, DisplayRow(dataset.Record{"a", "b"}, 1))
}

func TestTotalLabel(t *testing.T) {
	assert.Equal(t, "Total 0", TotalLabel(0))
	assert.Equal(t, "Total 1,234,567", TotalLabel(1234567))
}

func TestRenderNavBar(t *testing.T) {
	cfg := pagination.Config{PageSize: 25, MiddleButtonCount: 10}

	tests := []struct {
		name string
		page int
		want string
	}{
		{"first page", 1, "< [1] 2 3 4 5 6 7 8 9 10 ... 20 >"},
		{"middle page", 8, "< 1 ... 3 4 5 6 7 [8] 9 10 11 12 ... 20 >"},
		{"last page", 20, "< 1 ... 11 12 13 14 15 16 17 18 19 [20] >"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pagination.Compute(cfg, 500, tt.page)
			assert.Equal(t, tt.want, RenderNavBar(s, false))
		})
	}

	t.Run("single page", func(t *testing.T) {
		s := pagination.Compute(cfg, 3, 1)
		assert.Equal(t, "< [1] >", RenderNavBar(s, false))
	})
}

func TestRenderPlain(t *testing.T) {
	s := pagination.Compute(pagination.Config{PageSize: 2, MiddleButtonCount: 10}, 3, 1)
	rows := []dataset.Record{{"web", "12"}, {"db", ""}}

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, []string{"Name", "Cost"}, rows, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Name  Cost", lines[0])
	assert.Equal(t, "web   12", lines[1])
	assert.Equal(t, "db    --", lines[2])
	assert.Equal(t, "< [1] 2 >  Total 3", lines[4])
}

func TestRenderStyled(t *testing.T) {
	s := pagination.Compute(pagination.DefaultConfig(), 1, 1)
	out := RenderStyled([]string{"Name"}, []dataset.Record{{"web"}}, s)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "Total 1")
}

func TestDetectOutputMode(t *testing.T) {
	env := func(m map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	tests := []struct {
		name                    string
		forceColor, noColor, pl bool
		tty                     bool
		env                     map[string]string
		want                    OutputMode
	}{
		{name: "interactive tty", tty: true, want: OutputModeInteractive},
		{name: "plain flag wins", pl: true, forceColor: true, tty: true, want: OutputModePlain},
		{name: "force color", forceColor: true, want: OutputModeStyled},
		{name: "no color flag", noColor: true, tty: true, want: OutputModePlain},
		{name: "NO_COLOR env", tty: true, env: map[string]string{"NO_COLOR": ""}, want: OutputModePlain},
		{name: "dumb terminal", tty: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "pipe", tty: false, want: OutputModePlain},
		{name: "ci", tty: true, env: map[string]string{"CI": "true"}, want: OutputModeStyled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectOutputMode(tt.forceColor, tt.noColor, tt.pl, tt.tty, env(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "plain", OutputModePlain.String())
}
