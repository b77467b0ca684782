package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(buttons []Button) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.Label
	}
	return out
}

func TestButtons_Layout(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		total      int
		page       int
		wantLabels []string
	}{
		{
			name:  "leading window",
			total: 500, page: 1,
			wantLabels: []string{"<", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "...", "20", ">"},
		},
		{
			name:  "centered window",
			total: 500, page: 8,
			wantLabels: []string{
				"<", "1", "...", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "...", "20", ">",
			},
		},
		{
			name:  "trailing window",
			total: 500, page: 20,
			wantLabels: []string{"<", "1", "...", "11", "12", "13", "14", "15", "16", "17", "18", "19", "20", ">"},
		},
		{
			name:       "single page",
			total:      3, page: 1,
			wantLabels: []string{"<", "1", ">"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(cfg, tt.total, tt.page)
			assert.Equal(t, tt.wantLabels, labels(VisibleButtons(s)))
		})
	}
}

func TestButtons_StableShape(t *testing.T) {
	cfg := DefaultConfig()
	for page := 1; page <= 20; page++ {
		s := Compute(cfg, 500, page)
		all := Buttons(s)
		require.Len(t, all, 10+6)
		assert.Equal(t, RolePrev, all[0].Role)
		assert.Equal(t, RoleFirst, all[1].Role)
		assert.Equal(t, RoleQuickPrev, all[2].Role)
		assert.Equal(t, RoleQuickNext, all[len(all)-3].Role)
		assert.Equal(t, RoleLast, all[len(all)-2].Role)
		assert.Equal(t, RoleNext, all[len(all)-1].Role)
	}
}

func TestButtons_CurrentAndTargets(t *testing.T) {
	s := Compute(DefaultConfig(), 500, 8)
	buttons := VisibleButtons(s)

	var current []Button
	for _, b := range buttons {
		if b.Current {
			current = append(current, b)
		}
	}
	require.Len(t, current, 1)
	assert.Equal(t, 8, current[0].Page)
	assert.Equal(t, RolePage, current[0].Role)

	assert.Equal(t, 7, buttons[0].Page, "prev target")
	assert.Equal(t, 1, buttons[2].Page, "left ellipsis target clamps")
	assert.Equal(t, 18, buttons[len(buttons)-3].Page, "right ellipsis target")
	assert.Equal(t, 9, buttons[len(buttons)-1].Page, "next target")
}

func TestButtons_DisabledNavigation(t *testing.T) {
	s := Compute(DefaultConfig(), 500, 1)
	buttons := Buttons(s)

	assert.False(t, buttons[0].Enabled)
	assert.Equal(t, 1, buttons[0].Page)
	assert.True(t, buttons[len(buttons)-1].Enabled)

	s = Compute(DefaultConfig(), 500, 20)
	buttons = Buttons(s)
	assert.True(t, buttons[0].Enabled)
	assert.False(t, buttons[len(buttons)-1].Enabled)
}

func TestNewMeta(t *testing.T) {
	s := Compute(DefaultConfig(), 60, 2)
	meta := NewMeta(s, false)

	assert.Equal(t, Meta{
		CurrentPage: 2,
		PageSize:    25,
		TotalPages:  3,
		TotalItems:  60,
		HasPrevious: true,
		HasNext:     true,
		Window:      []int{1, 2, 3},
	}, meta)

	withButtons := NewMeta(s, true)
	assert.Equal(t, []string{"<", "1", "2", "3", ">"}, labels(withButtons.Buttons))
}
