package pagination

// Meta is the export form of a State, as printed by `pagetable state`.
type Meta struct {
	CurrentPage      int      `json:"current_page"       yaml:"current_page"`
	PageSize         int      `json:"page_size"          yaml:"page_size"`
	TotalPages       int      `json:"total_pages"        yaml:"total_pages"`
	TotalItems       int      `json:"total_items"        yaml:"total_items"`
	HasPrevious      bool     `json:"has_previous"       yaml:"has_previous"`
	HasNext          bool     `json:"has_next"           yaml:"has_next"`
	Window           []int    `json:"window"             yaml:"window"`
	ShowPrevEllipsis bool     `json:"show_prev_ellipsis" yaml:"show_prev_ellipsis"`
	ShowNextEllipsis bool     `json:"show_next_ellipsis" yaml:"show_next_ellipsis"`
	Buttons          []Button `json:"buttons,omitempty"  yaml:"buttons,omitempty"`
}

// NewMeta builds export metadata from s. Visible buttons are included when withButtons is set.
func NewMeta(s State, withButtons bool) Meta {
	meta := Meta{
		CurrentPage:      s.CurrentPage,
		PageSize:         s.PageSize,
		TotalPages:       s.TotalPages,
		TotalItems:       s.TotalRecords,
		HasPrevious:      s.PrevEnabled,
		HasNext:          s.NextEnabled,
		Window:           s.Clone().Pages,
		ShowPrevEllipsis: s.ShowPrevEllipsis,
		ShowNextEllipsis: s.ShowNextEllipsis,
	}
	if withButtons {
		meta.Buttons = VisibleButtons(s)
	}
	return meta
}
