package pagination

import "slices"

// fixedButtonSlots is the number of fixed end buttons (first page and last page).
const fixedButtonSlots = 2

// State is the derived page-selector view. It is recomputed from scratch on every
// data mutation and page change and is never patched in place.
type State struct {
	TotalRecords      int `json:"total_records"       yaml:"total_records"`
	PageSize          int `json:"page_size"           yaml:"page_size"`
	MiddleButtonCount int `json:"middle_button_count" yaml:"middle_button_count"`
	TotalPages        int `json:"total_pages"         yaml:"total_pages"`
	CurrentPage       int `json:"current_page"        yaml:"current_page"`

	// VisibleButtonCount is min(TotalPages, MiddleButtonCount) plus the two fixed end slots.
	VisibleButtonCount int `json:"visible_button_count" yaml:"visible_button_count"`

	ShowPrevEllipsis bool `json:"show_prev_ellipsis" yaml:"show_prev_ellipsis"`
	ShowNextEllipsis bool `json:"show_next_ellipsis" yaml:"show_next_ellipsis"`
	ShowFirst        bool `json:"show_first"         yaml:"show_first"`
	ShowLast         bool `json:"show_last"          yaml:"show_last"`
	PrevEnabled      bool `json:"prev_enabled"       yaml:"prev_enabled"`
	NextEnabled      bool `json:"next_enabled"       yaml:"next_enabled"`

	// Pages is the window of body page numbers, VisibleButtonCount-2 entries long.
	Pages []int `json:"pages" yaml:"pages"`
}

// BodyButtonCount returns the number of body buttons between the fixed end slots.
func (s State) BodyButtonCount() int {
	return s.VisibleButtonCount - fixedButtonSlots
}

// Clone returns a copy of s whose Pages slice is not shared.
func (s State) Clone() State {
	s.Pages = slices.Clone(s.Pages)
	return s
}

// Compute derives the page-selector state for totalRecords records under cfg with the
// requested page. Out-of-range requests are clamped, never rejected. cfg is assumed
// valid (see Config.Validate).
func Compute(cfg Config, totalRecords, requestedPage int) State {
	totalPages := TotalPages(totalRecords, cfg.PageSize)
	current := ClampPage(requestedPage, totalPages)
	visible := min(totalPages, cfg.MiddleButtonCount) + fixedButtonSlots
	half := (visible - 1) / 2
	body := visible - fixedButtonSlots

	showPrev := totalPages > visible && current > visible-half

	// When the body already reaches the page before the last one there is no gap to
	// jump over on the right.
	notLastToEnd := body != totalPages-1
	showNext := totalPages > cfg.MiddleButtonCount && notLastToEnd && current < totalPages-half

	s := State{
		TotalRecords:       max(totalRecords, 0),
		PageSize:           cfg.PageSize,
		MiddleButtonCount:  cfg.MiddleButtonCount,
		TotalPages:         totalPages,
		CurrentPage:        current,
		VisibleButtonCount: visible,
		ShowPrevEllipsis:   showPrev,
		ShowNextEllipsis:   showNext,
		ShowFirst:          showPrev || !notLastToEnd,
		ShowLast:           showNext,
		PrevEnabled:        current != FirstPage,
		NextEnabled:        current != totalPages,
	}
	s.Pages = window(s, cfg.MiddleButtonCount)
	return s
}

// window lists the body page numbers for the ellipsis combination in s.
func window(s State, middle int) []int {
	body := s.BodyButtonCount()
	pages := make([]int, 0, body)

	switch {
	case s.ShowPrevEllipsis && !s.ShowNextEllipsis:
		// Trailing run; the last page is part of the body since its own button is hidden.
		for p := s.TotalPages - body + 1; p <= s.TotalPages; p++ {
			pages = append(pages, p)
		}

	case !s.ShowPrevEllipsis && s.ShowNextEllipsis:
		// Leading run; the first page is part of the body since its own button is hidden.
		for p := 1; p <= body; p++ {
			pages = append(pages, p)
		}

	case s.ShowPrevEllipsis && s.ShowNextEllipsis:
		offset := s.VisibleButtonCount/2 - 1
		for p := s.CurrentPage - offset; p <= s.CurrentPage+offset && len(pages) < body; p++ {
			pages = append(pages, p)
		}

	default:
		// With few enough pages every page fits in the body, numbered from 1.
		shift := 0
		if s.TotalPages <= middle {
			shift = 1
		}
		for i := fixedButtonSlots; i < s.VisibleButtonCount; i++ {
			pages = append(pages, i-shift)
		}
	}

	return pages
}
