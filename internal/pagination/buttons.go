package pagination

import "strconv"

// Role identifies what a page-selector button does.
type Role string

// Button roles, in render order.
const (
	RolePrev      Role = "prev"
	RoleFirst     Role = "first"
	RoleQuickPrev Role = "quick_prev"
	RolePage      Role = "page"
	RoleQuickNext Role = "quick_next"
	RoleLast      Role = "last"
	RoleNext      Role = "next"
)

// Button labels for the non-numeric controls.
const (
	LabelPrev     = "<"
	LabelNext     = ">"
	LabelEllipsis = "..."
)

// Button is a declarative description of one page-selector control.
// Page is the page the control leads to when activated.
type Button struct {
	Role    Role   `json:"role"    yaml:"role"`
	Label   string `json:"label"   yaml:"label"`
	Page    int    `json:"page"    yaml:"page"`
	Visible bool   `json:"visible" yaml:"visible"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Current bool   `json:"current" yaml:"current"`
}

// Buttons lays out the full control row for s: prev, first, left ellipsis, the body
// window, right ellipsis, last, next. Hidden controls are included with Visible unset so
// the row has a stable shape for a given body size.
func Buttons(s State) []Button {
	out := make([]Button, 0, len(s.Pages)+6) //nolint:mnd // Six fixed controls around the body.

	prevTarget, _ := Target(s, ActionPrev)
	out = append(out,
		Button{Role: RolePrev, Label: LabelPrev, Page: prevTarget, Visible: true, Enabled: s.PrevEnabled},
		pageButton(s, RoleFirst, FirstPage, s.ShowFirst),
		ellipsisButton(s, RoleQuickPrev, ActionQuickPrev, s.ShowPrevEllipsis),
	)

	for _, p := range s.Pages {
		out = append(out, pageButton(s, RolePage, p, true))
	}

	nextTarget, _ := Target(s, ActionNext)
	out = append(out,
		ellipsisButton(s, RoleQuickNext, ActionQuickNext, s.ShowNextEllipsis),
		pageButton(s, RoleLast, s.TotalPages, s.ShowLast),
		Button{Role: RoleNext, Label: LabelNext, Page: nextTarget, Visible: true, Enabled: s.NextEnabled},
	)

	return out
}

// VisibleButtons returns only the buttons a presentation layer should draw.
func VisibleButtons(s State) []Button {
	all := Buttons(s)
	out := all[:0]
	for _, b := range all {
		if b.Visible {
			out = append(out, b)
		}
	}
	return out
}

func pageButton(s State, role Role, page int, visible bool) Button {
	return Button{
		Role:    role,
		Label:   strconv.Itoa(page),
		Page:    page,
		Visible: visible,
		Enabled: true,
		Current: visible && page == s.CurrentPage,
	}
}

func ellipsisButton(s State, role Role, action Action, visible bool) Button {
	target, _ := Target(s, action)
	return Button{
		Role:    role,
		Label:   LabelEllipsis,
		Page:    target,
		Visible: visible,
		Enabled: true,
	}
}
