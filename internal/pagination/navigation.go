package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a relative navigation request from the presentation layer.
type Action int

// Navigation actions.
const (
	ActionPrev Action = iota
	ActionNext
	ActionQuickPrev
	ActionQuickNext
	ActionFirst
	ActionLast
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionQuickPrev:
		return "quick_prev"
	case ActionQuickNext:
		return "quick_next"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Target resolves a navigation action against s. The boolean is false when the action
// is disabled in s (prev on the first page, next on the last page); the returned page is
// then the current page. Quick jumps move by the body button count and are clamped.
func Target(s State, a Action) (int, bool) {
	switch a {
	case ActionPrev:
		if !s.PrevEnabled {
			return s.CurrentPage, false
		}
		return s.CurrentPage - 1, true
	case ActionNext:
		if !s.NextEnabled {
			return s.CurrentPage, false
		}
		return s.CurrentPage + 1, true
	case ActionQuickPrev:
		return ClampPage(s.CurrentPage-s.BodyButtonCount(), s.TotalPages), true
	case ActionQuickNext:
		return ClampPage(s.CurrentPage+s.BodyButtonCount(), s.TotalPages), true
	case ActionFirst:
		return FirstPage, true
	case ActionLast:
		return s.TotalPages, true
	default:
		return s.CurrentPage, false
	}
}

// ParsePage parses typed go-to-page input. Surrounding whitespace is ignored. The result
// is not range-checked; callers clamp it like any other page request.
func ParsePage(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	page, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageInput, input)
	}
	return page, nil
}
