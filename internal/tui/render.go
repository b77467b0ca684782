package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagetable/internal/dataset"
	"github.com/rshade/pagetable/internal/pagination"
)

// Placeholder is shown for empty cells and cells holding "nan".
const Placeholder = "--"

const tabPadding = 2

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// DisplayCell returns the text shown for a raw cell value.
func DisplayCell(v string) string {
	t := strings.TrimSpace(v)
	if t == "" || strings.EqualFold(t, "nan") {
		return Placeholder
	}
	return v
}

// DisplayRow pads or truncates r to width columns and applies DisplayCell.
func DisplayRow(r dataset.Record, width int) []string {
	out := make([]string, width)
	for i := range out {
		if i < len(r) {
			out[i] = DisplayCell(r[i])
		} else {
			out[i] = Placeholder
		}
	}
	return out
}

// TotalLabel returns "Total N" with thousand separators.
func TotalLabel(total int) string {
	return printer.Sprintf("Total %d", total)
}

// RenderNavBar renders the visible control row, e.g. "< 1 ... 4 5 [6] 7 ... 20 >".
// Plain output brackets the current page; styled output highlights it instead.
func RenderNavBar(s pagination.State, styled bool) string {
	buttons := pagination.VisibleButtons(s)
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, renderButton(b, styled))
	}
	if styled {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, " ")
}

func renderButton(b pagination.Button, styled bool) string {
	if !styled {
		if b.Current {
			return "[" + b.Label + "]"
		}
		return b.Label
	}

	switch {
	case b.Current:
		return CurrentPageStyle.Render(b.Label)
	case !b.Enabled:
		return DisabledButtonStyle.Render(b.Label)
	case b.Role == pagination.RoleQuickPrev || b.Role == pagination.RoleQuickNext:
		return EllipsisStyle.Render(b.Label)
	default:
		return PageButtonStyle.Render(b.Label)
	}
}

// RenderFooter renders the nav bar followed by the total label.
func RenderFooter(s pagination.State, styled bool) string {
	label := TotalLabel(s.TotalRecords)
	if styled {
		return RenderNavBar(s, true) + "  " + TotalLabelStyle.Render(label)
	}
	return RenderNavBar(s, false) + "  " + label
}

// RenderPlain writes one page of rows as tab-aligned text followed by the footer.
func RenderPlain(w io.Writer, header []string, rows []dataset.Record, s pagination.State) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(DisplayRow(r, len(header)), "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", RenderFooter(s, false))
	return err
}

// RenderStyled returns one page rendered with lipgloss styles for a non-interactive terminal.
func RenderStyled(header []string, rows []dataset.Record, s pagination.State) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, tabPadding, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(DisplayRow(r, len(header)), "\t"))
	}
	_ = tw.Flush()

	lines := strings.SplitN(b.String(), "\n", 2) //nolint:mnd // Header line and the rest.
	var out strings.Builder
	out.WriteString(HeaderStyle.Render(lines[0]))
	out.WriteString("\n")
	if len(lines) > 1 {
		out.WriteString(lines[1])
	}
	out.WriteString("\n")
	out.WriteString(RenderFooter(s, true))
	out.WriteString("\n")
	return out.String()
}
