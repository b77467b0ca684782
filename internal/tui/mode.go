package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a table is presented.
type OutputMode int

const (
	// OutputModePlain writes tab-aligned text with no color.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a single lipgloss-styled render.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode for stdout. plain forces plain output; noColor forces plain
// unless forceColor is set, in which case output is styled but never interactive.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, term.IsTerminal(int(os.Stdout.Fd())), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, isTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain {
		return OutputModePlain
	}
	if forceColor {
		return OutputModeStyled
	}
	if noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if !isTTY {
		return OutputModePlain
	}
	if _, ok := lookupEnv("CI"); ok {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
