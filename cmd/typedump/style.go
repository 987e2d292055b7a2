package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type styles struct {
	errorStyle lipgloss.Style
	usageStyle lipgloss.Style
}

// newStyles creates the message styles for w. In auto mode colors are
// used only when w is a terminal.
func newStyles(w io.Writer, mode string) styles {
	r := lipgloss.NewRenderer(w)
	if useColor(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		errorStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		usageStyle: r.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
