package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleSet holds the lipgloss styles used across commands.
type StyleSet struct {
	Header  lipgloss.Style // file or column headers
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// newStyleSet builds the styles bound to the output writer. A TTY gets
// ANSI colors; everything else renders plain so piped output stays
// free of escape codes.
func newStyleSet(w io.Writer, isTTY bool) *StyleSet {
	profile := termenv.Ascii
	if isTTY {
		profile = termenv.ANSI
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return &StyleSet{
		Header:  renderer.NewStyle().Bold(true),
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("1")), // red
		Warning: renderer.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Success: renderer.NewStyle().Foreground(lipgloss.Color("2")), // green
		Muted:   renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    renderer.NewStyle().Bold(true),
	}
}
