package cli

import (
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var (
	statsLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statsValue = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// Stats summarizes one encode/decode run for --stats reporting.
type Stats struct {
	Direction  string
	InputSize  int
	OutputSize int
	Elapsed    time.Duration
}

// Report writes a one-line styled summary of s to w, or a three-line one
// when w is a terminal narrower than the one-line form.
func (s Stats) Report(w io.Writer) {
	width := terminalWidth(w)
	line := fmt.Sprintf("%s %s  %s %d B -> %d B  %s %s",
		statsLabel.Render("toon"), statsValue.Render(s.Direction),
		statsLabel.Render("size"), s.InputSize, s.OutputSize,
		statsLabel.Render("took"), statsValue.Render(s.Elapsed.String()))
	if width > 0 && len(line) > width {
		fmt.Fprintf(w, "%s %s\n%s %d B -> %d B\n%s %s\n",
			statsLabel.Render("toon"), statsValue.Render(s.Direction),
			statsLabel.Render("size"), s.InputSize, s.OutputSize,
			statsLabel.Render("took"), statsValue.Render(s.Elapsed.String()))
		return
	}
	fmt.Fprintln(w, line)
}

// terminalWidth reports the width of w if it is a terminal, or 0 otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
