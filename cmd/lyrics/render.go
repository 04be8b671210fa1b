package main

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	strongStyle  = lipgloss.NewStyle().Bold(true)
	loadingStyle = lipgloss.NewStyle().Faint(true)
	alertStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#e53935")).
			Padding(0, 2)
)

// terminalView renders the page surfaces on a terminal. Lyrics go to out,
// everything else to errOut.
type terminalView struct {
	out    io.Writer
	errOut io.Writer
}

func newTerminalView(out, errOut io.Writer) *terminalView {
	return &terminalView{out: out, errOut: errOut}
}

func (v *terminalView) SetLoading(loading bool) {
	if loading {
		fmt.Fprintln(v.errOut, loadingStyle.Render("Generating lyrics..."))
	}
}

func (v *terminalView) ShowAlert(message string) {
	fmt.Fprintln(v.errOut, alertStyle.Render(message))
}

func (v *terminalView) HideAlert() {}

func (v *terminalView) ShowResult(lyricsHTML string) {
	fmt.Fprintln(v.out, renderLyrics(lyricsHTML))
}

// renderLyrics turns the <br>/<strong> markup produced by
// prompt.FormatLyrics back into terminal text.
func renderLyrics(lyricsHTML string) string {
	lines := strings.Split(lyricsHTML, "<br>")
	for i, line := range lines {
		if inner, ok := strings.CutPrefix(line, "<strong>"); ok {
			inner = strings.TrimSuffix(inner, "</strong>")
			lines[i] = strongStyle.Render(html.UnescapeString(inner))
			continue
		}
		lines[i] = html.UnescapeString(line)
	}
	return strings.Join(lines, "\n")
}
