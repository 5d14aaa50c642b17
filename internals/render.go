package internals

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// fixed ANSI profile, the output does not depend on stdout being a terminal
var renderer = newRenderer()

var (
	locationStyle = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	levelStyle    = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// Render formats the diagnostic as "file:row:col: ERROR: message". When
// color is set the location and level are styled for a terminal.
func (d Diagnostic) Render(fileName string, color bool) string {
	location := fmt.Sprintf("%s:%d:%d:", fileName, d.Pos.Row, d.Pos.Col)
	level := "ERROR:"

	if color {
		location = locationStyle.Render(location)
		level = levelStyle.Render(level)
	}

	return fmt.Sprintf("%s %s %s", location, level, d.Message)
}

// RenderAll renders every diagnostic on its own line.
func RenderAll(diags []Diagnostic, fileName string, color bool) string {
	var out strings.Builder
	for _, d := range diags {
		out.WriteString(d.Render(fileName, color))
		out.WriteString("\n")
	}
	return out.String()
}
