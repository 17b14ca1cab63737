// Package cli prints mazes to a text terminal (or any io.Writer).
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/parameters"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

// DefaultWallColor is the ANSI color used for the walls, if color is enabled.
const DefaultWallColor = "12"

// UI prints mazes to an io.Writer.
type UI struct {
	w                    io.Writer
	color, center, title bool
	wallStyle            lipgloss.Style
	titleStyle           lipgloss.Style
}

// New creates a UI that writes to w, configured by a style string of comma-separated options:
//
//   - color[=true|false]: color the walls of the maze. Default is false.
//   - fg=<color>: lipgloss color of the walls (an ANSI number like "12" or "#RRGGBB"), implies color.
//   - center[=true|false]: center the maze on the terminal, if w is a terminal. Default is false.
//   - title[=true|false]: print a title line before each maze. Default is false.
func New(w io.Writer, style string) (*UI, error) {
	ui := &UI{w: w}
	params := parameters.NewFromConfigString(style)
	var err error
	if ui.color, err = parameters.PopParamOr(params, "color", false); err != nil {
		return nil, err
	}
	fg, err := parameters.PopParamOr(params, "fg", "")
	if err != nil {
		return nil, err
	}
	if fg != "" {
		ui.color = true
	} else {
		fg = DefaultWallColor
	}
	if ui.center, err = parameters.PopParamOr(params, "center", false); err != nil {
		return nil, err
	}
	if ui.title, err = parameters.PopParamOr(params, "title", false); err != nil {
		return nil, err
	}
	if err = parameters.CheckAllUsed(params, style); err != nil {
		return nil, errors.WithMessage(err, "invalid UI style")
	}

	renderer := lipgloss.NewRenderer(w)
	ui.wallStyle = renderer.NewStyle()
	if ui.color {
		ui.wallStyle = ui.wallStyle.Foreground(lipgloss.Color(fg))
	}
	ui.titleStyle = renderer.NewStyle().Bold(true)
	return ui, nil
}

// terminalWidth returns the width of the terminal w is connected to, or 0 if it is not a terminal.
func (ui *UI) terminalWidth() int {
	f, ok := ui.w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printBlock prints the lines, centered if configured so.
func (ui *UI) printBlock(lines []string) error {
	indent := 0
	if ui.center {
		blockWidth := 0
		for _, line := range lines {
			blockWidth = max(blockWidth, lipgloss.Width(line))
		}
		indent = max(0, (ui.terminalWidth()-blockWidth)/2)
	}
	margin := strings.Repeat(" ", indent)
	for _, line := range lines {
		if _, err := fmt.Fprintf(ui.w, "%s%s\n", margin, line); err != nil {
			return errors.Wrap(err, "failed to print maze")
		}
	}
	return nil
}

// PrintMaze prints the maze g, preceded by title if titles are enabled.
func (ui *UI) PrintMaze(g *grid.Grid, title string) error {
	if !ui.color && !ui.center {
		// Plain text: stream it directly.
		if err := ui.printTitle(title); err != nil {
			return err
		}
		_, err := g.WriteTo(ui.w)
		return err
	}
	lines := strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n")
	for ii, line := range lines {
		lines[ii] = ui.wallStyle.Render(line)
	}
	if err := ui.printTitle(title); err != nil {
		return err
	}
	return ui.printBlock(lines)
}

func (ui *UI) printTitle(title string) error {
	if !ui.title || title == "" {
		return nil
	}
	return ui.printBlock([]string{ui.titleStyle.Render(title)})
}

// Title returns the default title for a maze.
func Title(index int, g *grid.Grid, seed uint64) string {
	return fmt.Sprintf("Maze #%d (%dx%d, seed=%d)", index, g.Width(), g.Height(), seed)
}
