package model

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clearScreen homes the cursor and erases the display.
	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer paints a grid from its zero-copy View.
// It reads nothing but the view bytes and the grid dimensions.
type TerminalRenderer struct {
	AliveStyle lipgloss.Style
	DeadStyle  lipgloss.Style
	AliveGlyph string
	DeadGlyph  string
}

// NewTerminalRenderer returns a renderer drawing each cell two columns wide.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		AliveStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		DeadStyle:  lipgloss.NewStyle(),
		AliveGlyph: gridPosBlock,
		DeadGlyph:  gridPosEmpty,
	}
}

// CellWidth is the number of terminal columns a single cell occupies.
func (r *TerminalRenderer) CellWidth() int {
	return lipgloss.Width(r.AliveGlyph)
}

// Render draws height rows of width cells from v. Runs of equal cells in a
// row are styled together.
func (r *TerminalRenderer) Render(v View, height, width int) (string, error) {
	if err := v.Check(); err != nil {
		return "", errors.Wrap(err, "[TerminalRenderer.Render]")
	}
	if v.Len() != byteLen(height, width) {
		return "", errors.Errorf("[TerminalRenderer.Render] view holds %d bytes, %dx%d needs %d",
			v.Len(), height, width, byteLen(height, width))
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		start := 0
		for col := 1; col <= width; col++ {
			if col < width && v.Alive(row*width+col) == v.Alive(row*width+start) {
				continue
			}
			b.WriteString(r.run(v.Alive(row*width+start), col-start))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (r *TerminalRenderer) run(alive bool, n int) string {
	if alive {
		return r.AliveStyle.Render(strings.Repeat(r.AliveGlyph, n))
	}
	return r.DeadStyle.Render(strings.Repeat(r.DeadGlyph, n))
}

// Display renders the grid's current generation to w
func (r *TerminalRenderer) Display(w io.Writer, g *Grid) error {
	height, width := g.Dimensions()
	out, err := r.Render(g.View(), height, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return errors.Wrap(err, "[TerminalRenderer.Display]")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen)
	return errors.Wrap(err, "[TerminalRenderer.Clear]")
}
