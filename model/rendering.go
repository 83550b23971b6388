package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	GlyphDead  = "◻"
	GlyphAlive = "◼"

	clearCmd = "clear"

	ansiReset = "\033[0m"
	// live cell colours by neighbor band
	ansiSparse  = "\033[34m" // < 2, dies of underpopulation
	ansiStable  = "\033[32m" // 2-3, survives
	ansiCrowded = "\033[31m" // > 3, dies of overpopulation
)

// NeighborBand returns the ANSI colour for a live cell with n live neighbors
func NeighborBand(n uint8) string {
	switch {
	case n < 2:
		return ansiSparse
	case n <= 3:
		return ansiStable
	default:
		return ansiCrowded
	}
}

// TextRenderer formats a grid as glyph text, one line per row
type TextRenderer struct{}

// Render returns the rows of cells top-to-bottom, each terminated by a newline
func (TextRenderer) Render(dims Dims, cells []Cell) (string, error) {
	if len(cells) != dims.Area() {
		return "", errors.Wrapf(ErrInvalidGridSize, "[TextRenderer.Render] got %d cells for %dx%d", len(cells), dims.Width, dims.Height)
	}

	var sb strings.Builder
	sb.Grow(dims.Area()*len(GlyphAlive) + dims.Height)
	for row := range dims.Height {
		for _, c := range cells[row*dims.Width : (row+1)*dims.Width] {
			if c == Alive {
				sb.WriteString(GlyphAlive)
			} else {
				sb.WriteString(GlyphDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// RenderBanded is Render with every live glyph coloured by its neighbor band
func (TextRenderer) RenderBanded(dims Dims, cells []Cell, counts NeighborCounts) (string, error) {
	if len(cells) != dims.Area() || len(counts) != dims.Area() {
		return "", errors.Wrapf(ErrInvalidGridSize, "[TextRenderer.RenderBanded] got %d cells and %d counts for %dx%d",
			len(cells), len(counts), dims.Width, dims.Height)
	}

	var sb strings.Builder
	for row := range dims.Height {
		for col := range dims.Width {
			idx := row*dims.Width + col
			if cells[idx] != Alive {
				sb.WriteString(GlyphDead)
				continue
			}
			sb.WriteString(NeighborBand(counts[idx]))
			sb.WriteString(GlyphAlive)
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// TerminalRenderer writes frames to a terminal. With Color set, live cells
// are shaded by neighbor band when counts are supplied to Display.
type TerminalRenderer struct {
	Out   io.Writer
	Color bool
	text  TextRenderer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders one frame of cells to the terminal. counts may be nil
// when colouring is off.
func (r *TerminalRenderer) Display(dims Dims, cells []Cell, counts NeighborCounts) error {
	var (
		frame string
		err   error
	)
	if r.Color && counts != nil {
		frame, err = r.text.RenderBanded(dims, cells, counts)
	} else {
		frame, err = r.text.Render(dims, cells)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.Out, frame)
	return errors.Wrap(err, "[TerminalRenderer.Display] write failed")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		// fall back to ANSI home + erase when no clear binary is available
		_, err = fmt.Fprint(r.Out, "\033[H\033[2J")
		return errors.Wrap(err, "[TerminalRenderer.Clear] write failed")
	}
	return nil
}
