// Package display renders the level structure of an ordered tree to a
// console, one line per breadth-first level.
//
// Output is colorized per depth and cells are aligned by their display
// width, so that East Asian wide characters in string elements do not
// break the columns.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"

	"github.com/npillmayer/ordtree"
)

// Console is a formatter for the level structure of a tree.
//
// The zero value is not usable; create consoles with NewConsole.
type Console[E constraints.Ordered] struct {
	colors  []*color.Color
	context *uax11.Context
	width   int // line length clamp in fixed-width positions, 0 = unclamped
}

// NewConsole creates a console formatter. colors is the palette cycled
// through by tree depth; if empty, a default palette is used.
func NewConsole[E constraints.Ordered](colors ...*color.Color) *Console[E] {
	c := &Console[E]{context: uax11.LatinContext}
	if len(colors) == 0 {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
	}
}

// Print outputs the tree's level structure to stdout.
//
// If stdout is an interactive terminal, lines are clamped to the terminal
// width and the width context is derived from the user environment.
func (c *Console[E]) Print(tree *ordtree.Tree[E]) error {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			c.width = w
		}
		c.context = uax11.ContextFromEnvironment()
	}
	return c.Fprint(os.Stdout, tree)
}

// Fprint writes one line per breadth-first level of the tree to w, the
// first line holding just the root element. An empty tree prints as "[]".
func (c *Console[E]) Fprint(w io.Writer, tree *ordtree.Tree[E]) error {
	levels := tree.Levels()
	if len(levels) == 0 {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}
	cells, cell := c.measure(levels)
	for depth, row := range cells {
		col := c.colors[depth%len(c.colors)]
		if err := c.printRow(w, col, row, cell); err != nil {
			return err
		}
	}
	return nil
}

// measure renders all elements to strings and returns them together with
// the widest cell, measured in fixed-width positions.
func (c *Console[E]) measure(levels [][]E) ([][]string, int) {
	cells := make([][]string, len(levels))
	widest := 1
	for d, row := range levels {
		cells[d] = make([]string, len(row))
		for i, e := range row {
			s := fmt.Sprintf("%v", e)
			cells[d][i] = s
			if l := c.cellWidth(s); l > widest {
				widest = l
			}
		}
	}
	return cells, widest
}

func (c *Console[E]) printRow(w io.Writer, col *color.Color, row []string, cell int) error {
	pos := 0
	for i, s := range row {
		width := c.cellWidth(s)
		pad := 0
		if i > 0 {
			// Align to the uniform grid: fill up the previous cell, plus one
			// separating blank.
			pad = cell - c.cellWidth(row[i-1]) + 1
		}
		if c.width > 0 && pos+pad+width >= c.width {
			// Clamp overlong level rows to the terminal width, keeping one
			// position for the ellipsis.
			_, err := io.WriteString(w, "…")
			if err != nil {
				return err
			}
			break
		}
		if pad > 0 {
			if _, err := io.WriteString(w, strings.Repeat(" ", pad)); err != nil {
				return err
			}
		}
		if _, err := col.Fprint(w, s); err != nil {
			return err
		}
		pos += pad + width
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (c *Console[E]) cellWidth(s string) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, c.context)
}
