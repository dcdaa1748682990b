package textgrid

import (
	"fmt"
	"strings"
)

// Cell is a single grid cell: text content plus optional alignment, color,
// font style, and size attributes. The zero value is an empty cell with
// default formatting.
//
// Cells are plain values. [Grid] iterators yield copies; [Grid.Cell] returns
// a pointer into the grid for in-place mutation.
type Cell struct {
	text      string
	hAlign    Align
	vAlign    Align
	fg        Color
	bg        Color
	styles    styleSet
	width     int
	height    int
	hasWidth  bool
	hasHeight bool
}

// NewCell creates a cell from any value. [Cell] and *[Cell] values are used
// as-is, strings become the cell text directly, [fmt.Stringer] values are
// rendered with String, and anything else is formatted with fmt.
func NewCell(value any) Cell { return toCell(value) }

func toCell(value any) Cell {
	switch v := value.(type) {
	case Cell:
		return v
	case *Cell:
		if v == nil {
			return Cell{}
		}
		return *v
	case string:
		return Cell{text: v}
	case fmt.Stringer:
		return Cell{text: v.String()}
	default:
		return Cell{text: fmt.Sprintf("%v", v)}
	}
}

// SetText replaces the cell's text.
func (c *Cell) SetText(text string) { c.text = text }

// Text returns the cell's raw text.
func (c Cell) Text() string { return c.text }

// Lines returns the cell's content lines: the text split on newlines after
// normalizing "\r\n" to "\n". Empty text yields a single empty line, so
// every cell has at least one.
func (c Cell) Lines() []string { return c.lines() }

func (c Cell) lines() []string {
	return strings.Split(strings.ReplaceAll(c.text, "\r\n", "\n"), "\n")
}

// SetAlign sets the cell's alignment. Horizontal values set the horizontal
// axis and vertical values the vertical axis, so one call can set both; the
// last value per axis wins. Unrecognized values are ignored.
func (c *Cell) SetAlign(aligns ...Align) {
	for _, a := range aligns {
		switch a {
		case AlignLeft, AlignCenter, AlignRight:
			c.hAlign = a
		case AlignTop, AlignMiddle, AlignBottom:
			c.vAlign = a
		}
	}
}

// Align returns the cell's alignment, substituting the defaults [AlignLeft]
// and [AlignTop] for unset axes.
func (c Cell) Align() (horizontal, vertical Align) {
	horizontal, vertical = c.hAlign, c.vAlign
	if horizontal == "" {
		horizontal = AlignLeft
	}
	if vertical == "" {
		vertical = AlignTop
	}
	return horizontal, vertical
}

// SetColor sets the foreground color. Values outside the palette are
// ignored, leaving the prior color in place.
func (c *Cell) SetColor(color Color) {
	if _, ok := colorCodes[color]; ok {
		c.fg = color
	}
}

// SetHighlight sets the background color. Values outside the palette are
// ignored, leaving the prior color in place.
func (c *Cell) SetHighlight(color Color) {
	if _, ok := colorCodes[color]; ok {
		c.bg = color
	}
}

// Foreground returns the foreground color, or "" when none is set.
func (c Cell) Foreground() Color { return c.fg }

// Background returns the background color, or "" when none is set.
func (c Cell) Background() Color { return c.bg }

// SetStyle adds font styles to the cell. Styles accumulate across calls;
// unrecognized values are ignored.
func (c *Cell) SetStyle(styles ...Style) {
	for _, s := range styles {
		c.styles.add(s)
	}
}

// Styles returns the active font styles in escape emission order.
func (c Cell) Styles() []Style { return c.styles.active() }

// SetWidth overrides the width this cell contributes to its column. The
// override replaces the content-derived width for this cell only; the
// column can still be wider because of other cells. Negative n clears the
// override.
func (c *Cell) SetWidth(n int) {
	if n < 0 {
		c.ClearWidth()
		return
	}
	c.width, c.hasWidth = n, true
}

// SetHeight overrides the height this cell contributes to its row, with the
// same substitution rule as [Cell.SetWidth]. Negative n clears the override.
func (c *Cell) SetHeight(n int) {
	if n < 0 {
		c.ClearHeight()
		return
	}
	c.height, c.hasHeight = n, true
}

// ClearWidth removes the width override, reverting to content-derived width.
func (c *Cell) ClearWidth() { c.width, c.hasWidth = 0, false }

// ClearHeight removes the height override, reverting to content-derived
// height.
func (c *Cell) ClearHeight() { c.height, c.hasHeight = 0, false }

// Width returns the width override and whether one is set.
func (c Cell) Width() (int, bool) { return c.width, c.hasWidth }

// Height returns the height override and whether one is set.
func (c Cell) Height() (int, bool) { return c.height, c.hasHeight }

// ClearFormat removes the cell's alignment, colors, and styles. Text and
// size overrides are kept.
func (c *Cell) ClearFormat() {
	c.hAlign = ""
	c.vAlign = ""
	c.fg = ""
	c.bg = ""
	c.styles = 0
}
