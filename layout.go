package textgrid

import "unicode/utf8"

// Layout holds the computed column widths and row heights of a grid. Widths
// and heights count characters (runes), one unit per rune regardless of how
// wide a terminal draws it.
type Layout struct {
	ColWidths  []int
	RowHeights []int
}

// Layout computes column widths and row heights from the grid's current
// content. A column is as wide as the widest cell in it and a row as tall
// as the tallest, where a cell with a size override contributes the
// override instead of its content-derived size. The result is computed
// fresh on every call; nothing is cached.
func (g *Grid) Layout() Layout {
	widths := make([]int, g.cols)
	heights := make([]int, g.rows)
	for row := range g.rows {
		for col := range g.cols {
			c := &g.cells[row*g.cols+col]
			widths[col] = max(widths[col], c.layoutWidth())
			heights[row] = max(heights[row], c.layoutHeight())
		}
	}
	return Layout{ColWidths: widths, RowHeights: heights}
}

// layoutWidth is the width this cell asks of its column: the override when
// set, otherwise the rune count of its longest content line.
func (c Cell) layoutWidth() int {
	if c.hasWidth {
		return c.width
	}
	w := 0
	for _, line := range c.lines() {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

// layoutHeight is the height this cell asks of its row: the override when
// set, otherwise the content line count, which is at least 1.
func (c Cell) layoutHeight() int {
	if c.hasHeight {
		return c.height
	}
	return len(c.lines())
}
