package textgrid

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// String renders the grid as a box-drawn table. Every line carries one
// leading and one trailing space and ends with a newline, the last line
// included. An empty grid still renders its top and bottom borders.
// Rendering never fails.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.render(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// WriteTo renders the grid to w, producing exactly the bytes of
// [Grid.String]. It implements [io.WriterTo], reporting the bytes written
// and the first write error, if any.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := g.render(cw)
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func (g *Grid) render(w io.Writer) error {
	layout := g.Layout()
	if _, err := fmt.Fprintln(w, topBorder(layout.ColWidths)); err != nil {
		return err
	}
	for row := range g.rows {
		if row > 0 {
			if _, err := fmt.Fprintln(w, midBorder(layout.ColWidths)); err != nil {
				return err
			}
		}
		if err := g.renderRow(w, row, layout); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, bottomBorder(layout.ColWidths))
	return err
}

// renderRow writes the content lines of one logical row. Every cell expands
// to exactly the row's height in lines, so the cells zip together line by
// line.
func (g *Grid) renderRow(w io.Writer, row int, layout Layout) error {
	height := layout.RowHeights[row]
	cells := make([][]string, g.cols)
	for col := range g.cols {
		cells[col] = g.cells[row*g.cols+col].renderLines(layout.ColWidths[col], height)
	}
	parts := make([]string, g.cols)
	for line := range height {
		for col := range g.cols {
			parts[col] = cells[col][line]
		}
		if _, err := fmt.Fprintln(w, rowLine(parts)); err != nil {
			return err
		}
	}
	return nil
}

// renderLines renders the cell's content into exactly height lines of
// exactly width runes each, escape codes aside. Overflowing content is cut
// to the first height lines; missing lines are filled with blanks placed by
// the vertical alignment, with the extra blank of an odd middle split going
// after the content. Blank lines are never styled.
func (c Cell) renderLines(width, height int) []string {
	content := c.lines()
	if len(content) > height {
		content = content[:height]
	}
	for i, line := range content {
		content[i] = c.renderLine(line, width)
	}
	pad := height - len(content)
	if pad == 0 {
		return content
	}
	blank := strings.Repeat(" ", width)
	top := 0
	switch c.vAlign {
	case AlignBottom:
		top = pad
	case AlignMiddle:
		top = pad / 2
	}
	lines := make([]string, 0, height)
	for range top {
		lines = append(lines, blank)
	}
	lines = append(lines, content...)
	for range pad - top {
		lines = append(lines, blank)
	}
	return lines
}

// renderLine fits one content line into width runes: overflow is truncated,
// shortfall padded per the horizontal alignment with the extra space of an
// odd center split going right. The cell's escape codes wrap the text only;
// padding stays outside them.
func (c Cell) renderLine(line string, width int) string {
	length := utf8.RuneCountInString(line)
	if length > width {
		runes := []rune(line)
		line = string(runes[:width])
		length = width
	}
	styled := applyANSI(line, c.fg, c.bg, c.styles)
	pad := width - length
	if pad <= 0 {
		return styled
	}
	switch c.hAlign {
	case AlignRight:
		return strings.Repeat(" ", pad) + styled
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", right)
	default:
		return styled + strings.Repeat(" ", pad)
	}
}
