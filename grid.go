package textgrid

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Grid is a rectangular collection of cells addressed by row and column.
// Cells are stored row-major in a single flat slice, so a grid is always
// rectangular: rows*cols cells, every row the same length.
//
// The zero value is an empty grid, ready to use. A Grid is not safe for
// concurrent use.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// New creates a rows by cols grid of empty cells. It panics if either
// dimension is negative.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic("textgrid: negative grid dimensions")
	}
	return &Grid{cells: make([]Cell, rows*cols), rows: rows, cols: cols}
}

// FromRows builds a grid from row slices. The column count is the length of
// the longest row; shorter rows are padded with empty cells so the grid
// stays rectangular. Values are converted to cells as described by
// [NewCell].
func FromRows[T any](rows ...[]T) *Grid {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	g := &Grid{
		cells: make([]Cell, 0, len(rows)*cols),
		rows:  len(rows),
		cols:  cols,
	}
	for _, row := range rows {
		for _, v := range row {
			g.cells = append(g.cells, toCell(v))
		}
		for i := len(row); i < cols; i++ {
			g.cells = append(g.cells, Cell{})
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns a pointer to the cell at (row, col) for reading or in-place
// mutation, and whether the position is inside the grid. The pointer stays
// valid until the next structural change ([Grid.Resize], [Grid.InsertRow],
// [Grid.InsertCol]).
func (g *Grid) Cell(row, col int) (*Cell, bool) {
	if !g.inBounds(row, col) {
		return nil, false
	}
	return &g.cells[row*g.cols+col], true
}

// SetCell replaces the cell at (row, col) with the given value, converted
// as described by [NewCell]. It returns [ErrIndexOutOfBounds] when the
// position is outside the grid.
func (g *Grid) SetCell(row, col int, value any) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: cell (%d, %d) in %dx%d grid", ErrIndexOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = toCell(value)
	return nil
}

// MustSetCell is like [Grid.SetCell] but panics on error.
func (g *Grid) MustSetCell(row, col int, value any) {
	if err := g.SetCell(row, col, value); err != nil {
		panic(err)
	}
}

// SetRow replaces every cell of the given row. It returns
// [ErrIndexOutOfBounds] when the row is outside the grid and
// [ErrDimensionMismatch] unless exactly one value per column is given.
func (g *Grid) SetRow(row int, values ...any) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrIndexOutOfBounds, row, g.rows, g.cols)
	}
	if len(values) != g.cols {
		return fmt.Errorf("%w: row of %d cells in %dx%d grid", ErrDimensionMismatch, len(values), g.rows, g.cols)
	}
	for col, v := range values {
		g.cells[row*g.cols+col] = toCell(v)
	}
	return nil
}

// MustSetRow is like [Grid.SetRow] but panics on error.
func (g *Grid) MustSetRow(row int, values ...any) {
	if err := g.SetRow(row, values...); err != nil {
		panic(err)
	}
}

// SetCol replaces every cell of the given column. It returns
// [ErrIndexOutOfBounds] when the column is outside the grid and
// [ErrDimensionMismatch] unless exactly one value per row is given.
func (g *Grid) SetCol(col int, values ...any) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrIndexOutOfBounds, col, g.rows, g.cols)
	}
	if len(values) != g.rows {
		return fmt.Errorf("%w: col of %d cells in %dx%d grid", ErrDimensionMismatch, len(values), g.rows, g.cols)
	}
	for row, v := range values {
		g.cells[row*g.cols+col] = toCell(v)
	}
	return nil
}

// MustSetCol is like [Grid.SetCol] but panics on error.
func (g *Grid) MustSetCol(col int, values ...any) {
	if err := g.SetCol(col, values...); err != nil {
		panic(err)
	}
}

// InsertRow inserts a new row at the given index, shifting that row and the
// rows after it down. row may equal [Grid.Rows] to append. It returns
// [ErrIndexOutOfBounds] for any other row outside the grid and
// [ErrDimensionMismatch] unless exactly one value per column is given.
func (g *Grid) InsertRow(row int, values ...any) error {
	if row < 0 || row > g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrIndexOutOfBounds, row, g.rows, g.cols)
	}
	if len(values) != g.cols {
		return fmt.Errorf("%w: row of %d cells in %dx%d grid", ErrDimensionMismatch, len(values), g.rows, g.cols)
	}
	cells := make([]Cell, g.cols)
	for col, v := range values {
		cells[col] = toCell(v)
	}
	g.cells = slices.Insert(g.cells, row*g.cols, cells...)
	g.rows++
	return nil
}

// MustInsertRow is like [Grid.InsertRow] but panics on error.
func (g *Grid) MustInsertRow(row int, values ...any) {
	if err := g.InsertRow(row, values...); err != nil {
		panic(err)
	}
}

// InsertCol inserts a new column at the given index, shifting that column
// and the columns after it right. col may equal [Grid.Cols] to append. It
// returns [ErrIndexOutOfBounds] for any other column outside the grid and
// [ErrDimensionMismatch] unless exactly one value per row is given.
func (g *Grid) InsertCol(col int, values ...any) error {
	if col < 0 || col > g.cols {
		return fmt.Errorf("%w: col %d in %dx%d grid", ErrIndexOutOfBounds, col, g.rows, g.cols)
	}
	if len(values) != g.rows {
		return fmt.Errorf("%w: col of %d cells in %dx%d grid", ErrDimensionMismatch, len(values), g.rows, g.cols)
	}
	cols := g.cols + 1
	cells := make([]Cell, 0, g.rows*cols)
	for row := range g.rows {
		cells = append(cells, g.cells[row*g.cols:row*g.cols+col]...)
		cells = append(cells, toCell(values[row]))
		cells = append(cells, g.cells[row*g.cols+col:(row+1)*g.cols]...)
	}
	g.cells = cells
	g.cols = cols
	return nil
}

// MustInsertCol is like [Grid.InsertCol] but panics on error.
func (g *Grid) MustInsertCol(col int, values ...any) {
	if err := g.InsertCol(col, values...); err != nil {
		panic(err)
	}
}

// SetCells refills the whole grid row-major from the given values. Missing
// values become empty cells; extra values are ignored. The dimensions do
// not change.
func (g *Grid) SetCells(values ...any) {
	for i := range g.cells {
		if i < len(values) {
			g.cells[i] = toCell(values[i])
		} else {
			g.cells[i] = Cell{}
		}
	}
}

// Resize changes the grid to rows by cols. Cells inside the overlapping
// top-left rectangle keep their content and formatting; cells outside it
// are dropped and new positions get empty cells. It panics if either
// dimension is negative.
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("textgrid: negative grid dimensions")
	}
	cells := make([]Cell, rows*cols)
	minRows, minCols := min(rows, g.rows), min(cols, g.cols)
	for row := range minRows {
		copy(cells[row*cols:row*cols+minCols], g.cells[row*g.cols:row*g.cols+minCols])
	}
	g.cells = cells
	g.rows = rows
	g.cols = cols
}

// Cells returns an iterator over copies of all cells in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// RowCells returns an iterator over copies of the cells of one row, left to
// right. A row outside the grid yields nothing.
func (g *Grid) RowCells(row int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if row < 0 || row >= g.rows {
			return
		}
		for col := range g.cols {
			if !yield(g.cells[row*g.cols+col]) {
				return
			}
		}
	}
}

// ColCells returns an iterator over copies of the cells of one column, top
// to bottom. A column outside the grid yields nothing.
func (g *Grid) ColCells(col int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if col < 0 || col >= g.cols {
			return
		}
		for row := range g.rows {
			if !yield(g.cells[row*g.cols+col]) {
				return
			}
		}
	}
}

// Update calls fn for every cell in row-major order with its position and a
// pointer for in-place mutation.
func (g *Grid) Update(fn func(row, col int, c *Cell)) {
	for i := range g.cells {
		fn(i/g.cols, i%g.cols, &g.cells[i])
	}
}

// UpdateRow calls fn for every cell of one row, left to right, with a
// pointer for in-place mutation. A row outside the grid is a no-op.
func (g *Grid) UpdateRow(row int, fn func(col int, c *Cell)) {
	if row < 0 || row >= g.rows {
		return
	}
	for col := range g.cols {
		fn(col, &g.cells[row*g.cols+col])
	}
}

// UpdateCol calls fn for every cell of one column, top to bottom, with a
// pointer for in-place mutation. A column outside the grid is a no-op.
func (g *Grid) UpdateCol(col int, fn func(row int, c *Cell)) {
	if col < 0 || col >= g.cols {
		return
	}
	for row := range g.rows {
		fn(row, &g.cells[row*g.cols+col])
	}
}
