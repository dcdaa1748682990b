// Package textgrid lays out and renders text tables.
//
// A [Grid] is a rectangular collection of [Cell] values addressed by row
// and column. Cells hold multiline text plus optional alignment, colors,
// font styles, and size overrides. Rendering computes each column's width
// and each row's height from the content, then draws a box-drawn table with
// one space of padding around every cell:
//
//	g := textgrid.FromRows(
//		[]string{"Name", "Age"},
//		[]string{"Alice", "30"},
//	)
//	fmt.Print(g)
//
//	 ┌───────┬─────┐
//	 │ Name  │ Age │
//	 ├───────┼─────┤
//	 │ Alice │ 30  │
//	 └───────┴─────┘
//
// # Construction
//
// [New] creates a grid of empty cells and [FromRows] builds one from row
// slices, padding short rows with empty cells so the grid stays
// rectangular. The zero value is an empty grid. Wherever a cell value is
// accepted, conversion is fixed: [Cell] and *[Cell] pass through, strings
// are taken as-is, [fmt.Stringer] values are rendered with String, and
// everything else goes through fmt.
//
// # Mutation
//
// [Grid.Cell] returns a pointer for in-place edits. Bulk mutators come in
// pairs: [Grid.SetCell], [Grid.SetRow], [Grid.SetCol], [Grid.InsertRow],
// and [Grid.InsertCol] return an error on a bad index or shape, while the
// Must variants ([Grid.MustSetCell] and friends) panic with the same error.
// [Grid.Resize] reshapes the grid, keeping the overlapping top-left
// rectangle, and [Grid.SetCells] refills all cells row-major.
//
// # Iteration
//
// [Grid.Cells], [Grid.RowCells], and [Grid.ColCells] return [iter.Seq]
// iterators over cell copies; an out-of-range row or column yields nothing.
// [Grid.Update], [Grid.UpdateRow], and [Grid.UpdateCol] visit cells with a
// pointer for mutation during iteration.
//
// # Cell Formatting
//
// Cells are styled through setters:
//
//   - [Cell.SetAlign] — horizontal and vertical alignment ([Align])
//   - [Cell.SetColor] / [Cell.SetHighlight] — foreground and background
//     from the 16-color palette ([Color])
//   - [Cell.SetStyle] — additive font effects ([Style])
//   - [Cell.SetWidth] / [Cell.SetHeight] — per-cell size overrides
//   - [Cell.ClearFormat] — reset alignment, colors, and styles
//
// Unrecognized alignment, color, or style values are silently ignored;
// invalid styling never corrupts output.
//
// # Layout and Rendering
//
// [Grid.Layout] exposes the computed column widths and row heights. Widths
// count runes, one unit per rune. [Grid.String] renders the full table and
// [Grid.WriteTo] streams the same bytes to a writer. Content longer than
// its column is truncated; shorter content is padded per its alignment.
// Styled cells are wrapped line by line in ANSI escape sequences, each line
// closed with a reset so styling never bleeds across cells. [StripANSI]
// removes the escapes again, which is handy for measuring rendered output.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrIndexOutOfBounds] — row or column outside the grid
//   - [ErrDimensionMismatch] — value count does not match the grid shape
package textgrid
