package textgrid

// Align positions cell content along one axis. [AlignLeft], [AlignCenter],
// and [AlignRight] apply to the horizontal axis; [AlignTop], [AlignMiddle],
// and [AlignBottom] apply to the vertical axis. Each value addresses exactly
// one axis, so a cell carries one of each.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"

	AlignTop    Align = "top"
	AlignMiddle Align = "middle"
	AlignBottom Align = "bottom"
)

// String returns the alignment name.
func (a Align) String() string { return string(a) }
