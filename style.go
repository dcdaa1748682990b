package textgrid

// Style names a terminal font effect. Styles are additive: a cell can carry
// any combination of them.
type Style string

const (
	Bold      Style = "bold"
	Dim       Style = "dim"
	Italic    Style = "italic"
	Underline Style = "underline"
	Blink     Style = "blink"
	Reverse   Style = "reverse"
	Hidden    Style = "hidden"
	Strike    Style = "strike"
)

// String returns the style name.
func (s Style) String() string { return string(s) }

// styleTable fixes the bit position and escape code of each style. Escape
// emission follows table order.
var styleTable = []struct {
	style Style
	code  string
}{
	{Bold, "\x1b[1m"},
	{Dim, "\x1b[2m"},
	{Italic, "\x1b[3m"},
	{Underline, "\x1b[4m"},
	{Blink, "\x1b[5m"},
	{Reverse, "\x1b[7m"},
	{Hidden, "\x1b[8m"},
	{Strike, "\x1b[9m"},
}

// styleSet is a bitfield of active styles, one bit per styleTable entry.
type styleSet uint8

func (s *styleSet) add(st Style) {
	for i, entry := range styleTable {
		if entry.style == st {
			*s |= 1 << i
			return
		}
	}
}

func (s styleSet) active() []Style {
	var out []Style
	for i, entry := range styleTable {
		if s&(1<<i) != 0 {
			out = append(out, entry.style)
		}
	}
	return out
}
