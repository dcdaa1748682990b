package textgrid

import "strings"

// Border fragments. The corner and tee fragments carry the surrounding
// padding, so joining them with the per-column fills yields a complete
// line, outer spaces included.
const (
	borderTopLeft  = " ┌─"
	borderTopMid   = "─┬─"
	borderTopRight = "─┐ "
	borderMidLeft  = " ├─"
	borderMidMid   = "─┼─"
	borderMidRight = "─┤ "
	borderBotLeft  = " └─"
	borderBotMid   = "─┴─"
	borderBotRight = "─┘ "
	borderVertical = " │ "
	borderFill     = "─"
)

func borderLine(widths []int, left, mid, right string) string {
	fills := make([]string, len(widths))
	for i, w := range widths {
		fills[i] = strings.Repeat(borderFill, w)
	}
	return left + strings.Join(fills, mid) + right
}

func topBorder(widths []int) string {
	return borderLine(widths, borderTopLeft, borderTopMid, borderTopRight)
}

func midBorder(widths []int) string {
	return borderLine(widths, borderMidLeft, borderMidMid, borderMidRight)
}

func bottomBorder(widths []int) string {
	return borderLine(widths, borderBotLeft, borderBotMid, borderBotRight)
}

// rowLine joins one rendered line per cell with vertical separators,
// bracketed by the outer verticals.
func rowLine(parts []string) string {
	return borderVertical + strings.Join(parts, borderVertical) + borderVertical
}
