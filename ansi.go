package textgrid

import "strings"

const ansiReset = "\x1b[0m"

// applyANSI wraps text in the escape codes for the given attributes plus a
// trailing reset. Attributes are emitted as foreground, background, then
// styles, each as its own sequence. With no attributes set the text is
// returned unchanged.
func applyANSI(text string, fg, bg Color, styles styleSet) string {
	if fg == "" && bg == "" && styles == 0 {
		return text
	}
	var sb strings.Builder
	if fg != "" {
		sb.WriteString(colorCodes[fg].fg)
	}
	if bg != "" {
		sb.WriteString(colorCodes[bg].bg)
	}
	for i, entry := range styleTable {
		if styles&(1<<i) != 0 {
			sb.WriteString(entry.code)
		}
	}
	sb.WriteString(text)
	sb.WriteString(ansiReset)
	return sb.String()
}

// StripANSI returns s with all ANSI escape sequences removed. Useful for
// measuring the visible width of rendered output.
func StripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
