package textgrid

// Color names a color from the 16-color terminal palette. The same value
// serves as foreground ([Cell.SetColor]) or background ([Cell.SetHighlight]).
type Color string

const (
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"

	BrightBlack   Color = "bright black"
	BrightRed     Color = "bright red"
	BrightGreen   Color = "bright green"
	BrightYellow  Color = "bright yellow"
	BrightBlue    Color = "bright blue"
	BrightMagenta Color = "bright magenta"
	BrightCyan    Color = "bright cyan"
	BrightWhite   Color = "bright white"
)

// String returns the color name.
func (c Color) String() string { return string(c) }

type colorCode struct {
	fg, bg string
}

var colorCodes = map[Color]colorCode{
	Black:         {fg: "\x1b[30m", bg: "\x1b[40m"},
	Red:           {fg: "\x1b[31m", bg: "\x1b[41m"},
	Green:         {fg: "\x1b[32m", bg: "\x1b[42m"},
	Yellow:        {fg: "\x1b[33m", bg: "\x1b[43m"},
	Blue:          {fg: "\x1b[34m", bg: "\x1b[44m"},
	Magenta:       {fg: "\x1b[35m", bg: "\x1b[45m"},
	Cyan:          {fg: "\x1b[36m", bg: "\x1b[46m"},
	White:         {fg: "\x1b[37m", bg: "\x1b[47m"},
	BrightBlack:   {fg: "\x1b[90m", bg: "\x1b[100m"},
	BrightRed:     {fg: "\x1b[91m", bg: "\x1b[101m"},
	BrightGreen:   {fg: "\x1b[92m", bg: "\x1b[102m"},
	BrightYellow:  {fg: "\x1b[93m", bg: "\x1b[103m"},
	BrightBlue:    {fg: "\x1b[94m", bg: "\x1b[104m"},
	BrightMagenta: {fg: "\x1b[95m", bg: "\x1b[105m"},
	BrightCyan:    {fg: "\x1b[96m", bg: "\x1b[106m"},
	BrightWhite:   {fg: "\x1b[97m", bg: "\x1b[107m"},
}
