package textgrid_test

import (
	"testing"

	"github.com/bjaus/textgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	t.Parallel()
	prepared := textgrid.NewCell("prepared")
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":       {value: "hello", want: "hello"},
		"int":          {value: 42, want: "42"},
		"float":        {value: 1.5, want: "1.5"},
		"stringer":     {value: stringerVal{name: "bob"}, want: "name=bob"},
		"cell":         {value: prepared, want: "prepared"},
		"cell pointer": {value: &prepared, want: "prepared"},
		"nil":          {value: nil, want: "<nil>"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textgrid.NewCell(tt.value).Text())
		})
	}
}

func TestNewCellNilPointer(t *testing.T) {
	t.Parallel()
	var p *textgrid.Cell
	assert.Empty(t, textgrid.NewCell(p).Text())
}

func TestNewCellKeepsFormatting(t *testing.T) {
	t.Parallel()
	c := textgrid.NewCell("x")
	c.SetColor(textgrid.Green)
	c.SetAlign(textgrid.AlignRight)

	got := textgrid.NewCell(c)
	assert.Equal(t, textgrid.Green, got.Foreground())
	h, _ := got.Align()
	assert.Equal(t, textgrid.AlignRight, h)
}

func TestSetText(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetText("first")
	c.SetText("second")
	assert.Equal(t, "second", c.Text())
}

func TestLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text string
		want []string
	}{
		"empty":            {text: "", want: []string{""}},
		"single":           {text: "a", want: []string{"a"}},
		"two lines":        {text: "a\nb", want: []string{"a", "b"}},
		"trailing newline": {text: "a\n", want: []string{"a", ""}},
		"crlf":             {text: "a\r\nb", want: []string{"a", "b"}},
		"blank middle":     {text: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textgrid.NewCell(tt.text).Lines())
		})
	}
}

func TestAlignDefaults(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	h, v := c.Align()
	assert.Equal(t, textgrid.AlignLeft, h)
	assert.Equal(t, textgrid.AlignTop, v)
}

func TestSetAlign(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetAlign(textgrid.AlignCenter, textgrid.AlignBottom)
	h, v := c.Align()
	assert.Equal(t, textgrid.AlignCenter, h)
	assert.Equal(t, textgrid.AlignBottom, v)
}

func TestSetAlignLastValueWinsPerAxis(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetAlign(textgrid.AlignLeft, textgrid.AlignRight, textgrid.AlignMiddle)
	h, v := c.Align()
	assert.Equal(t, textgrid.AlignRight, h)
	assert.Equal(t, textgrid.AlignMiddle, v)
}

func TestSetAlignOneAxisKeepsOther(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetAlign(textgrid.AlignBottom)
	c.SetAlign(textgrid.AlignRight)
	h, v := c.Align()
	assert.Equal(t, textgrid.AlignRight, h)
	assert.Equal(t, textgrid.AlignBottom, v)
}

func TestSetAlignInvalidIgnored(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetAlign(textgrid.AlignCenter)
	c.SetAlign(textgrid.Align("diagonal"))
	h, v := c.Align()
	assert.Equal(t, textgrid.AlignCenter, h)
	assert.Equal(t, textgrid.AlignTop, v)
}

func TestSetColor(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	require.Empty(t, c.Foreground())
	c.SetColor(textgrid.BrightMagenta)
	assert.Equal(t, textgrid.BrightMagenta, c.Foreground())
}

func TestSetColorInvalidKeepsPrior(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetColor(textgrid.Red)
	c.SetColor(textgrid.Color("ultraviolet"))
	assert.Equal(t, textgrid.Red, c.Foreground())
}

func TestSetHighlight(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetHighlight(textgrid.Blue)
	assert.Equal(t, textgrid.Blue, c.Background())

	c.SetHighlight(textgrid.Color("plaid"))
	assert.Equal(t, textgrid.Blue, c.Background())
}

func TestSetStyle(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetStyle(textgrid.Bold)
	c.SetStyle(textgrid.Underline)
	assert.Equal(t, []textgrid.Style{textgrid.Bold, textgrid.Underline}, c.Styles())
}

func TestSetStyleEmissionOrder(t *testing.T) {
	t.Parallel()
	// Styles report in escape emission order, not insertion order.
	var c textgrid.Cell
	c.SetStyle(textgrid.Strike, textgrid.Bold, textgrid.Italic)
	assert.Equal(t, []textgrid.Style{textgrid.Bold, textgrid.Italic, textgrid.Strike}, c.Styles())
}

func TestSetStyleDuplicate(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetStyle(textgrid.Bold, textgrid.Bold)
	c.SetStyle(textgrid.Bold)
	assert.Equal(t, []textgrid.Style{textgrid.Bold}, c.Styles())
}

func TestSetStyleInvalidIgnored(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetStyle(textgrid.Bold, textgrid.Style("sparkle"))
	assert.Equal(t, []textgrid.Style{textgrid.Bold}, c.Styles())
}

func TestSetWidth(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	_, ok := c.Width()
	require.False(t, ok)

	c.SetWidth(8)
	w, ok := c.Width()
	require.True(t, ok)
	assert.Equal(t, 8, w)
}

func TestSetWidthZero(t *testing.T) {
	t.Parallel()
	// Zero is a real override, not "unset".
	var c textgrid.Cell
	c.SetWidth(0)
	w, ok := c.Width()
	require.True(t, ok)
	assert.Zero(t, w)
}

func TestSetWidthNegativeClears(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetWidth(8)
	c.SetWidth(-1)
	_, ok := c.Width()
	assert.False(t, ok)
}

func TestClearWidth(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetWidth(8)
	c.ClearWidth()
	_, ok := c.Width()
	assert.False(t, ok)
}

func TestSetHeight(t *testing.T) {
	t.Parallel()
	var c textgrid.Cell
	c.SetHeight(3)
	h, ok := c.Height()
	require.True(t, ok)
	assert.Equal(t, 3, h)

	c.SetHeight(-1)
	_, ok = c.Height()
	assert.False(t, ok)

	c.SetHeight(3)
	c.ClearHeight()
	_, ok = c.Height()
	assert.False(t, ok)
}

func TestClearFormat(t *testing.T) {
	t.Parallel()
	c := textgrid.NewCell("keep me")
	c.SetAlign(textgrid.AlignCenter, textgrid.AlignBottom)
	c.SetColor(textgrid.Red)
	c.SetHighlight(textgrid.Blue)
	c.SetStyle(textgrid.Bold)
	c.SetWidth(9)
	c.SetHeight(2)

	c.ClearFormat()

	h, v := c.Align()
	assert.Equal(t, textgrid.AlignLeft, h)
	assert.Equal(t, textgrid.AlignTop, v)
	assert.Empty(t, c.Foreground())
	assert.Empty(t, c.Background())
	assert.Empty(t, c.Styles())

	// Text and size overrides survive.
	assert.Equal(t, "keep me", c.Text())
	w, ok := c.Width()
	require.True(t, ok)
	assert.Equal(t, 9, w)
	hgt, ok := c.Height()
	require.True(t, ok)
	assert.Equal(t, 2, hgt)
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "center", textgrid.AlignCenter.String())
	assert.Equal(t, "bright magenta", textgrid.BrightMagenta.String())
	assert.Equal(t, "underline", textgrid.Underline.String())
}
