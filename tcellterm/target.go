// Package tcellterm adapts a tcell.Screen to the terminal.Target drawing
// surface, letting layout composed through the tui package render onto a
// tcell-managed terminal instead of the direct-ANSI Buffer. Clipping and
// field semantics match terminal.Buffer against the screen's current size.
package tcellterm

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Target implements terminal.Target over a tcell.Screen
type Target struct {
	screen tcell.Screen
	style  tcell.Style
}

// New wraps an initialized screen. The style applies to every cell written.
func New(screen tcell.Screen) *Target {
	return &Target{screen: screen, style: tcell.StyleDefault}
}

// SetStyle changes the style used for subsequent writes
func (t *Target) SetStyle(style tcell.Style) {
	t.style = style
}

// Clear fills the screen with blanks
func (t *Target) Clear() {
	t.screen.Fill(' ', t.style)
}

// PutChar writes one cell, dropping out-of-bounds coordinates
func (t *Target) PutChar(x, y int, ch rune) {
	w, h := t.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	t.screen.SetContent(x, y, ch, nil, t.style)
}

// WriteString writes runes left-to-right from x, stopping at the right edge
func (t *Target) WriteString(x, y int, s string) {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}
	col := 0
	for _, ch := range s {
		px := x + col
		if px >= w {
			return
		}
		t.PutChar(px, y, ch)
		col++
	}
}

// WriteIntRight renders a right-justified signed integer field,
// blanking the field first
func (t *Target) WriteIntRight(x, y int, value int64, width int) {
	_, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}

	for i := 0; i < width; i++ {
		t.PutChar(x+i, y, ' ')
	}

	if value == 0 {
		if width > 0 {
			t.PutChar(x+width-1, y, '0')
		}
		return
	}
	negative := value < 0
	if negative {
		value = -value
	}

	pos := x + width
	for value > 0 && pos > x {
		pos--
		t.PutChar(pos, y, rune('0'+value%10))
		value /= 10
	}
	if negative && pos > x {
		t.PutChar(pos-1, y, '-')
	}
}

// WriteFloatRight renders a fixed-point right-justified field, rounding
// ties away from zero and truncating silently at the field's left edge
func (t *Target) WriteFloatRight(x, y int, value float64, width, precision int) {
	_, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}

	scale := int64(1)
	for i := 0; i < precision; i++ {
		scale *= 10
	}
	scaled := int64(math.Round(value * float64(scale)))

	intPart := scaled / scale
	fractPart := scaled % scale
	if fractPart < 0 {
		fractPart = -fractPart
	}

	for i := 0; i < width; i++ {
		t.PutChar(x+i, y, ' ')
	}

	pos := x + width
	for i := 0; i < precision; i++ {
		if pos <= x {
			return
		}
		pos--
		t.PutChar(pos, y, rune('0'+fractPart%10))
		fractPart /= 10
	}

	if precision > 0 && pos > x {
		pos--
		t.PutChar(pos, y, '.')
	}

	v := intPart
	if v < 0 {
		v = -v
	}
	if v == 0 && pos > x {
		pos--
		t.PutChar(pos, y, '0')
	} else {
		for v > 0 && pos > x {
			pos--
			t.PutChar(pos, y, rune('0'+v%10))
			v /= 10
		}
	}
	if intPart < 0 && pos > x {
		t.PutChar(pos-1, y, '-')
	}
}

// Flush makes everything written visible
func (t *Target) Flush() {
	t.screen.Show()
}

// HLine strokes n cells of ch rightward from (x, y)
func (t *Target) HLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		t.PutChar(x+i, y, ch)
	}
}

// VLine strokes n cells of ch downward from (x, y)
func (t *Target) VLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		t.PutChar(x, y+i, ch)
	}
}

// Frame strokes a rectangle outline with box-drawing glyphs
func (t *Target) Frame(x, y, w, h int) {
	t.PutChar(x, y, '┌')
	t.PutChar(x+w-1, y, '┐')
	t.PutChar(x, y+h-1, '└')
	t.PutChar(x+w-1, y+h-1, '┘')

	t.HLine(x+1, y, w-2, '─')
	t.HLine(x+1, y+h-1, w-2, '─')
	t.VLine(x, y+1, h-2, '│')
	t.VLine(x+w-1, y+1, h-2, '│')
}
