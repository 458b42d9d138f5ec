package terminal

import (
	"bufio"
	"io"
	"math"
)

// Box drawing glyphs used by Frame
const (
	frameTL = '┌'
	frameTR = '┐'
	frameBL = '└'
	frameBR = '┘'
	frameH  = '─'
	frameV  = '│'
)

// Buffer is a fixed-size cell grid flushed whole to an output stream.
// Size never changes after construction.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	out    *bufio.Writer
}

// NewBuffer creates a blank width x height grid writing to out on Flush
func NewBuffer(width, height int, out io.Writer) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		out:    bufio.NewWriterSize(out, 4*width*height+height+16),
	}
	b.Clear()
	return b
}

// Width returns the grid width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the grid height
func (b *Buffer) Height() int {
	return b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Rune returns the cell content at (x, y), false when out of bounds
func (b *Buffer) Rune(x, y int) (rune, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return b.cells[b.index(x, y)].Rune, true
}

// Row returns row y as a string, empty when out of bounds
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		runes[x] = b.cells[b.index(x, y)].Rune
	}
	return string(runes)
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: Blank}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// PutChar writes one cell, dropping out-of-bounds coordinates
func (b *Buffer) PutChar(x, y int, ch rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[b.index(x, y)].Rune = ch
}

// WriteString writes runes left-to-right from x, stopping at the right edge
func (b *Buffer) WriteString(x, y int, s string) {
	if y < 0 || y >= b.height {
		return
	}
	col := 0
	for _, ch := range s {
		px := x + col
		if px >= b.width {
			return
		}
		b.PutChar(px, y, ch)
		col++
	}
}

// WriteIntRight renders a right-justified signed integer field.
// The field is blanked first so stale content is overwritten.
func (b *Buffer) WriteIntRight(x, y int, value int64, width int) {
	if y < 0 || y >= b.height {
		return
	}

	for i := 0; i < width; i++ {
		b.PutChar(x+i, y, Blank)
	}

	if value == 0 {
		if width > 0 {
			b.PutChar(x+width-1, y, '0')
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
		b.PutChar(pos, y, rune('0'+value%10))
		value /= 10
	}

	if negative && pos > x {
		b.PutChar(pos-1, y, '-')
	}
}

// WriteFloatRight renders a fixed-point right-justified field. The value is
// scaled by 10^precision and rounded to the nearest integer, ties away from
// zero. Emission stops silently at the field's left boundary.
func (b *Buffer) WriteFloatRight(x, y int, value float64, width, precision int) {
	if y < 0 || y >= b.height {
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
		b.PutChar(x+i, y, Blank)
	}

	pos := x + width

	for i := 0; i < precision; i++ {
		if pos <= x {
			return
		}
		pos--
		b.PutChar(pos, y, rune('0'+fractPart%10))
		fractPart /= 10
	}

	if precision > 0 && pos > x {
		pos--
		b.PutChar(pos, y, '.')
	}

	v := intPart
	if v < 0 {
		v = -v
	}
	if v == 0 && pos > x {
		pos--
		b.PutChar(pos, y, '0')
	} else {
		for v > 0 && pos > x {
			pos--
			b.PutChar(pos, y, rune('0'+v%10))
			v /= 10
		}
	}
	if intPart < 0 && pos > x {
		b.PutChar(pos-1, y, '-')
	}
}

// Flush serializes the whole grid row-major, prefixed by clear-and-home,
// and delivers it to the output stream in a single buffered write
func (b *Buffer) Flush() {
	b.out.WriteString("\x1b[2J\x1b[H")
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.out.WriteRune(b.cells[b.index(x, y)].Rune)
		}
		b.out.WriteByte('\n')
	}
	b.out.Flush()
}

// HLine strokes n cells of ch rightward from (x, y)
func (b *Buffer) HLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		b.PutChar(x+i, y, ch)
	}
}

// VLine strokes n cells of ch downward from (x, y)
func (b *Buffer) VLine(x, y, n int, ch rune) {
	for i := 0; i < n; i++ {
		b.PutChar(x, y+i, ch)
	}
}

// Frame strokes a rectangle outline: corners first, then edge interiors
func (b *Buffer) Frame(x, y, w, h int) {
	b.PutChar(x, y, frameTL)
	b.PutChar(x+w-1, y, frameTR)
	b.PutChar(x, y+h-1, frameBL)
	b.PutChar(x+w-1, y+h-1, frameBR)

	b.HLine(x+1, y, w-2, frameH)
	b.HLine(x+1, y+h-1, w-2, frameH)
	b.VLine(x, y+1, h-2, frameV)
	b.VLine(x+w-1, y+1, h-2, frameV)
}
