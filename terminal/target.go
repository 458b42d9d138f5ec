package terminal

// Cell represents a single grid cell
type Cell struct {
	Rune rune
}

// Blank is the default cell content
const Blank = ' '

// Target is the drawing surface consumed by the layout compositors.
// All writes are bounds-clipped: coordinates outside the surface are
// silently dropped, never reported. None of the operations can fail.
type Target interface {
	// Clear resets every cell to blank
	Clear()

	// PutChar writes one cell, no-op when (x, y) is out of bounds
	PutChar(x, y int, ch rune)

	// WriteString writes runes left-to-right from x, stopping at the right
	// edge without wrapping. Trailing cells are left untouched.
	WriteString(x, y int, s string)

	// WriteIntRight renders a right-justified signed integer into a field of
	// exactly width cells. The field is blanked first. Digits that do not fit
	// are dropped from the most-significant side.
	WriteIntRight(x, y int, value int64, width int)

	// WriteFloatRight renders a fixed-point value (rounded to precision
	// decimal digits, ties away from zero) right-justified into a field of
	// exactly width cells, with the same left-edge truncation policy.
	WriteFloatRight(x, y int, value float64, width, precision int)

	// Flush delivers the full surface to its output
	Flush()

	// HLine strokes n cells of ch rightward from (x, y), each cell clipped independently
	HLine(x, y, n int, ch rune)

	// VLine strokes n cells of ch downward from (x, y), each cell clipped independently
	VLine(x, y, n int, ch rune)

	// Frame strokes a rectangle outline with corner glyphs.
	// Callers must keep w >= 2 and h >= 2; smaller boxes degrade to
	// overlapping corner glyphs.
	Frame(x, y, w, h int)
}
