package tui

import (
	"github.com/nils-david-s/imt/terminal"
)

// Widget is a fixed-size drawable consumed by the flow accumulators
type Widget interface {
	Width() int
	Height() int
	Render(t terminal.Target, x, y int)
}

// Text is a one-row widget rendering a string at its natural length
type Text string

func (s Text) Width() int {
	return len([]rune(string(s)))
}

func (s Text) Height() int {
	return 1
}

func (s Text) Render(t terminal.Target, x, y int) {
	t.WriteString(x, y, string(s))
}

// Flow is a single-pass position accumulator. Unlike Compositor scopes,
// flows place widgets as they arrive with no budget negotiation or
// two-pass sizing; they only track the extent of what was placed.
// Flows link manually: Place seeds another flow's position at this flow's
// cursor, Absorb folds another flow's final size into this flow's advance.
type Flow interface {
	Width() int
	Height() int
	MoveTo(x, y int)
	Place(next Flow)
	Absorb(inner Flow)
}

// VFlow stacks widgets downward with a fixed gap
type VFlow struct {
	x, y    int
	gap     int
	cursorY int
	width   int
}

// NewVFlow creates a vertical flow at (x, y)
func NewVFlow(x, y, gap int) *VFlow {
	return &VFlow{x: x, y: y, gap: gap, cursorY: y}
}

// Add renders w at the cursor and advances past it
func (v *VFlow) Add(t terminal.Target, w Widget) {
	w.Render(t, v.x, v.cursorY)
	if w.Width() > v.width {
		v.width = w.Width()
	}
	v.cursorY += w.Height() + v.gap
}

// AddText renders s as a one-row widget
func (v *VFlow) AddText(t terminal.Target, s string) {
	v.Add(t, Text(s))
}

// Width returns the widest placed item
func (v *VFlow) Width() int {
	return v.width
}

// Height returns the net vertical extent, excluding the trailing gap
func (v *VFlow) Height() int {
	h := v.cursorY - v.y - v.gap
	if h < 0 {
		h = 0
	}
	return h
}

func (v *VFlow) MoveTo(x, y int) {
	v.x = x
	v.y = y
	v.cursorY = y
}

func (v *VFlow) Place(next Flow) {
	next.MoveTo(v.x, v.cursorY)
}

func (v *VFlow) Absorb(inner Flow) {
	v.cursorY += inner.Height() + v.gap
	if inner.Width() > v.width {
		v.width = inner.Width()
	}
}

// HFlow places widgets rightward with a fixed gap
type HFlow struct {
	x, y    int
	gap     int
	cursorX int
	height  int
}

// NewHFlow creates a horizontal flow at (x, y)
func NewHFlow(x, y, gap int) *HFlow {
	return &HFlow{x: x, y: y, gap: gap, cursorX: x}
}

// Add renders w at the cursor and advances past it
func (h *HFlow) Add(t terminal.Target, w Widget) {
	w.Render(t, h.cursorX, h.y)
	if w.Height() > h.height {
		h.height = w.Height()
	}
	h.cursorX += w.Width() + h.gap
}

// AddText renders s as a one-row widget
func (h *HFlow) AddText(t terminal.Target, s string) {
	h.Add(t, Text(s))
}

// Width returns the net horizontal extent, excluding the trailing gap
func (h *HFlow) Width() int {
	w := h.cursorX - h.x - h.gap
	if w < 0 {
		w = 0
	}
	return w
}

// Height returns the tallest placed item
func (h *HFlow) Height() int {
	return h.height
}

func (h *HFlow) MoveTo(x, y int) {
	h.x = x
	h.y = y
	h.cursorX = x
}

func (h *HFlow) Place(next Flow) {
	next.MoveTo(h.cursorX, h.y)
}

func (h *HFlow) Absorb(inner Flow) {
	h.cursorX += inner.Width() + h.gap
	if inner.Height() > h.height {
		h.height = inner.Height()
	}
}

// GridFlow places widgets row-major into fixed columns, tracking the
// widest item per column and tallest per row as it goes. Positions are
// prefix sums of the sizes known so far, so later oversized items do not
// reposition earlier ones.
type GridFlow struct {
	x, y       int
	cols       int
	gapX, gapY int

	col, row int

	colWidths  []int
	rowHeights []int
}

// NewGridFlow creates a cols-column grid flow at (x, y)
func NewGridFlow(x, y, cols, gapX, gapY int) *GridFlow {
	return &GridFlow{
		x:         x,
		y:         y,
		cols:      cols,
		gapX:      gapX,
		gapY:      gapY,
		colWidths: make([]int, cols),
	}
}

// position returns the cursor cell's origin from known prefix sums
func (g *GridFlow) position() (int, int) {
	wx := g.x
	for c := 0; c < g.col; c++ {
		wx += g.colWidths[c] + g.gapX
	}
	wy := g.y
	for r := 0; r < g.row; r++ {
		wy += g.rowHeights[r] + g.gapY
	}
	return wx, wy
}

// Add renders w into the cursor cell and advances to the next cell
func (g *GridFlow) Add(t terminal.Target, w Widget) {
	wx, wy := g.position()
	w.Render(t, wx, wy)

	if w.Width() > g.colWidths[g.col] {
		g.colWidths[g.col] = w.Width()
	}
	if len(g.rowHeights) <= g.row {
		g.rowHeights = append(g.rowHeights, w.Height())
	} else if w.Height() > g.rowHeights[g.row] {
		g.rowHeights[g.row] = w.Height()
	}

	g.col++
	if g.col >= g.cols {
		g.col = 0
		g.row++
	}
}

// AddText renders s as a one-row widget
func (g *GridFlow) AddText(t terminal.Target, s string) {
	g.Add(t, Text(s))
}

// Width returns the column sum plus gaps
func (g *GridFlow) Width() int {
	gaps := g.cols - 1
	if gaps < 0 {
		gaps = 0
	}
	return sum(g.colWidths) + gaps*g.gapX
}

// Height returns the row sum plus gaps
func (g *GridFlow) Height() int {
	gaps := len(g.rowHeights) - 1
	if gaps < 0 {
		gaps = 0
	}
	return sum(g.rowHeights) + gaps*g.gapY
}

func (g *GridFlow) MoveTo(x, y int) {
	g.x = x
	g.y = y
}

func (g *GridFlow) Place(next Flow) {
	next.MoveTo(g.position())
}

// Absorb folds a nested flow's size into the cursor cell without
// advancing; the next Add reuses the same cell
func (g *GridFlow) Absorb(inner Flow) {
	if inner.Width() > g.colWidths[g.col] {
		g.colWidths[g.col] = inner.Width()
	}
	if len(g.rowHeights) <= g.row {
		g.rowHeights = append(g.rowHeights, inner.Height())
	} else if inner.Height() > g.rowHeights[g.row] {
		g.rowHeights[g.row] = inner.Height()
	}
}
