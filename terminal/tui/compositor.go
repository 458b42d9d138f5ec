package tui

import (
	"github.com/nils-david-s/imt/terminal"
)

// Align selects flush-to-start or flush-to-end placement
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Border selects whether a frame strokes its box
type Border uint8

const (
	BorderNone Border = iota
	BorderFull
)

// Stretch selects whether a frame grows to fill its parent's known budget
type Stretch uint8

const (
	StretchCompact Stretch = iota
	StretchFull
)

// axis is the direction successive items are placed along
type axis uint8

const (
	axisVertical axis = iota
	axisHorizontal
)

// WidthAuto sizes a leaf to its content's natural length
const WidthAuto = -1

// Compositor is a cursor-driven layout scope bound to one terminal.Target.
// Exactly one Compositor is live for a given region at any instant: nested
// scopes receive their own instance, valid only for the duration of the
// closure, and their aggregate size folds into the parent on return.
type Compositor struct {
	target terminal.Target

	x, y       int // absolute cursor
	maxX, maxY int // high-water extents, only ever grow

	availX, availY Budget
	usedX, usedY   int // cross-axis footprint trackers

	axis    axis
	spacing int
	draw    bool
}

// New creates a root scope over target, cursor seeded at (x, y),
// vertical main axis, unbounded budget, drawing enabled
func New(target terminal.Target, x, y int) *Compositor {
	return &Compositor{
		target: target,
		x:      x,
		y:      y,
		maxX:   x,
		maxY:   y,
		axis:   axisVertical,
		draw:   true,
	}
}

// SetAvailable seeds the per-axis budgets, typically on the root scope
// so outer-aligned fields and stretched frames know the grid extent
func (c *Compositor) SetAvailable(x, y Budget) {
	c.availX = x
	c.availY = y
}

// SetSpacing sets the inter-item spacing for this scope.
// Nested scopes inherit the value in effect when they open.
func (c *Compositor) SetSpacing(n int) {
	c.spacing = n
}

// Flush delivers the underlying target's content
func (c *Compositor) Flush() {
	c.target.Flush()
}

// Clear blanks the target and resets this scope to root defaults,
// for starting a fresh frame
func (c *Compositor) Clear() {
	c.target.Clear()
	c.x = 0
	c.y = 0
	c.maxX = 0
	c.maxY = 0
	c.availX = Unbounded()
	c.availY = Unbounded()
	c.usedX = 0
	c.usedY = 0
	c.axis = axisVertical
	c.spacing = 0
}

// advance folds a w x h footprint placed at the cursor: extents grow,
// the main axis consumes budget and moves the cursor, the cross axis
// tracks its widest item
func (c *Compositor) advance(w, h int) {
	if c.x+w > c.maxX {
		c.maxX = c.x + w
	}
	if c.y+h > c.maxY {
		c.maxY = c.y + h
	}

	switch c.axis {
	case axisVertical:
		if w > c.usedX {
			c.usedX = w
		}
		c.availY = c.availY.Consume(h)
		c.y += h + c.spacing
	case axisHorizontal:
		if h > c.usedY {
			c.usedY = h
		}
		c.availX = c.availX.Consume(w)
		c.x += w + c.spacing
	}
}

// child opens a nested scope at the cursor, runs f to completion, and
// folds the child's aggregate size into this scope. The child's main axis
// contributes net cursor travel; the cross axis contributes the child's
// widest-item tracker.
func (c *Compositor) child(a axis, spacing int, f func(*Compositor)) {
	startX, startY := c.x, c.y

	child := &Compositor{
		target:  c.target,
		x:       startX,
		y:       startY,
		maxX:    startX,
		maxY:    startY,
		availX:  c.availX,
		availY:  c.availY,
		axis:    a,
		spacing: spacing,
		draw:    c.draw,
	}
	f(child)

	var w, h int
	switch a {
	case axisVertical:
		w = child.usedX
		h = child.maxY - startY
	case axisHorizontal:
		w = child.maxX - startX
		h = child.usedY
	}
	c.advance(w, h)
}

// Space advances the main axis by n cells without drawing
func (c *Compositor) Space(n int) {
	if c.axis == axisVertical {
		c.advance(0, n)
	} else {
		c.advance(n, 0)
	}
}

// Vertical runs f in a nested scope stacking items downward
func (c *Compositor) Vertical(f func(*Compositor)) {
	c.child(axisVertical, c.spacing, f)
}

// Horizontal runs f in a nested scope placing items rightward
func (c *Compositor) Horizontal(f func(*Compositor)) {
	c.child(axisHorizontal, c.spacing, f)
}

// Frame runs f in a scope inset by padding on every side. The box size is
// the content extent plus padding; StretchFull raises it to the parent's
// known budget, and BorderFull strokes the final box at the scope origin.
func (c *Compositor) Frame(padding int, border Border, stretch Stretch, f func(*Compositor)) {
	startX, startY := c.x, c.y

	child := &Compositor{
		target:  c.target,
		x:       startX + padding,
		y:       startY + padding,
		maxX:    startX + padding,
		maxY:    startY + padding,
		availX:  c.availX.Inset(padding),
		availY:  c.availY.Inset(padding),
		axis:    axisVertical,
		spacing: c.spacing,
		draw:    c.draw,
	}
	f(child)

	w := child.maxX - startX + padding
	h := child.maxY - startY + padding

	if stretch == StretchFull {
		if ax := c.availX.Or(0); ax > w {
			w = ax
		}
		if ay := c.availY.Or(0); ay > h {
			h = ay
		}
	}

	if border == BorderFull {
		c.strokeBorder(startX, startY, w, h)
	}
	c.advance(w, h)
}

// strokeBorder draws the frame box with +, - and | glyphs
func (c *Compositor) strokeBorder(x, y, w, h int) {
	if !c.draw {
		return
	}
	for dx := 0; dx < w; dx++ {
		c.target.PutChar(x+dx, y, '-')
		c.target.PutChar(x+dx, y+h-1, '-')
	}
	for dy := 0; dy < h; dy++ {
		c.target.PutChar(x, y+dy, '|')
		c.target.PutChar(x+w-1, y+dy, '|')
	}

	c.target.PutChar(x, y, '+')
	c.target.PutChar(x+w-1, y, '+')
	c.target.PutChar(x, y+h-1, '+')
	c.target.PutChar(x+w-1, y+h-1, '+')
}

// Label places text in a one-row field of the given width (WidthAuto for
// natural length). Longer text is truncated to the field, leading runes
// kept; align picks which end of the field the text sits flush against.
func (c *Compositor) Label(text string, width int, align Align) {
	runes := []rune(text)
	w := width
	if w < 0 {
		w = len(runes)
	}
	visible := len(runes)
	if visible > w {
		visible = w
	}

	startX := c.x
	if align == AlignRight {
		startX = c.x + w - visible
	}
	if c.draw {
		for i := 0; i < w; i++ {
			c.target.PutChar(c.x+i, c.y, terminal.Blank)
		}
		c.target.WriteString(startX, c.y, string(runes[:visible]))
	}
	c.advance(w, 1)
}

// LabelAlign composes two alignments: outer picks where the field starts,
// cursor-flush or flush against the far edge of the known horizontal budget
// (cursor-flush when the budget is unknown); inner picks where the text
// sits inside the field.
func (c *Compositor) LabelAlign(text string, width int, inner, outer Align) {
	runes := []rune(text)
	w := width
	if w < 0 {
		w = len(runes)
	}
	visible := len(runes)
	if visible > w {
		visible = w
	}

	startX := c.x
	if ax, known := c.availX.Limit(); known && outer == AlignRight {
		if d := ax - w; d > 0 {
			startX = c.x + d
		}
	}
	if inner == AlignRight {
		startX += w - visible
	}

	if c.draw {
		for i := 0; i < w; i++ {
			c.target.PutChar(c.x+i, c.y, terminal.Blank)
		}
		c.target.WriteString(startX, c.y, string(runes[:visible]))
	}
	if w > c.usedX {
		c.usedX = w
	}
	c.advance(w, 1)
}

// Int places a right-justified integer field of the given width
func (c *Compositor) Int(value int64, width int) {
	if c.draw {
		c.target.WriteIntRight(c.x, c.y, value, width)
	}
	c.advance(width, 1)
}

// Float places a right-justified fixed-point field of the given width
func (c *Compositor) Float(value float64, precision, width int) {
	if c.draw {
		c.target.WriteFloatRight(c.x, c.y, value, width, precision)
	}
	c.advance(width, 1)
}
