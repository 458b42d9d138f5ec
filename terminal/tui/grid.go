package tui

// Grid is a fixed-column layout scope populated through two executions of
// the same closure: a measure pass discovering natural column widths and
// row heights, then a draw pass using those measurements as per-cell
// budgets. Cells are addressed row-major by a monotonically incrementing
// index.
type Grid struct {
	parent *Compositor

	startX, startY int
	cols           int
	spacing        int // inter-item spacing inside cells, inherited from the parent scope
	cellSpacing    int // spacing between grid cells

	cellIdx    int
	colWidths  []int
	rowHeights []int
	draw       bool
}

// Cell opens the next cell scope and runs f in it. The cell's origin is the
// prefix sum of the currently-known column widths and row heights plus
// spacing; its budget is the currently-known size of its column and row.
// During the measure pass those are all zero, so content that branches on
// available budget sees no room there; leaf footprints come from content,
// so final sizing is unaffected.
//
// The population closure must issue the same sequence and count of Cell
// calls on both passes; diverging between passes is a contract violation
// with unspecified results.
func (g *Grid) Cell(f func(*Compositor)) {
	col := g.cellIdx % g.cols
	row := g.cellIdx / g.cols

	for len(g.colWidths) < g.cols {
		g.colWidths = append(g.colWidths, 0)
	}
	for len(g.rowHeights) <= row {
		g.rowHeights = append(g.rowHeights, 0)
	}

	startX := g.startX + sum(g.colWidths[:col]) + col*g.cellSpacing
	startY := g.startY + sum(g.rowHeights[:row]) + row*g.cellSpacing

	cell := &Compositor{
		target:  g.parent.target,
		x:       startX,
		y:       startY,
		maxX:    startX,
		maxY:    startY,
		availX:  Bounded(g.colWidths[col]),
		availY:  Bounded(g.rowHeights[row]),
		axis:    axisHorizontal,
		spacing: g.spacing,
		draw:    g.draw,
	}
	f(cell)

	if w := cell.maxX - startX; w > g.colWidths[col] {
		g.colWidths[col] = w
	}
	if h := cell.maxY - startY; h > g.rowHeights[row] {
		g.rowHeights[row] = h
	}

	g.cellIdx++
}

// Grid runs f twice over a cols-column grid: once with zero-seeded
// measurements and drawing suppressed, once with the measured vectors and
// drawing enabled. The grid's total footprint folds into this scope once:
// width is the column sum plus spacing between columns, height the row sum
// plus spacing between rows.
func (c *Compositor) Grid(cols, spacing int, f func(*Grid)) {
	startX, startY := c.x, c.y

	measure := &Grid{
		parent:      c,
		startX:      startX,
		startY:      startY,
		cols:        cols,
		spacing:     c.spacing,
		cellSpacing: spacing,
		colWidths:   make([]int, cols),
		rowHeights:  make([]int, 1),
		draw:        false,
	}
	f(measure)

	g := &Grid{
		parent:      c,
		startX:      startX,
		startY:      startY,
		cols:        cols,
		spacing:     c.spacing,
		cellSpacing: spacing,
		colWidths:   measure.colWidths,
		rowHeights:  measure.rowHeights,
		draw:        true,
	}
	f(g)

	gaps := cols - 1
	if gaps < 0 {
		gaps = 0
	}
	w := sum(g.colWidths) + g.cellSpacing*gaps
	h := sum(g.rowHeights) + g.cellSpacing*(len(g.rowHeights)-1)
	c.advance(w, h)
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
