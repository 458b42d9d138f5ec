// Package tui provides immediate-mode layout composition over a terminal.Target.
//
// Core abstraction is Compositor, a cursor-driven scope with a main axis.
// Callers describe content declaratively via nested closures; positions and
// box sizes are computed as the closures execute, in a single synchronous
// pass. There is no retained widget tree.
//
// Design principles:
//   - Immediate mode: no retained state, the driver owns the render loop
//   - One live scope per region: each nested closure receives its own
//     Compositor, folded into the parent when the closure returns
//   - No error channel: out-of-range writes clip, oversized values truncate,
//     exhausted budgets fall back to unconstrained layout
//
// Usage pattern:
//
//	buf := terminal.NewBuffer(w, h, os.Stdout)
//	root := tui.New(buf, 0, 0)
//	root.SetAvailable(tui.Bounded(w), tui.Bounded(h))
//
//	root.Frame(1, tui.BorderFull, tui.StretchCompact, func(c *tui.Compositor) {
//	    c.Label("title", tui.WidthAuto, tui.AlignLeft)
//	    c.Horizontal(func(c *tui.Compositor) {
//	        c.Label("count:", tui.WidthAuto, tui.AlignLeft)
//	        c.Int(n, 6)
//	    })
//	})
//	root.Flush()
//
// Grid adds a fixed-column flow on top of the same nesting mechanism: its
// population closure runs twice, first to measure natural column widths and
// row heights, then to draw with those measurements as per-cell budgets.
//
// The flow accumulators (VFlow, HFlow, GridFlow) are a simpler single-pass
// positioning surface over the Widget interface, without budget negotiation
// or two-pass sizing.
package tui
