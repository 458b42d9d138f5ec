// Command tui-demo renders an animated dashboard through the layout
// compositor onto the direct-ANSI buffer. Press q then Enter (or Ctrl-C)
// to quit.
package main

import (
	"bufio"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/nils-david-s/imt/terminal"
	"github.com/nils-david-s/imt/terminal/tui"
)

func main() {
	width, height := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h-1
		}
	}

	quit := make(chan struct{})
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if scanner.Text() == "q" {
				close(quit)
				return
			}
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	buf := terminal.NewBuffer(width, height, os.Stdout)
	root := tui.New(buf, 0, 0)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	frame := 0
	for {
		select {
		case <-quit:
			return
		case <-sigCh:
			return
		case <-ticker.C:
			frame++
			root.Clear()
			root.SetAvailable(tui.Bounded(width), tui.Bounded(height))
			drawDashboard(root, frame, time.Since(start))
			root.Flush()
		}
	}
}

func drawDashboard(root *tui.Compositor, frame int, elapsed time.Duration) {
	root.Frame(1, tui.BorderFull, tui.StretchFull, func(c *tui.Compositor) {
		c.Horizontal(func(c *tui.Compositor) {
			c.Label("layout demo", tui.WidthAuto, tui.AlignLeft)
		})
		c.LabelAlign("q+enter quits", 20, tui.AlignRight, tui.AlignRight)
		c.Space(1)

		c.Horizontal(func(c *tui.Compositor) {
			c.SetSpacing(2)

			c.Frame(1, tui.BorderFull, tui.StretchCompact, func(c *tui.Compositor) {
				c.Label("counters", tui.WidthAuto, tui.AlignLeft)
				c.Grid(2, 1, func(g *tui.Grid) {
					g.Cell(func(c *tui.Compositor) {
						c.Label("frame", tui.WidthAuto, tui.AlignLeft)
					})
					g.Cell(func(c *tui.Compositor) {
						c.Int(int64(frame), 8)
					})
					g.Cell(func(c *tui.Compositor) {
						c.Label("elapsed s", tui.WidthAuto, tui.AlignLeft)
					})
					g.Cell(func(c *tui.Compositor) {
						c.Float(elapsed.Seconds(), 1, 8)
					})
					g.Cell(func(c *tui.Compositor) {
						c.Label("sine", tui.WidthAuto, tui.AlignLeft)
					})
					g.Cell(func(c *tui.Compositor) {
						c.Float(math.Sin(float64(frame)/10), 3, 8)
					})
				})
			})

			c.Frame(1, tui.BorderFull, tui.StretchCompact, func(c *tui.Compositor) {
				c.Label("mixed leaves", tui.WidthAuto, tui.AlignLeft)
				c.Label("truncated to ten", 10, tui.AlignLeft)
				c.Label("right", 10, tui.AlignRight)
				c.Int(int64(-frame), 10)
			})
		})
	})
}
