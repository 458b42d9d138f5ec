// Command tcell-demo renders the same compositor-driven layout onto a
// tcell screen, showing render-target substitutability. Press q, Esc or
// Ctrl-C to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nils-david-s/imt/tcellterm"
	"github.com/nils-david-s/imt/terminal/tui"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tcell-demo:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "tcell-demo:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	target := tcellterm.New(screen)
	root := tui.New(target, 0, 0)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			frame++
			width, height := screen.Size()
			root.Clear()
			root.SetAvailable(tui.Bounded(width), tui.Bounded(height))
			draw(root, frame)
			root.Flush()
		}
	}
}

func draw(root *tui.Compositor, frame int) {
	root.Frame(1, tui.BorderFull, tui.StretchFull, func(c *tui.Compositor) {
		c.Label("tcell target", tui.WidthAuto, tui.AlignLeft)
		c.LabelAlign("q quits", 12, tui.AlignRight, tui.AlignRight)
		c.Space(1)

		c.Grid(3, 2, func(g *tui.Grid) {
			for col := 0; col < 3; col++ {
				n := col
				g.Cell(func(c *tui.Compositor) {
					c.Label("ch", tui.WidthAuto, tui.AlignLeft)
					c.Int(int64(n), 3)
				})
			}
			for col := 0; col < 3; col++ {
				n := (frame + col*17) % 1000
				g.Cell(func(c *tui.Compositor) {
					c.Int(int64(n), 5)
				})
			}
		})
	})
}
