package tui

import (
	"bytes"
	"io"
	"testing"

	"github.com/nils-david-s/imt/terminal"
)

func newTestTarget(w, h int) *terminal.Buffer {
	return terminal.NewBuffer(w, h, io.Discard)
}

func TestVerticalFold(t *testing.T) {
	buf := newTestTarget(20, 10)
	root := New(buf, 0, 0)
	root.SetSpacing(1)

	root.Vertical(func(c *Compositor) {
		c.Label("abc", WidthAuto, AlignLeft)
		c.Label("de", WidthAuto, AlignLeft)
	})

	// Folded height is h1+h2+spacing, width the widest leaf
	if root.maxY != 3 {
		t.Errorf("Expected folded height 3, got %d", root.maxY)
	}
	if root.maxX != 3 {
		t.Errorf("Expected folded width 3, got %d", root.maxX)
	}
	if root.usedX != 3 {
		t.Errorf("Expected cross-axis used 3, got %d", root.usedX)
	}
}

func TestHorizontalFold(t *testing.T) {
	buf := newTestTarget(20, 10)
	root := New(buf, 0, 0)
	root.SetSpacing(2)

	root.Horizontal(func(c *Compositor) {
		c.Label("abc", WidthAuto, AlignLeft)
		c.Label("de", WidthAuto, AlignLeft)
	})

	// Net cursor travel: 3 + 2 + 2
	if root.maxX != 7 {
		t.Errorf("Expected folded width 7, got %d", root.maxX)
	}
	if root.maxY != 1 {
		t.Errorf("Expected folded height 1, got %d", root.maxY)
	}
}

func TestSpace(t *testing.T) {
	buf := newTestTarget(10, 10)
	root := New(buf, 0, 0)

	root.Space(3)
	if root.y != 3 {
		t.Errorf("Expected cursor y 3, got %d", root.y)
	}

	root.Horizontal(func(c *Compositor) {
		c.Space(4)
		if c.x != 4 {
			t.Errorf("Expected cursor x 4, got %d", c.x)
		}
	})
}

func TestLabelTruncation(t *testing.T) {
	buf := newTestTarget(10, 2)
	root := New(buf, 0, 0)

	root.Label("abcdef", 3, AlignLeft)

	if row := buf.Row(0); row[:4] != "abc " {
		t.Errorf("Expected truncation to %q, got %q", "abc ", row[:4])
	}
}

func TestLabelRightAlign(t *testing.T) {
	buf := newTestTarget(10, 2)
	root := New(buf, 0, 0)

	root.Label("ab", 5, AlignRight)

	if row := buf.Row(0); row[:5] != "   ab" {
		t.Errorf("Expected %q, got %q", "   ab", row[:5])
	}
}

func TestLabelAlignOuterRight(t *testing.T) {
	buf := newTestTarget(10, 2)
	root := New(buf, 0, 0)
	root.SetAvailable(Bounded(10), Unbounded())

	// Field's right edge sits on the budget boundary, text inner-right
	root.LabelAlign("x", 5, AlignRight, AlignRight)

	if ch, _ := buf.Rune(9, 0); ch != 'x' {
		t.Errorf("Expected 'x' at column 9, got %q", ch)
	}
}

func TestLabelAlignUnknownBudgetFallsBack(t *testing.T) {
	buf := newTestTarget(10, 2)
	root := New(buf, 0, 0)

	// Outer-right with no known budget degrades to cursor-flush
	root.LabelAlign("x", 5, AlignRight, AlignRight)

	if ch, _ := buf.Rune(4, 0); ch != 'x' {
		t.Errorf("Expected 'x' at column 4, got %q", ch)
	}
}

func TestFrameBorderAndPadding(t *testing.T) {
	buf := newTestTarget(10, 5)
	root := New(buf, 0, 0)

	root.Frame(1, BorderFull, StretchCompact, func(c *Compositor) {
		c.Label("hi", WidthAuto, AlignLeft)
	})

	want := []string{
		"+--+",
		"|hi|",
		"+--+",
	}
	for y, row := range want {
		if got := buf.Row(y)[:4]; got != row {
			t.Errorf("Expected frame row %d %q, got %q", y, row, got)
		}
	}
	if root.maxX != 4 || root.maxY != 3 {
		t.Errorf("Expected 4x3 fold, got %dx%d", root.maxX, root.maxY)
	}
}

func TestFrameStretchFull(t *testing.T) {
	buf := newTestTarget(12, 6)
	root := New(buf, 0, 0)
	root.SetAvailable(Bounded(10), Bounded(5))

	root.Frame(0, BorderFull, StretchFull, func(c *Compositor) {})

	if ch, _ := buf.Rune(9, 0); ch != '+' {
		t.Errorf("Expected stretched corner at (9, 0), got %q", ch)
	}
	if ch, _ := buf.Rune(9, 4); ch != '+' {
		t.Errorf("Expected stretched corner at (9, 4), got %q", ch)
	}
	if root.maxX != 10 || root.maxY != 5 {
		t.Errorf("Expected 10x5 fold, got %dx%d", root.maxX, root.maxY)
	}
}

func TestFramePaddingCollapsesTightBudget(t *testing.T) {
	buf := newTestTarget(10, 5)
	root := New(buf, 0, 0)
	root.SetAvailable(Bounded(2), Bounded(2))

	root.Frame(1, BorderNone, StretchCompact, func(c *Compositor) {
		if _, known := c.availX.Limit(); known {
			t.Error("Expected exhausted padded budget to be unbounded")
		}
		if _, known := c.availY.Limit(); known {
			t.Error("Expected exhausted padded budget to be unbounded")
		}
	})
}

func TestBudgetExhaustionInScope(t *testing.T) {
	buf := newTestTarget(10, 10)
	root := New(buf, 0, 0)
	root.SetAvailable(Unbounded(), Bounded(2))

	root.Label("a", WidthAuto, AlignLeft)
	root.Label("b", WidthAuto, AlignLeft)
	if limit, known := root.availY.Limit(); !known || limit != 0 {
		t.Errorf("Expected bounded 0 after two rows, got %d known=%t", limit, known)
	}

	// The third row overruns; the budget never clamps to a new finite value
	root.Label("c", WidthAuto, AlignLeft)
	if _, known := root.availY.Limit(); known {
		t.Error("Expected overrun budget to become unbounded")
	}
}

func TestClearResetsScope(t *testing.T) {
	buf := newTestTarget(10, 4)
	root := New(buf, 0, 0)
	root.SetAvailable(Bounded(10), Bounded(4))
	root.SetSpacing(2)
	root.Label("junk", WidthAuto, AlignLeft)

	root.Clear()

	if root.x != 0 || root.y != 0 || root.maxX != 0 || root.maxY != 0 {
		t.Errorf("Expected zeroed cursor and extents, got (%d,%d) max (%d,%d)",
			root.x, root.y, root.maxX, root.maxY)
	}
	if _, known := root.availX.Limit(); known {
		t.Error("Expected unbounded budget after clear")
	}
	if root.spacing != 0 {
		t.Errorf("Expected spacing reset, got %d", root.spacing)
	}
	if row := buf.Row(0); row != "          " {
		t.Errorf("Expected blanked grid, got %q", row)
	}
}

func TestLabelFlushEndToEnd(t *testing.T) {
	var out bytes.Buffer
	buf := terminal.NewBuffer(10, 3, &out)
	root := New(buf, 0, 0)

	root.Label("hi", WidthAuto, AlignLeft)
	root.Flush()

	want := "\x1b[2J\x1b[H" +
		"hi        \n" +
		"          \n" +
		"          \n"
	if got := out.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
