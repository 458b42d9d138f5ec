package tui

import (
	"testing"
)

func TestVFlow(t *testing.T) {
	buf := newTestTarget(10, 5)
	v := NewVFlow(0, 0, 1)

	v.AddText(buf, "abc")
	v.AddText(buf, "de")

	if v.Width() != 3 {
		t.Errorf("Expected width 3, got %d", v.Width())
	}
	if v.Height() != 3 {
		t.Errorf("Expected height 3 (two rows plus gap), got %d", v.Height())
	}
	if ch, _ := buf.Rune(0, 0); ch != 'a' {
		t.Errorf("Expected 'a' at (0, 0), got %q", ch)
	}
	if ch, _ := buf.Rune(0, 2); ch != 'd' {
		t.Errorf("Expected 'd' at (0, 2), got %q", ch)
	}
}

func TestVFlowEmpty(t *testing.T) {
	v := NewVFlow(0, 0, 2)
	if v.Height() != 0 {
		t.Errorf("Expected empty flow height 0, got %d", v.Height())
	}
	if v.Width() != 0 {
		t.Errorf("Expected empty flow width 0, got %d", v.Width())
	}
}

func TestHFlow(t *testing.T) {
	buf := newTestTarget(10, 5)
	h := NewHFlow(0, 0, 2)

	h.AddText(buf, "ab")
	h.AddText(buf, "c")

	if h.Width() != 5 {
		t.Errorf("Expected width 5 (two items plus gap), got %d", h.Width())
	}
	if h.Height() != 1 {
		t.Errorf("Expected height 1, got %d", h.Height())
	}
	if ch, _ := buf.Rune(4, 0); ch != 'c' {
		t.Errorf("Expected 'c' at (4, 0), got %q", ch)
	}
}

func TestGridFlow(t *testing.T) {
	buf := newTestTarget(20, 5)
	g := NewGridFlow(0, 0, 2, 1, 1)

	g.AddText(buf, "aaa")
	g.AddText(buf, "bbbbb")
	g.AddText(buf, "cc")
	g.AddText(buf, "ddddddd")

	// Positions come from sizes known at placement time
	if ch, _ := buf.Rune(4, 0); ch != 'b' {
		t.Errorf("Expected 'b' at (4, 0), got %q", ch)
	}
	if ch, _ := buf.Rune(0, 2); ch != 'c' {
		t.Errorf("Expected 'c' at (0, 2), got %q", ch)
	}
	if ch, _ := buf.Rune(4, 2); ch != 'd' {
		t.Errorf("Expected 'd' at (4, 2), got %q", ch)
	}

	if g.Width() != 11 {
		t.Errorf("Expected width 11, got %d", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("Expected height 3, got %d", g.Height())
	}
}

func TestFlowLinking(t *testing.T) {
	buf := newTestTarget(10, 5)

	v := NewVFlow(0, 0, 0)
	v.AddText(buf, "one")

	h := NewHFlow(0, 0, 0)
	v.Place(h)
	h.AddText(buf, "ab")
	h.AddText(buf, "cd")
	v.Absorb(h)

	if ch, _ := buf.Rune(0, 1); ch != 'a' {
		t.Errorf("Expected nested flow seeded at (0, 1), got %q", ch)
	}
	if v.Height() != 2 {
		t.Errorf("Expected height 2 after absorbing, got %d", v.Height())
	}
	if v.Width() != 4 {
		t.Errorf("Expected width 4 after absorbing, got %d", v.Width())
	}
}
