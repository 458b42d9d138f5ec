// Package terminal provides a fixed-size character grid with direct ANSI output.
//
// Features:
//   - Bounds-clipped single-cell and string writes (out-of-range cells are dropped)
//   - Right-justified fixed-width integer and fixed-point field writers
//   - Line and frame stroke primitives
//   - Whole-buffer flush: clear-and-home sequence followed by every row
//
// The Target interface is the capability surface consumed by the layout
// package; Buffer is the canonical implementation. Any substitute target
// (an in-memory double, a tcell-backed screen) satisfying Target composes
// identically.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Content is treated as single-column printable units; there is
// no wide-character or grapheme handling.
package terminal
