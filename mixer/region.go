package mixer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region is a rectangular area of the screen with clipped drawing
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on the screen
	W, H   int // Region dimensions
}

// NewRegion creates a region covering the given screen rectangle
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	return Region{Screen: screen, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent's bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Cell sets one cell, ignoring coordinates outside the region
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Text draws a string at (x,y), truncated to fit the region width
// Wide runes count their display width
func (r Region) Text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.H || x >= r.W {
		return
	}
	s = runewidth.Truncate(s, r.W-x, "…")
	col := x
	for _, ch := range s {
		if col >= r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}

// Fill sets every cell in the region to the given rune and style
func (r Region) Fill(ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
		}
	}
}
