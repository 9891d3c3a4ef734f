package mixer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wavedeck/wavedeck/navigation"
)

const stripWidth = 7

// Board is the whole mixer surface: the selected track's waveform on top,
// channel strips across the bottom, and a jump list over strip positions
type Board struct {
	Strips []*Strip
	Wave   *WaveView

	selected int
	jumps    *navigation.JumpList
}

// NewBoard creates a board over the given strips
func NewBoard(strips []*Strip, wave *WaveView) *Board {
	return &Board{
		Strips: strips,
		Wave:   wave,
		jumps:  navigation.NewJumpList(32),
	}
}

// Selected returns the selected strip index
func (b *Board) Selected() int { return b.selected }

// Select moves the selection without touching the jump list
// Out-of-range indices are clamped
func (b *Board) Select(i int) {
	if len(b.Strips) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(b.Strips) {
		i = len(b.Strips) - 1
	}
	b.selected = i
}

// Jump moves the selection and records the origin so Back can return
func (b *Board) Jump(i int) {
	b.jumps.Push(b.selected)
	b.Select(i)
}

// JumpBack returns to the previous recorded position
func (b *Board) JumpBack() {
	if pos, ok := b.jumps.Back(b.selected); ok {
		b.Select(pos)
	}
}

// JumpForward re-follows a jump undone by JumpBack
func (b *Board) JumpForward() {
	if pos, ok := b.jumps.Forward(); ok {
		b.Select(pos)
	}
}

// Draw lays the board out on the screen: waveform cells in the top rows,
// strips side by side below
func (b *Board) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	root := NewRegion(screen, 0, 0, w, h)

	waveRows := 0
	if b.Wave != nil {
		waveRows = b.Wave.session.Window().Rows
		b.Wave.DrawCells(root.Sub(0, 0, w, waveRows))
	}

	strips := root.Sub(0, waveRows+1, w, h-waveRows-1)
	for i, s := range b.Strips {
		col := strips.Sub(i*stripWidth, 0, stripWidth-1, strips.H)
		if col.W == 0 {
			break
		}
		s.Draw(col, i == b.selected)
	}
}
