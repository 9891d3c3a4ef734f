package mixer

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wavedeck/wavedeck/audio"
	"github.com/wavedeck/wavedeck/canvas"
	"github.com/wavedeck/wavedeck/kitty"
)

// Cell pixel dimensions assumed when sizing the framebuffer for a cell
// window. Emulators scale the image into the placement anyway, so an exact
// match only affects sharpness.
const (
	CellPixelW = 8
	CellPixelH = 16
)

// Waveform gradient endpoints, quiet to loud
var (
	waveQuiet = colorful.Color{R: 0.25, G: 0.55, B: 0.95}
	waveLoud  = colorful.Color{R: 0.85, G: 0.35, B: 0.95}
)

// WaveView renders a track's peak array as an image anchored to the cell
// grid. It owns one canvas session; the text layer draws placeholder
// glyphs while the session transmits pixels for the same window.
type WaveView struct {
	session  *canvas.Session
	peaks    []audio.Peak
	progress float64
	dirty    bool
}

// NewWaveView creates a view for the given cell window, transmitting with
// the given image id
func NewWaveView(out io.Writer, id int, win canvas.Window) *WaveView {
	return &WaveView{
		session: canvas.NewSession(out, id, win.Cols*CellPixelW, win.Rows*CellPixelH, win),
	}
}

// SetPeaks replaces the waveform data and marks the view dirty
func (v *WaveView) SetPeaks(peaks []audio.Peak) {
	v.peaks = peaks
	v.dirty = true
}

// SetProgress moves the playhead, progress in [0,1]
func (v *WaveView) SetProgress(p float64) {
	if p == v.progress {
		return
	}
	v.progress = p
	v.dirty = true
}

// Dirty reports whether the view needs a render
func (v *WaveView) Dirty() bool { return v.dirty }

// Render rasterizes the waveform and transmits the framebuffer
// No-op while clean, so it is safe to call every tick
func (v *WaveView) Render() error {
	if !v.dirty {
		return nil
	}
	v.rasterize()
	if err := v.session.Render(); err != nil {
		return err
	}
	v.dirty = false
	return nil
}

// Destroy tears down the underlying session
func (v *WaveView) Destroy() error {
	return v.session.Destroy()
}

func (v *WaveView) rasterize() {
	fb := v.session.Buffer()
	w, h := fb.Width(), fb.Height()
	mid := h / 2

	fb.Clear(canvas.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff})
	fb.HLine(0, w-1, mid, canvas.RGBA{R: 0x30, G: 0x34, B: 0x44, A: 0xff})

	for x := 0; x < w; x++ {
		p := v.peakAt(x, w)
		amp := p.Max
		if -p.Min > amp {
			amp = -p.Min
		}
		c := waveColor(amp)
		fb.VLine(x, mid-int(p.Max*float64(mid)), mid-int(p.Min*float64(mid)), c)
	}

	// Playhead on top of the waveform
	if v.progress > 0 {
		x := int(v.progress * float64(w-1))
		fb.VLine(x, 0, h-1, canvas.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}
}

// peakAt maps a framebuffer column onto the peak array
func (v *WaveView) peakAt(x, w int) audio.Peak {
	if len(v.peaks) == 0 {
		return audio.Peak{}
	}
	i := x * len(v.peaks) / w
	if i >= len(v.peaks) {
		i = len(v.peaks) - 1
	}
	return v.peaks[i]
}

func waveColor(amp float64) canvas.RGBA {
	if amp > 1 {
		amp = 1
	}
	c := waveQuiet.BlendHcl(waveLoud, amp).Clamped()
	r, g, b := c.RGB255()
	return canvas.RGBA{R: r, G: g, B: b, A: 0xff}
}

// DrawCells writes the placeholder glyph matrix into the region
// The foreground color carries the image id; that is how the emulator
// associates each placeholder cell with the transmitted image.
func (v *WaveView) DrawCells(r Region) {
	win := v.session.Window()
	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(v.session.ID())))
	grid := kitty.Placeholders(win.Cols, win.Rows)
	for row, cells := range grid {
		for col, glyph := range cells {
			runes := []rune(glyph)
			if len(runes) == 0 {
				continue
			}
			if col < r.W && row < r.H {
				r.Screen.SetContent(r.X+col, r.Y+row, runes[0], runes[1:], style)
			}
		}
	}
}
