package mixer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fader block characters, 8 levels per cell
var faderChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Meter gradient endpoints, blended in HCL so the midpoints stay vivid
var (
	meterQuiet = colorful.Color{R: 0.18, G: 0.75, B: 0.45}
	meterLoud  = colorful.Color{R: 0.90, G: 0.25, B: 0.20}
)

// Strip is one mixer channel: name, fader, pan, mute and a live level
type Strip struct {
	Name  string
	Gain  float64 // linear fader, 1 is unity
	Pan   float64 // -1 left to 1 right
	Muted bool
	Level float64 // meter deflection 0..1
}

// meterColor maps a meter fraction onto the quiet-to-loud gradient
func meterColor(frac float64) tcell.Color {
	c := meterQuiet.BlendHcl(meterLoud, frac).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders the strip into its region: name row, vertical fader and
// meter columns, then pan and mute rows at the bottom
func (s *Strip) Draw(r Region, selected bool) {
	style := tcell.StyleDefault
	if selected {
		style = style.Bold(true).Underline(true)
	}
	r.Text(0, 0, s.Name, style)

	body := r.Sub(0, 1, r.W, r.H-3)
	s.drawFader(body.Sub(0, 0, 2, body.H))
	s.drawMeter(body.Sub(3, 0, 1, body.H))

	// Pan indicator: marker position across the row
	panRow := r.H - 2
	if r.W >= 3 {
		for x := 0; x < r.W-2; x++ {
			r.Cell(x, panRow, '─', tcell.StyleDefault.Dim(true))
		}
		pos := int((s.Pan + 1) / 2 * float64(r.W-3))
		r.Cell(pos, panRow, '┃', tcell.StyleDefault)
	}

	status := fmt.Sprintf("%3.0f%%", s.Gain*100)
	if s.Muted {
		status = "MUTE"
	}
	r.Text(0, r.H-1, status, tcell.StyleDefault)
}

// drawFader fills the fader column bottom-up; gain 1.0 reaches 3/4 height
// so there is headroom to show boosts above unity
func (s *Strip) drawFader(r Region) {
	if r.H == 0 {
		return
	}
	frac := s.Gain * 0.75
	if frac > 1 {
		frac = 1
	}
	cells := frac * float64(r.H)
	style := tcell.StyleDefault
	if s.Muted {
		style = style.Dim(true)
	}
	for y := 0; y < r.H; y++ {
		fill := cells - float64(r.H-1-y)
		var ch rune
		switch {
		case fill >= 1:
			ch = faderChars[7]
		case fill > 0:
			ch = faderChars[int(fill*7.99)]
		default:
			continue
		}
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, style)
		}
	}
}

// drawMeter fills the meter column bottom-up with the level gradient
func (s *Strip) drawMeter(r Region) {
	if r.H == 0 {
		return
	}
	level := s.Level
	if s.Muted {
		level = 0
	}
	lit := int(level * float64(r.H))
	for y := 0; y < r.H; y++ {
		if r.H-1-y < lit {
			frac := float64(r.H-1-y) / float64(r.H)
			r.Cell(0, y, '█', tcell.StyleDefault.Foreground(meterColor(frac)))
		} else {
			r.Cell(0, y, '·', tcell.StyleDefault.Dim(true))
		}
	}
}
