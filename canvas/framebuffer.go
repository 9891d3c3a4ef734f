package canvas

// RGBA is one pixel value, 8 bits per channel
type RGBA struct {
	R, G, B, A uint8
}

// Framebuffer is a fixed-size RGBA pixel grid, row-major, origin top-left
// The pixel store is allocated once and never reallocates; dimensions are
// fixed for the buffer's life
type Framebuffer struct {
	pix    []byte
	width  int
	height int
}

// NewFramebuffer creates a buffer with the specified dimensions
// Dimensions smaller than 1 are clamped to 1
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Framebuffer{
		pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in pixels
func (f *Framebuffer) Width() int { return f.width }

// Height returns the buffer height in pixels
func (f *Framebuffer) Height() int { return f.height }

// Pix exposes the raw pixel store for zero-copy encoding
// Length is always exactly width*height*4
func (f *Framebuffer) Pix() []byte { return f.pix }

// Set writes one pixel, ignoring out-of-bounds coordinates
func (f *Framebuffer) Set(x, y int, c RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

// At reads one pixel; out-of-bounds coordinates return the zero value
func (f *Framebuffer) At(x, y int) RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGBA{}
	}
	i := (y*f.width + x) * 4
	return RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Clear sets every pixel to the given color
func (f *Framebuffer) Clear(c RGBA) {
	// Fill the first pixel, then double the copied prefix
	f.pix[0] = c.R
	f.pix[1] = c.G
	f.pix[2] = c.B
	f.pix[3] = c.A
	for i := 4; i < len(f.pix); i *= 2 {
		copy(f.pix[i:], f.pix[:i])
	}
}
