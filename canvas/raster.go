package canvas

// Drawing primitives. All of them clip silently against the buffer bounds
// and none can leave the pixel store in a size-inconsistent state.

// HLine fills the inclusive horizontal span [x0,x1] at row y
// Endpoint order does not matter
func (f *Framebuffer) HLine(x0, x1, y int, c RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		f.Set(x, y, c)
	}
}

// VLine fills the inclusive vertical span [y0,y1] at column x
// Endpoint order does not matter
func (f *Framebuffer) VLine(x, y0, y1 int, c RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		f.Set(x, y, c)
	}
}

// Line draws an integer Bresenham line from (x0,y0) to (x1,y1)
// Both endpoints are drawn; consecutive pixels never differ by more than
// one unit on either axis
func (f *Framebuffer) Line(x0, y0, x1, y1 int, c RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the axis-aligned box [x,x+w) x [y,y+h)
func (f *Framebuffer) FillRect(x, y, w, h int, c RGBA) {
	for row := y; row < y+h; row++ {
		f.HLine(x, x+w-1, row, c)
	}
}

// StrokeRect draws the 1-pixel border of the box [x,x+w) x [y,y+h)
func (f *Framebuffer) StrokeRect(x, y, w, h int, c RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	f.HLine(x, x+w-1, y, c)
	f.HLine(x, x+w-1, y+h-1, c)
	f.VLine(x, y+1, y+h-2, c)
	f.VLine(x+w-1, y+1, y+h-2, c)
}

// Circle draws the boundary of a circle using the midpoint algorithm
func (f *Framebuffer) Circle(cx, cy, radius int, c RGBA) {
	if radius < 0 {
		return
	}
	x := radius
	y := 0
	err := 1 - radius

	for x >= y {
		f.Set(cx+x, cy+y, c)
		f.Set(cx+y, cy+x, c)
		f.Set(cx-y, cy+x, c)
		f.Set(cx-x, cy+y, c)
		f.Set(cx-x, cy-y, c)
		f.Set(cx-y, cy-x, c)
		f.Set(cx+y, cy-x, c)
		f.Set(cx+x, cy-y, c)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// FillCircle colors every pixel whose squared distance from (cx,cy) is at
// most radius squared, producing a solid disk with no holes
func (f *Framebuffer) FillCircle(cx, cy, radius int, c RGBA) {
	if radius < 0 {
		return
	}
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		half := isqrt(rr - dy*dy)
		f.HLine(cx-half, cx+half, cy+dy, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isqrt returns the integer square root (floor) of a non-negative value
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
