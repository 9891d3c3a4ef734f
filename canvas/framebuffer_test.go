package canvas

import (
	"bytes"
	"testing"
)

// TestSetPixelReadBack verifies in-bounds writes read back exactly
func TestSetPixelReadBack(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	c := RGBA{R: 10, G: 20, B: 30, A: 255}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			fb.Set(x, y, c)
			if got := fb.At(x, y); got != c {
				t.Fatalf("Expected %v at (%d,%d), got %v", c, x, y, got)
			}
		}
	}
}

// TestSetPixelOutOfBounds verifies out-of-bounds writes leave the buffer unchanged
func TestSetPixelOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	before := make([]byte, len(fb.Pix()))
	copy(before, fb.Pix())

	c := RGBA{R: 255, A: 255}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-5, -5}} {
		fb.Set(p[0], p[1], c)
	}

	if !bytes.Equal(before, fb.Pix()) {
		t.Error("Expected buffer unchanged after out-of-bounds writes")
	}
}

// TestClear verifies every pixel takes the clear color
func TestClear(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	c := RGBA{R: 1, G: 2, B: 3, A: 4}
	fb.Clear(c)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := fb.At(x, y); got != c {
				t.Fatalf("Expected %v at (%d,%d), got %v", c, x, y, got)
			}
		}
	}
}

// TestPixelStoreLayout verifies the concrete byte layout: a 4x2 buffer with
// one red pixel at (1,1) puts [255,0,0,255] at byte offset 20
func TestPixelStoreLayout(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.Clear(RGBA{A: 255})
	fb.Set(1, 1, RGBA{R: 255, A: 255})

	pix := fb.Pix()
	if len(pix) != 4*2*4 {
		t.Fatalf("Expected store length 32, got %d", len(pix))
	}

	const off = 1*4 + 1*4*4
	if off != 20 {
		t.Fatalf("Expected offset 20, got %d", off)
	}
	want := []byte{255, 0, 0, 255}
	if !bytes.Equal(pix[off:off+4], want) {
		t.Errorf("Expected %v at offset %d, got %v", want, off, pix[off:off+4])
	}

	for i := 0; i < len(pix); i += 4 {
		if i == off {
			continue
		}
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Errorf("Expected [0,0,0,255] at offset %d, got %v", i, pix[i:i+4])
		}
	}
}

// TestFramebufferNoRealloc verifies the store never reallocates
func TestFramebufferNoRealloc(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	p := &fb.Pix()[0]

	fb.Clear(RGBA{R: 9, G: 9, B: 9, A: 9})
	fb.FillRect(-10, -10, 100, 100, RGBA{A: 1})

	if p != &fb.Pix()[0] {
		t.Error("Expected pixel store to stay in place")
	}
	if len(fb.Pix()) != 16*16*4 {
		t.Errorf("Expected store length %d, got %d", 16*16*4, len(fb.Pix()))
	}
}
