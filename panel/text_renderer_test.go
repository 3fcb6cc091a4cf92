package panel

import (
	"errors"
	"image/color"
	"testing"
)

// fakeDisplay is an in-memory drivers.Displayer.
type fakeDisplay struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	flushes  int
	flushErr error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: DisplayWidth, h: DisplayHeight, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *fakeDisplay) Size() (int16, int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.flushes++
	return d.flushErr
}

func (d *fakeDisplay) lit() int {
	n := 0
	for _, c := range d.pixels {
		if c.R != 0 || c.G != 0 || c.B != 0 {
			n++
		}
	}
	return n
}

// bufferedDisplay also offers ClearBuffer like ssd1306.Device.
type bufferedDisplay struct {
	*fakeDisplay
	cleared int
}

func (d *bufferedDisplay) ClearBuffer() {
	d.cleared++
	d.pixels = make(map[[2]int16]color.RGBA)
}

func TestTextRendererDrawsPixels(t *testing.T) {
	d := newFakeDisplay()
	r := NewTextRenderer(d)

	r.DrawGlyph('8', GlyphX, GlyphY)
	glyphPixels := d.lit()
	if glyphPixels == 0 {
		t.Fatal("DrawGlyph did not set any pixels")
	}

	r.DrawText("LED NOT", LineX, Line1Y)
	if d.lit() <= glyphPixels {
		t.Error("DrawText did not set any pixels")
	}
}

func TestTextRendererSpacesAreBlank(t *testing.T) {
	d := newFakeDisplay()
	r := NewTextRenderer(d)

	r.DrawText("   ", LineX, Line1Y)
	if d.lit() != 0 {
		t.Errorf("Spaces lit %d pixels", d.lit())
	}
}

func TestTextRendererClear(t *testing.T) {
	d := newFakeDisplay()
	r := NewTextRenderer(d)
	r.DrawGlyph('W', GlyphX, GlyphY)
	r.Clear()
	if d.lit() != 0 {
		t.Errorf("Clear left %d pixels lit", d.lit())
	}

	b := &bufferedDisplay{fakeDisplay: newFakeDisplay()}
	br := NewTextRenderer(b)
	br.DrawGlyph('W', GlyphX, GlyphY)
	br.Clear()
	if b.cleared != 1 {
		t.Errorf("Expected ClearBuffer to be used, called %d times", b.cleared)
	}
	if b.lit() != 0 {
		t.Errorf("ClearBuffer left %d pixels lit", b.lit())
	}
}

func TestTextRendererFlush(t *testing.T) {
	d := newFakeDisplay()
	r := NewTextRenderer(d)

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	d.flushErr = errors.New("bus error")
	if err := r.Flush(); err == nil {
		t.Error("Expected Flush to pass on the display error")
	}
	if d.flushes != 2 {
		t.Errorf("Expected 2 flushes, got %d", d.flushes)
	}
}
