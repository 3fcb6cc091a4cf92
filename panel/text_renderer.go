package panel

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Advance widths of the monospaced fonts used below, in pixels.
const (
	textAdvance  = 11
	glyphAdvance = 14
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// bufferClearer is implemented by displays with an in-memory framebuffer,
// such as ssd1306.Device.
type bufferClearer interface {
	ClearBuffer()
}

// TextRenderer implements Renderer on any TinyGo display using tinyfont.
// Strings are drawn one character at a time so no rune slice is built;
// it is safe to call from interrupt context.
type TextRenderer struct {
	display   drivers.Displayer
	textFont  tinyfont.Fonter
	glyphFont tinyfont.Fonter
}

// NewTextRenderer wraps a display.
func NewTextRenderer(display drivers.Displayer) *TextRenderer {
	return &TextRenderer{
		display:   display,
		textFont:  &freemono.Regular9pt7b,
		glyphFont: &freemono.Regular12pt7b,
	}
}

// Clear blanks the buffer.
func (r *TextRenderer) Clear() {
	if c, ok := r.display.(bufferClearer); ok {
		c.ClearBuffer()
		return
	}
	w, h := r.display.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			r.display.SetPixel(x, y, black)
		}
	}
}

// DrawText draws s with its baseline at y.
func (r *TextRenderer) DrawText(s string, x, y int16) {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			tinyfont.DrawChar(r.display, r.textFont, x, y, rune(s[i]), white)
		}
		x += textAdvance
	}
}

// DrawGlyph draws one large character with its baseline at y.
func (r *TextRenderer) DrawGlyph(c byte, x, y int16) {
	tinyfont.DrawChar(r.display, r.glyphFont, x, y, rune(c), white)
}

// Flush sends the buffer to the panel.
func (r *TextRenderer) Flush() error {
	return r.display.Display()
}
