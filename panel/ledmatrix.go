package panel

import "displayled/core"

// Color is a 24-bit GRB word as the WS2812 expects it.
type Color uint32

// Strip is the addressable LED driver. Each call appends one pixel to the
// chain; there is no acknowledgement.
type Strip interface {
	PushPixel(c Color)
}

// Glyph is a 5x5 monochrome bitmap in the order the cells are streamed.
type Glyph [NumLEDs]uint8

// DigitGlyphs maps a digit to its matrix bitmap.
var DigitGlyphs = [10]Glyph{
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 0
	{0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0}, // 1
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 2
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 3
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1}, // 4
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 5
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1}, // 6
	{0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1}, // 7
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 8
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}, // 9
}

// noDigit is outside 0-9 so the first digit always draws.
const noDigit = 255

// LEDMatrix shows digits on the 5x5 matrix. Only the main loop calls it.
type LEDMatrix struct {
	strip Strip
	last  uint8
}

// NewLEDMatrix creates a matrix renderer on strip.
func NewLEDMatrix(strip Strip) *LEDMatrix {
	return &LEDMatrix{strip: strip, last: noDigit}
}

// ShowDigit streams the bitmap for d. Repeating the digit already shown,
// or a value above 9, does nothing.
func (m *LEDMatrix) ShowDigit(d uint8) {
	if d > 9 || d == m.last {
		return
	}
	m.last = d

	for _, cell := range DigitGlyphs[d] {
		if cell != 0 {
			m.strip.PushPixel(ColorOn)
		} else {
			m.strip.PushPixel(ColorOff)
		}
	}
	core.RecordEvent(core.EvtDigitShown, d, 0)
}

// Clear turns every LED off and forgets the last digit.
func (m *LEDMatrix) Clear() {
	m.last = noDigit
	for i := 0; i < NumLEDs; i++ {
		m.strip.PushPixel(ColorOff)
	}
}

// LastDigit returns the digit currently shown, or false if none.
func (m *LEDMatrix) LastDigit() (uint8, bool) {
	return m.last, m.last != noDigit
}
