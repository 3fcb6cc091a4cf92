//go:build rp2040 || rp2350

package main

import "image/color"

// nullDisplay stands in when the display bus could not be set up, so the
// rest of the firmware runs unchanged.
type nullDisplay struct{}

func (nullDisplay) Size() (int16, int16) { return 0, 0 }

func (nullDisplay) SetPixel(x, y int16, c color.RGBA) {}

func (nullDisplay) Display() error { return nil }
