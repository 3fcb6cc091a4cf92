package panel

import (
	"errors"

	"tinygo.org/x/drivers"

	"displayled/core"
)

// ErrNoDisplay is returned by DetectDisplay when nothing acknowledges.
var ErrNoDisplay = errors.New("display did not acknowledge")

// SSD1306 command stream: control byte, then NOP.
var displayNOP = [2]byte{0x00, 0xE3}

// DetectDisplay checks that a display controller answers at addr. The
// ssd1306 driver fills in defaults and never reports a failed Configure,
// so this is how bring-up notices a missing or miswired panel.
func DetectDisplay(bus drivers.I2C, addr core.I2CAddress) error {
	if err := bus.Tx(uint16(addr), displayNOP[:], nil); err != nil {
		return ErrNoDisplay
	}
	return nil
}
