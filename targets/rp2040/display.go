//go:build rp2040 || rp2350

package main

import (
	"tinygo.org/x/drivers/ssd1306"

	"displayled/core"
	"displayled/panel"
)

var oled *ssd1306.Device

// InitDisplay brings up the SSD1306 on the display bus. A panel that does
// not answer is reported once and set up anyway; the firmware keeps running
// without a working screen.
func InitDisplay() *panel.TextRenderer {
	err := core.MustI2C().ConfigureBus(panel.DisplayBus, core.I2CBusConfig{
		FrequencyHz: panel.DisplayBusFreqHz,
		SDA:         panel.PinDisplaySDA,
		SCL:         panel.PinDisplaySCL,
	})
	if err != nil {
		core.RecordEvent(core.EvtInitError, uint8(panel.DisplayBus), 0)
		core.DebugPrintln("Error configuring display I2C bus: " + err.Error())
	}

	bus, err := core.MustI2C().Bus(panel.DisplayBus)
	if err != nil {
		core.RecordEvent(core.EvtInitError, uint8(panel.DisplayBus), 1)
		core.DebugPrintln("Error initialising OLED display: " + err.Error())
		return panel.NewTextRenderer(&nullDisplay{})
	}

	if err := panel.DetectDisplay(bus, panel.DisplayAddress); err != nil {
		core.RecordEvent(core.EvtInitError, uint8(panel.DisplayAddress), 2)
		core.DebugPrintln("Error initialising OLED display")
	}

	oled = ssd1306.NewI2C(bus)
	oled.Configure(ssd1306.Config{
		Address: uint16(panel.DisplayAddress),
		Width:   panel.DisplayWidth,
		Height:  panel.DisplayHeight,
	})
	oled.ClearDisplay()
	return panel.NewTextRenderer(oled)
}
