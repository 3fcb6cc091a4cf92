//go:build rp2040 || rp2350

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"displayled/core"
	"displayled/panel"
)

// InitLEDStrip claims a state machine on PIO0 and loads the WS2812 program.
// With no strip the returned value drops every pixel.
func InitLEDStrip() *panel.QueueStrip {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		core.RecordEvent(core.EvtInitError, uint8(panel.PinLEDMatrix), 0)
		core.DebugPrintln("Error claiming PIO state machine: " + err.Error())
		return panel.NewQueueStrip(nil)
	}
	ws, err := piolib.NewWS2812B(sm, machine.Pin(panel.PinLEDMatrix))
	if err != nil {
		core.RecordEvent(core.EvtInitError, uint8(panel.PinLEDMatrix), 1)
		core.DebugPrintln("Error loading WS2812 program: " + err.Error())
		return panel.NewQueueStrip(nil)
	}
	return panel.NewQueueStrip(ws)
}
