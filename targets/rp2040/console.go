//go:build rp2040 || rp2350

package main

import (
	"machine"

	"displayled/panel"
)

// InitUSB initializes USB serial communication.
// On RP2040, machine.Serial is USB CDC, not UART.
func InitUSB() {
	_ = machine.Serial.Configure(machine.UARTConfig{})
}

// usbSource reads typed characters from USB serial without blocking.
type usbSource struct{}

// ReadByte returns panel.ErrNoByte when nothing is waiting.
func (usbSource) ReadByte() (byte, error) {
	if machine.Serial.Buffered() == 0 {
		return 0, panel.ErrNoByte
	}
	return machine.Serial.ReadByte()
}

var crlf = []byte("\r\n")

// usbDebugWriter writes one log line to USB serial
func usbDebugWriter(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write(crlf)
}
