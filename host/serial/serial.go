package serial

import (
	"io"
)

// Port is the byte stream to the panel's USB CDC console. Tests substitute
// an in-memory implementation.
type Port interface {
	io.ReadWriteCloser

	// Flush drops input the panel sent before we started listening
	Flush() error
}

// Config describes how to open the console
type Config struct {
	Device string // /dev/ttyACM0, COM5, ...

	// Baud is passed through but USB CDC ignores it
	Baud int

	// ReadTimeout in milliseconds. Listen relies on a non-zero value so it
	// can notice Close between log lines.
	ReadTimeout int
}

// DefaultConfig returns the settings the panel firmware expects
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
