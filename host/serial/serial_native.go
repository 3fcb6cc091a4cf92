package serial

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// ttyPort is a Port backed by an OS serial device
type ttyPort struct {
	tty *serial.Port
}

// Open opens the console device described by cfg
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, errors.New("serial: nil config")
	}

	tty, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return &ttyPort{tty: tty}, nil
}

// Read returns 0, io.EOF when the read timeout expires with nothing received
func (p *ttyPort) Read(b []byte) (int, error) { return p.tty.Read(b) }

func (p *ttyPort) Write(b []byte) (int, error) { return p.tty.Write(b) }

func (p *ttyPort) Close() error { return p.tty.Close() }

func (p *ttyPort) Flush() error { return p.tty.Flush() }
