package board

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"displayled/host/serial"
)

// DefaultPace spaces out typed characters so the board, which polls once
// every 100ms and shows only the latest character, displays each of them.
const DefaultPace = 120 * time.Millisecond

// Board is a connection to the panel's USB console
type Board struct {
	port serial.Port

	// Pace is the gap between characters sent by Send
	Pace time.Duration

	mu        sync.Mutex
	connected bool
}

// New wraps an already open port
func New(port serial.Port) *Board {
	return &Board{
		port:      port,
		Pace:      DefaultPace,
		connected: true,
	}
}

// Connect connects to the board via serial port
func Connect(device string) (*Board, error) {
	return ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to the board with a custom serial config
func ConnectWithConfig(cfg *serial.Config) (*Board, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	// Drop whatever the board printed before we attached
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush serial port: %w", err)
	}
	return New(port), nil
}

// Close closes the connection to the board
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.connected {
		return nil
	}
	b.connected = false
	return b.port.Close()
}

// IsConnected returns whether the connection is open
func (b *Board) IsConnected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected
}

// Send types text on the board one character at a time, Pace apart.
// It returns the number of characters written.
func (b *Board) Send(ctx context.Context, text string) (int, error) {
	if !b.IsConnected() {
		return 0, errors.New("not connected")
	}

	for i := 0; i < len(text); i++ {
		if i > 0 && b.Pace > 0 {
			select {
			case <-ctx.Done():
				return i, ctx.Err()
			case <-time.After(b.Pace):
			}
		}
		if _, err := b.port.Write([]byte{text[i]}); err != nil {
			return i, fmt.Errorf("failed to write to board: %w", err)
		}
	}
	return len(text), nil
}

// Listen copies the board's log lines to out until ctx is cancelled or the
// port is closed. Read timeouts (io.EOF from the port) are not errors.
func (b *Board) Listen(ctx context.Context, out io.Writer) error {
	r := bufio.NewReader(b.port)
	var line strings.Builder

	for {
		if ctx.Err() != nil {
			return nil
		}

		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !b.IsConnected() {
					return nil
				}
				continue
			}
			if !b.IsConnected() {
				return nil
			}
			return fmt.Errorf("failed to read from board: %w", err)
		}

		switch c {
		case '\r':
		case '\n':
			if _, err := fmt.Fprintln(out, line.String()); err != nil {
				return err
			}
			line.Reset()
		default:
			line.WriteByte(c)
		}
	}
}
