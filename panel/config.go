package panel

import (
	"time"

	"displayled/core"
)

// Board wiring (BitDogLab-style Pico W carrier)
const (
	PinButtonA    core.GPIOPin = 5
	PinButtonB    core.GPIOPin = 6
	PinLEDMatrix  core.GPIOPin = 7
	PinLEDGreen   core.GPIOPin = 11
	PinLEDBlue    core.GPIOPin = 12
	PinLEDRed     core.GPIOPin = 13
	PinDisplaySDA core.GPIOPin = 14
	PinDisplaySCL core.GPIOPin = 15
)

// Display bus
const (
	DisplayBus       core.I2CBusID   = 1
	DisplayAddress   core.I2CAddress = 0x3C
	DisplayBusFreqHz                 = 400 * 1000
	DisplayWidth                     = 128
	DisplayHeight                    = 64
)

// Timing
const (
	DebounceDelay = 200 * time.Millisecond
	PollInterval  = 100 * time.Millisecond
	TimerTick     = time.Millisecond
)

// LED matrix
const (
	MatrixSize = 5
	NumLEDs    = MatrixSize * MatrixSize

	// ColorOn is a 24-bit GRB word; 0x0000FF is pure blue.
	ColorOn  Color = 0x0000FF
	ColorOff Color = 0x000000
)

// Screen layout in pixels. Text positions are baselines.
const (
	GlyphX = 56
	GlyphY = 18
	LineX  = 10
	Line1Y = 40
	Line2Y = 58
)

// Channel indexes into Config.Channels
const (
	ChannelA = 0
	ChannelB = 1
)

// ChannelConfig wires one button to one indicator.
type ChannelConfig struct {
	Name      string       // "A", "B"
	Color     string       // indicator colour, used in log lines
	Button    core.GPIOPin // active-low input with pull-up
	Indicator core.GPIOPin // output mirroring the toggle
}

// Message is one two-line status text. Line1 is drawn above Line2.
type Message struct {
	Line1 string
	Line2 string
}

// Config holds everything the panel is parameterised by. The firmware only
// ever uses DefaultConfig; tests build their own.
type Config struct {
	Channels      []ChannelConfig
	DebounceDelay time.Duration

	// SharedGate serialises all channels through one debounce gate, which is
	// how the board has always behaved. With false every channel gets its own.
	SharedGate bool

	PollInterval time.Duration

	// Messages[i] is shown while channel i is the active toggle; Idle when
	// no toggle is set.
	Messages []Message
	Idle     Message
}

// DefaultConfig returns the compiled-in board configuration.
func DefaultConfig() Config {
	return Config{
		Channels: []ChannelConfig{
			ChannelA: {Name: "A", Color: "green", Button: PinButtonA, Indicator: PinLEDGreen},
			ChannelB: {Name: "B", Color: "blue", Button: PinButtonB, Indicator: PinLEDBlue},
		},
		DebounceDelay: DebounceDelay,
		SharedGate:    true,
		PollInterval:  PollInterval,
		Messages: []Message{
			// The green message has always had its lines swapped.
			ChannelA: {Line1: "TURNED ON", Line2: "LED GREEN"},
			ChannelB: {Line1: "LED BLUE", Line2: "TURNED ON"},
		},
		Idle: Message{Line1: "LED NOT", Line2: "TURNED ON"},
	}
}
