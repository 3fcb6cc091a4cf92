package panel

import (
	"context"
	"errors"
	"io"
	"time"

	"displayled/core"
)

// ErrNoByte is returned by a byte source when nothing arrived this poll.
var ErrNoByte = errors.New("no byte available")

// IsValidCharacter reports whether c is an ASCII letter or digit.
func IsValidCharacter(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Loop is the cooperative main loop: it polls the character source and
// pushes valid characters to the display and LED matrix.
type Loop struct {
	source     io.ByteReader
	state      *RenderState
	compositor *Compositor
	matrix     *LEDMatrix
	router     *InputRouter
	interval   time.Duration

	// sleep is replaceable so tests do not wait.
	sleep func(time.Duration)
}

// NewLoop creates a main loop reading from source.
func NewLoop(cfg Config, source io.ByteReader, state *RenderState, compositor *Compositor, matrix *LEDMatrix, router *InputRouter) *Loop {
	return &Loop{
		source:     source,
		state:      state,
		compositor: compositor,
		matrix:     matrix,
		router:     router,
		interval:   cfg.PollInterval,
		sleep:      time.Sleep,
	}
}

// Step prints pending button log lines and handles at most one byte. It
// returns true if the byte was accepted.
func (l *Loop) Step() bool {
	if l.router != nil {
		l.router.FlushLogs()
	}

	c, err := l.source.ReadByte()
	if err != nil {
		// ErrNoByte is the idle case; any other source error is treated
		// the same, the next poll tries again.
		return false
	}
	if !IsValidCharacter(c) {
		return false
	}

	l.state.SetCharacter(c)
	core.RecordEvent(core.EvtCharacter, c, 0)
	l.compositor.Refresh()

	if c >= '0' && c <= '9' {
		l.matrix.ShowDigit(c - '0')
	}
	return true
}

// Run polls until ctx is done. The firmware passes a context that is never
// cancelled.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.Step()
		l.sleep(l.interval)
	}
}
