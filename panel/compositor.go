package panel

import (
	"sync/atomic"

	"displayled/core"
)

// Renderer is the pixel renderer the compositor draws through. All methods
// write an off-screen buffer except Flush, which sends it to the display.
// Implementations must not block beyond the bus transfer or allocate,
// because Refresh runs in interrupt context.
type Renderer interface {
	Clear()
	DrawText(s string, x, y int16)
	DrawGlyph(c byte, x, y int16)
	Flush() error
}

// Compositor turns RenderState into a full frame.
//
// Refresh is called both from the main loop and from the edge interrupt.
// When an interrupt arrives while a refresh is drawing, it does not touch
// the buffer; it leaves a pending request that the running refresh picks up
// before it returns. Frames are therefore never interleaved and interrupt
// handlers never wait.
type Compositor struct {
	renderer Renderer
	state    *RenderState
	messages []Message
	idle     Message

	pending atomic.Bool
	busy    atomic.Bool
	frames  atomic.Uint32
}

// NewCompositor creates a compositor for state drawing through renderer.
func NewCompositor(cfg Config, renderer Renderer, state *RenderState) *Compositor {
	return &Compositor{
		renderer: renderer,
		state:    state,
		messages: cfg.Messages,
		idle:     cfg.Idle,
	}
}

// Refresh redraws the whole screen from the current state.
func (c *Compositor) Refresh() {
	c.pending.Store(true)
	for {
		if !c.busy.CompareAndSwap(false, true) {
			core.RecordEvent(core.EvtRefreshMerged, 0, c.frames.Load())
			return
		}
		for c.pending.Swap(false) {
			c.draw()
		}
		c.busy.Store(false)

		// A request that landed between the last Swap and releasing busy
		// would otherwise be lost.
		if !c.pending.Load() {
			return
		}
	}
}

// Frames returns the number of frames flushed so far.
func (c *Compositor) Frames() uint32 {
	return c.frames.Load()
}

// Message returns the status text for the current state.
func (c *Compositor) Message() Message {
	if i := c.state.ActiveToggle(); i >= 0 && i < len(c.messages) {
		return c.messages[i]
	}
	return c.idle
}

func (c *Compositor) draw() {
	c.renderer.Clear()

	if ch, ok := c.state.Character(); ok {
		c.renderer.DrawGlyph(ch, GlyphX, GlyphY)
	}

	msg := c.Message()
	c.renderer.DrawText(msg.Line1, LineX, Line1Y)
	c.renderer.DrawText(msg.Line2, LineX, Line2Y)

	// No retry: a bad transfer is repaired by the next refresh.
	if err := c.renderer.Flush(); err != nil {
		core.RecordEvent(core.EvtFlushError, 0, c.frames.Load())
		return
	}
	n := c.frames.Add(1)
	core.RecordEvent(core.EvtRefresh, 0, n)
}
