package panel

import (
	"sync/atomic"

	"displayled/core"
)

// Channel is one button wired to one toggle and its indicator.
type Channel struct {
	Index int
	ChannelConfig

	gate *DebounceGate

	// Log lines are built up front: interrupt handlers must not allocate.
	logOn  string
	logOff string
}

// InputRouter is the edge interrupt handler shared by every channel.
type InputRouter struct {
	gpio       core.GPIODriver
	state      *RenderState
	compositor *Compositor
	channels   []Channel

	// logs[i] points at channel i's line for the last toggle until the
	// main loop prints it.
	logs []atomic.Pointer[string]
}

// NewInputRouter builds one Channel per config entry. With shared set, all
// channels use a single gate, so an accepted edge on one button also locks
// out the others for the debounce window.
func NewInputRouter(cfg Config, gpio core.GPIODriver, state *RenderState, compositor *Compositor) *InputRouter {
	r := &InputRouter{
		gpio:       gpio,
		state:      state,
		compositor: compositor,
		channels:   make([]Channel, len(cfg.Channels)),
		logs:       make([]atomic.Pointer[string], len(cfg.Channels)),
	}

	var shared *DebounceGate
	if cfg.SharedGate {
		shared = NewDebounceGate(0, cfg.DebounceDelay)
	}
	for i, cc := range cfg.Channels {
		gate := shared
		if gate == nil {
			gate = NewDebounceGate(uint8(i), cfg.DebounceDelay)
		}
		r.channels[i] = Channel{
			Index:         i,
			ChannelConfig: cc,
			gate:          gate,
			logOn:         "Button " + cc.Name + ". LED " + cc.Color + " on",
			logOff:        "Button " + cc.Name + ". LED " + cc.Color + " off",
		}
	}
	return r
}

// Channels returns the configured channels.
func (r *InputRouter) Channels() []Channel {
	return r.channels
}

// Gate returns the debounce gate guarding channel i.
func (r *InputRouter) Gate(i int) *DebounceGate {
	return r.channels[i].gate
}

// HandleEdge runs in interrupt context for a falling edge on pin.
func (r *InputRouter) HandleEdge(pin core.GPIOPin) {
	ch := r.channelFor(pin)
	if ch == nil {
		return
	}
	id := uint8(ch.Index)

	if !ch.gate.TryAccept() {
		return
	}
	core.RecordEvent(core.EvtEdgeAccepted, id, 0)

	// Buttons are active low. The pin may have bounced back up before the
	// handler ran; only a press that is still held counts.
	if r.gpio.ReadPin(ch.Button) {
		core.RecordEvent(core.EvtEdgeNotAsserted, id, 0)
		return
	}

	on := r.state.FlipToggle(ch.Index)
	_ = r.gpio.SetPin(ch.Indicator, on)

	// Printing may block on USB, so the line is handed to the main loop.
	if on {
		core.RecordEvent(core.EvtToggle, id, 1)
		r.logs[ch.Index].Store(&ch.logOn)
	} else {
		core.RecordEvent(core.EvtToggle, id, 0)
		r.logs[ch.Index].Store(&ch.logOff)
	}

	r.compositor.Refresh()
}

// FlushLogs prints the log line of every channel toggled since the last
// call. It runs in the main loop. If a channel toggles twice between calls
// only the newer line is printed; the debounce window is longer than the
// poll interval, so that only happens while the loop is stalled.
func (r *InputRouter) FlushLogs() {
	for i := range r.logs {
		if line := r.logs[i].Swap(nil); line != nil {
			core.DebugAsync(*line)
		}
	}
}

func (r *InputRouter) channelFor(pin core.GPIOPin) *Channel {
	for i := range r.channels {
		if r.channels[i].Button == pin {
			return &r.channels[i]
		}
	}
	return nil
}
