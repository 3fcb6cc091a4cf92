package panel

import (
	"sync/atomic"
	"time"

	"displayled/core"
)

// DebounceGate suppresses re-triggers for a fixed window after an accepted
// edge. Accepting an edge and locking the gate is one compare-and-swap, so
// edges from several interrupt sources sharing a gate cannot both pass.
// Only the gate's own timer unlocks it.
type DebounceGate struct {
	id     uint8
	locked atomic.Bool
	delay  uint32 // ticks
	timer  core.Timer
}

// NewDebounceGate creates an unlocked gate with the given unlock delay.
func NewDebounceGate(id uint8, delay time.Duration) *DebounceGate {
	g := &DebounceGate{
		id:    id,
		delay: core.TimerFromDuration(delay),
	}
	g.timer.Handler = g.release
	return g
}

// TryAccept reports whether an edge may proceed. A false return has no
// side effects.
func (g *DebounceGate) TryAccept() bool {
	if !g.locked.CompareAndSwap(false, true) {
		core.RecordEvent(core.EvtEdgeRejected, g.id, 0)
		return false
	}
	core.ScheduleAfter(&g.timer, g.delay)
	return true
}

// Locked reports whether the gate is inside its debounce window.
func (g *DebounceGate) Locked() bool {
	return g.locked.Load()
}

func (g *DebounceGate) release(*core.Timer) uint8 {
	g.locked.Store(false)
	core.RecordEvent(core.EvtGateReleased, g.id, 0)
	return core.SF_DONE
}
