//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts so an edge handler cannot touch the
// timer list while the main loop is walking it. Sections nest.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state saved by disableInterrupts
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
