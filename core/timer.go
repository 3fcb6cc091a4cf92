package core

import (
	"sync/atomic"
	"time"
)

// Timer frequency of the tick counter. RP2040/RP2350 expose a free running
// 1MHz counter, so one tick is one microsecond.
const (
	TimerFreq = 1000000
)

var (
	bootTime uint32

	// manualTicks is the clock when no hardware source is installed. Host
	// tests drive it with SetTime.
	manualTicks atomic.Uint32

	// tickSource reads the hardware counter directly when a target installs
	// one. Without it the last value passed to SetTime is used.
	tickSource func() uint32
)

// SetTimeSource installs a hardware tick reader. Interrupt handlers call
// GetTime, so the source must be safe to call from interrupt context.
func SetTimeSource(src func() uint32) {
	tickSource = src
}

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	if tickSource != nil {
		return tickSource()
	}
	return manualTicks.Load()
}

// SetTime sets the manual clock. It has no effect on GetTime while a
// time source is installed.
func SetTime(ticks uint32) {
	manualTicks.Store(ticks)
}

// GetUptime returns the ticks elapsed since TimerInit
func GetUptime() uint32 {
	return GetTime() - bootTime
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * TimerFreq / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000000 / TimerFreq)
}

// TimerFromDuration converts a duration to timer ticks
func TimerFromDuration(d time.Duration) uint32 {
	return TimerFromUS(uint32(d / time.Microsecond))
}

// timeReached reports whether wake is at or before now. The difference is
// taken as signed so the comparison survives counter wrap-around.
func timeReached(wake, now uint32) bool {
	return int32(wake-now) <= 0
}

// TimerInit records the boot time
func TimerInit() {
	bootTime = GetTime()
}

// ProcessTimers runs every timer that is due
func ProcessTimers() {
	TimerDispatch(GetTime())
}
