package core

// Timer represents a scheduled event. Timers are intrusive list nodes so
// arming one from interrupt context never allocates.
type Timer struct {
	WakeTime uint32
	Handler  func(*Timer) uint8
	Next     *Timer

	queued bool
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

var timerList *Timer

// ScheduleTimer adds a timer to the schedule. Scheduling a timer that is
// already queued is a no-op: armed timers cannot be moved or cancelled.
// Handlers must not call ScheduleTimer; they return SF_RESCHEDULE instead.
func ScheduleTimer(t *Timer) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.queued {
		return false
	}
	insertTimer(t)
	return true
}

// ScheduleAfter arms t to fire ticks from now.
func ScheduleAfter(t *Timer, ticks uint32) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.queued {
		return false
	}
	t.WakeTime = GetTime() + ticks
	insertTimer(t)
	return true
}

// insertTimer inserts a timer in sorted order by WakeTime
func insertTimer(t *Timer) {
	t.queued = true
	if timerList == nil || int32(t.WakeTime-timerList.WakeTime) < 0 {
		t.Next = timerList
		timerList = t
		return
	}

	current := timerList
	for current.Next != nil && int32(current.Next.WakeTime-t.WakeTime) <= 0 {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// TimerDispatch runs every timer whose WakeTime has been reached at now
func TimerDispatch(now uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for timerList != nil && timeReached(timerList.WakeTime, now) {
		timer := timerList
		timerList = timer.Next
		timer.Next = nil
		timer.queued = false

		result := timer.Handler(timer)

		if result == SF_RESCHEDULE {
			insertTimer(timer)
		}
	}
}

// PendingTimers returns the number of queued timers
func PendingTimers() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	n := 0
	for t := timerList; t != nil; t = t.Next {
		n++
	}
	return n
}

// ResetTimers drops every queued timer (for testing)
func ResetTimers() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for t := timerList; t != nil; {
		next := t.Next
		t.Next = nil
		t.queued = false
		t = next
	}
	timerList = nil
}
