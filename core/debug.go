package core

import "sync/atomic"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures an input or render event for post-mortem analysis
type Event struct {
	Type   uint8  // Event type code
	Source uint8  // Channel id, character or digit
	Clock  uint32 // System clock at event
	Value  uint32 // Context-dependent value
}

// Event type codes
const (
	EvtEdgeAccepted    = 1  // Edge passed the debounce gate
	EvtEdgeRejected    = 2  // Edge dropped while the gate was locked
	EvtEdgeNotAsserted = 3  // Pin re-read high after the gate accepted
	EvtGateReleased    = 4  // Debounce timer cleared the lock
	EvtToggle          = 5  // Toggle inverted (Value = new state)
	EvtRefresh         = 6  // Frame flushed (Value = frame count)
	EvtRefreshMerged   = 7  // Refresh folded into one in progress
	EvtFlushError      = 8  // Display flush returned an error
	EvtCharacter       = 9  // Valid character accepted
	EvtDigitShown      = 10 // LED matrix streamed a digit
	EvtInitError       = 11 // Peripheral bring-up failed
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether DebugPrintln output is active
	debugEnabled bool = true

	eventRing     [EventRingSize]eventSlot
	eventRingHead atomic.Uint32 // Total events recorded; slot is head % size

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables synchronous debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker()
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// It may block on the output device; the main loop uses DebugAsync and
// interrupt handlers only record events.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message (non-blocking)
		}
	}
}

// eventSlot stores one Event as atomic words. The ring is best-effort:
// when writers lap each other on a slot, or a snapshot races a writer, an
// event may mix fields of two records, but no write is ever torn.
type eventSlot struct {
	kind  atomic.Uint32 // Type<<8 | Source
	clock atomic.Uint32
	value atomic.Uint32
}

func (s *eventSlot) load() Event {
	kind := s.kind.Load()
	return Event{
		Type:   uint8(kind >> 8),
		Source: uint8(kind),
		Clock:  s.clock.Load(),
		Value:  s.value.Load(),
	}
}

// RecordEvent captures an event in the ring buffer. It never blocks, never
// allocates and takes no lock, so it is usable from interrupt handlers and
// from timer handlers running under the timer list lock.
func RecordEvent(eventType, source uint8, value uint32) {
	slot := &eventRing[(eventRingHead.Add(1)-1)%EventRingSize]
	slot.clock.Store(GetTime())
	slot.value.Store(value)
	slot.kind.Store(uint32(eventType)<<8 | uint32(source))
}

// EventSnapshot returns the recorded events, oldest first
func EventSnapshot() []Event {
	head := eventRingHead.Load()
	n := head
	if n > EventRingSize {
		n = EventRingSize
	}
	out := make([]Event, 0, n)
	for i := head - n; i != head; i++ {
		out = append(out, eventRing[i%EventRingSize].load())
	}
	return out
}

// EventName returns a printable name for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtEdgeAccepted:
		return "EDGE"
	case EvtEdgeRejected:
		return "EDGE_LOCKED"
	case EvtEdgeNotAsserted:
		return "EDGE_RELEASED"
	case EvtGateReleased:
		return "GATE_OPEN"
	case EvtToggle:
		return "TOGGLE"
	case EvtRefresh:
		return "REFRESH"
	case EvtRefreshMerged:
		return "REFRESH_MERGED"
	case EvtFlushError:
		return "FLUSH_ERR!"
	case EvtCharacter:
		return "CHAR"
	case EvtDigitShown:
		return "DIGIT"
	case EvtInitError:
		return "INIT_ERR!"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring (call on panic recovery)
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	debugPrintln("[EVENTS] Total events recorded: " + utoa(eventRingHead.Load()))

	for _, evt := range EventSnapshot() {
		debugPrintln("[EVENTS] " + EventName(evt.Type) +
			" src=" + itoa(int(evt.Source)) +
			" clock=" + utoa(evt.Clock) +
			" v=" + utoa(evt.Value))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i].kind.Store(0)
		eventRing[i].clock.Store(0)
		eventRing[i].value.Store(0)
	}
	eventRingHead.Store(0)
}
