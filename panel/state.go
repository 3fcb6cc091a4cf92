package panel

import "sync/atomic"

// noCharacter marks "nothing received yet". Valid characters are ASCII
// alphanumerics so zero never collides.
const noCharacter = 0

// RenderState is the set of values shared between the interrupt side
// (toggles) and the main loop (character). Every field is its own atomic;
// there are no transactions across fields, so a reader may see a toggle and
// the character from slightly different moments. The compositor redraws the
// whole screen each time, which bounds that skew to one frame.
type RenderState struct {
	toggles   []atomic.Bool
	character atomic.Uint32
}

// NewRenderState creates state for n toggle channels, all off.
func NewRenderState(n int) *RenderState {
	return &RenderState{toggles: make([]atomic.Bool, n)}
}

// NumToggles returns the number of toggle channels.
func (s *RenderState) NumToggles() int {
	return len(s.toggles)
}

// Toggle returns the state of channel i.
func (s *RenderState) Toggle(i int) bool {
	return s.toggles[i].Load()
}

// SetToggle stores the state of channel i.
func (s *RenderState) SetToggle(i int, v bool) {
	s.toggles[i].Store(v)
}

// FlipToggle inverts channel i and returns the new value.
func (s *RenderState) FlipToggle(i int) bool {
	for {
		old := s.toggles[i].Load()
		if s.toggles[i].CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// ActiveToggle returns the channel whose message has display precedence:
// the lowest index that is on, so A wins over B. -1 when none is on.
func (s *RenderState) ActiveToggle() int {
	for i := range s.toggles {
		if s.toggles[i].Load() {
			return i
		}
	}
	return -1
}

// Character returns the last accepted character, if any.
func (s *RenderState) Character() (byte, bool) {
	c := s.character.Load()
	return byte(c), c != noCharacter
}

// SetCharacter stores the last accepted character.
func (s *RenderState) SetCharacter(c byte) {
	s.character.Store(uint32(c))
}
