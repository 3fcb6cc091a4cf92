package panel

import (
	"errors"
	"sync"

	"displayled/core"
)

// MockGPIODriver is a test implementation of core.GPIODriver. Unconfigured
// input pins read high, like a floating input with pull-up.
type MockGPIODriver struct {
	mu       sync.Mutex
	outputs  map[core.GPIOPin]bool
	inputs   map[core.GPIOPin]bool
	levels   map[core.GPIOPin]bool
	handlers map[core.GPIOPin]core.EdgeHandler
	writes   int
}

func NewMockGPIODriver() *MockGPIODriver {
	return &MockGPIODriver{
		outputs:  make(map[core.GPIOPin]bool),
		inputs:   make(map[core.GPIOPin]bool),
		levels:   make(map[core.GPIOPin]bool),
		handlers: make(map[core.GPIOPin]core.EdgeHandler),
	}
}

func (m *MockGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[pin] = true
	return nil
}

func (m *MockGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[pin] = true
	m.levels[pin] = true
	return nil
}

func (m *MockGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = value
	m.writes++
	return nil
}

func (m *MockGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	level, ok := m.levels[pin]
	if !ok {
		return true, nil
	}
	return level, nil
}

func (m *MockGPIODriver) ReadPin(pin core.GPIOPin) bool {
	v, _ := m.GetPin(pin)
	return v
}

func (m *MockGPIODriver) SetEdgeInterrupt(pin core.GPIOPin, edge core.PinEdge, handler core.EdgeHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inputs[pin] {
		return errors.New("pin not configured as input")
	}
	if edge != core.EdgeFalling {
		return errors.New("unexpected edge")
	}
	m.handlers[pin] = handler
	return nil
}

// SetLevel drives an input without raising an edge.
func (m *MockGPIODriver) SetLevel(pin core.GPIOPin, level bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = level
}

// Press pulls the button low and fires its falling-edge handler.
func (m *MockGPIODriver) Press(pin core.GPIOPin) {
	m.mu.Lock()
	m.levels[pin] = false
	h := m.handlers[pin]
	m.mu.Unlock()
	if h != nil {
		h(pin)
	}
}

// Release lets the button float back high.
func (m *MockGPIODriver) Release(pin core.GPIOPin) {
	m.SetLevel(pin, true)
}

func (m *MockGPIODriver) Level(pin core.GPIOPin) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels[pin]
}

func (m *MockGPIODriver) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// RecordingRenderer records each frame as a list of draw calls.
type RecordingRenderer struct {
	mu       sync.Mutex
	current  []string
	frames   [][]string
	flushErr error

	// onClear runs at the start of every frame, before the lock is taken;
	// tests use it to simulate an interrupt landing mid-refresh.
	onClear func()
	depth   int
	nested  bool
}

func (r *RecordingRenderer) Clear() {
	r.mu.Lock()
	r.depth++
	if r.depth > 1 {
		r.nested = true
	}
	r.current = []string{"clear"}
	hook := r.onClear
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (r *RecordingRenderer) DrawText(s string, x, y int16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = append(r.current, "text:"+s)
}

func (r *RecordingRenderer) DrawGlyph(c byte, x, y int16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = append(r.current, "glyph:"+string(c))
}

func (r *RecordingRenderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.depth--
	if r.flushErr != nil {
		return r.flushErr
	}
	r.frames = append(r.frames, r.current)
	r.current = nil
	return nil
}

func (r *RecordingRenderer) Frames() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.frames...)
}

func (r *RecordingRenderer) LastFrame() []string {
	frames := r.Frames()
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// RecordingStrip collects pushed pixels.
type RecordingStrip struct {
	pixels []Color
}

func (s *RecordingStrip) PushPixel(c Color) {
	s.pixels = append(s.pixels, c)
}

// ScriptedSource yields queued bytes, then ErrNoByte.
type ScriptedSource struct {
	data []byte
}

func (s *ScriptedSource) ReadByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, ErrNoByte
	}
	c := s.data[0]
	s.data = s.data[1:]
	return c, nil
}

// testConfig is DefaultConfig with the timer list and clock reset.
func testConfig() Config {
	core.ResetTimers()
	core.SetTime(0)
	core.ClearEventRing()
	return DefaultConfig()
}

// advance moves the clock forward and runs due timers.
func advance(d uint32) {
	core.SetTime(core.GetTime() + d)
	core.ProcessTimers()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
