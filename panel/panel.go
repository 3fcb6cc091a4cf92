package panel

import (
	"io"

	"displayled/core"
)

// Deps are the peripherals the panel drives.
type Deps struct {
	GPIO     core.GPIODriver
	Renderer Renderer
	Strip    Strip
	Source   io.ByteReader
}

// Panel owns every piece of state in the application. It is built once at
// start-up and handed to the interrupt and main-loop sides by reference.
type Panel struct {
	cfg  Config
	gpio core.GPIODriver

	State      *RenderState
	Compositor *Compositor
	Router     *InputRouter
	Matrix     *LEDMatrix
	Loop       *Loop
}

// New wires the components together. Nothing touches hardware until Start.
func New(cfg Config, deps Deps) *Panel {
	state := NewRenderState(len(cfg.Channels))
	compositor := NewCompositor(cfg, deps.Renderer, state)
	matrix := NewLEDMatrix(deps.Strip)
	router := NewInputRouter(cfg, deps.GPIO, state, compositor)

	return &Panel{
		cfg:        cfg,
		gpio:       deps.GPIO,
		State:      state,
		Compositor: compositor,
		Router:     router,
		Matrix:     matrix,
		Loop:       NewLoop(cfg, deps.Source, state, compositor, matrix, router),
	}
}

// Start configures the pins, registers the edge handler and draws the first
// frame.
func (p *Panel) Start() error {
	for _, ch := range p.Router.Channels() {
		if err := p.gpio.ConfigureOutput(ch.Indicator); err != nil {
			return err
		}
		if err := p.gpio.SetPin(ch.Indicator, false); err != nil {
			return err
		}
		if err := p.gpio.ConfigureInputPullUp(ch.Button); err != nil {
			return err
		}
	}

	// Handlers go in last so no edge can fire against half-configured pins.
	for _, ch := range p.Router.Channels() {
		if err := p.gpio.SetEdgeInterrupt(ch.Button, core.EdgeFalling, p.Router.HandleEdge); err != nil {
			return err
		}
	}

	p.Matrix.Clear()
	p.Compositor.Refresh()
	return nil
}
