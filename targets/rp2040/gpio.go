//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"displayled/core"
)

// RP2040 has GPIO0-GPIO29, RP2350A the same; larger packages are not wired.
const numPins = 30

type pinMode uint8

const (
	pinUnused pinMode = iota
	pinOutput
	pinInput
)

// RPGPIODriver implements core.GPIODriver on machine.Pin. Pin state lives in
// a fixed array instead of a map so ReadPin and SetPin stay cheap and
// allocation free from the edge interrupt.
type RPGPIODriver struct {
	modes [numPins]pinMode
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{}
}

func (d *RPGPIODriver) pin(pin core.GPIOPin) (machine.Pin, error) {
	if pin >= numPins {
		return machine.NoPin, errors.New("invalid GPIO pin")
	}
	// For RP2040, pins map directly to GPIO numbers
	return machine.Pin(pin), nil
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	if d.modes[pin] == pinOutput {
		// Already configured, this is OK
		return nil
	}
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.modes[pin] = pinOutput
	return nil
}

// ConfigureInputPullUp configures a pin as an input with pull-up resistor
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	if d.modes[pin] == pinInput {
		return nil
	}
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.modes[pin] = pinInput
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	if d.modes[pin] != pinOutput {
		return errors.New("GPIO pin not configured as output")
	}
	p.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	p, err := d.pin(pin)
	if err != nil {
		return false, err
	}
	if d.modes[pin] == pinUnused {
		return false, errors.New("GPIO pin not configured")
	}
	return p.Get(), nil
}

// ReadPin is a convenience wrapper around GetPin that returns just the bool value
func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	value, _ := d.GetPin(pin)
	return value
}

// SetEdgeInterrupt hooks handler to the pin's GPIO interrupt. The
// callback runs in interrupt context.
func (d *RPGPIODriver) SetEdgeInterrupt(pin core.GPIOPin, edge core.PinEdge, handler core.EdgeHandler) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	if d.modes[pin] != pinInput {
		return errors.New("GPIO pin not configured as input")
	}
	if handler == nil {
		return p.SetInterrupt(0, nil)
	}

	var change machine.PinChange
	if edge&core.EdgeFalling != 0 {
		change |= machine.PinFalling
	}
	if edge&core.EdgeRising != 0 {
		change |= machine.PinRising
	}
	return p.SetInterrupt(change, func(machine.Pin) {
		handler(pin)
	})
}
