//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers"

	"displayled/core"
)

// RPI2CDriver implements core.I2CDriver using TinyGo's machine.I2C for RP2040/RP2350.
type RPI2CDriver struct {
	// RP2040/RP2350 have I2C0 and I2C1
	buses      [2]*machine.I2C
	configured [2]bool
}

// NewRPI2CDriver constructs the driver
func NewRPI2CDriver() *RPI2CDriver {
	return &RPI2CDriver{
		buses: [2]*machine.I2C{machine.I2C0, machine.I2C1},
	}
}

// ConfigureBus initializes a specific I2C bus on the given pins.
func (d *RPI2CDriver) ConfigureBus(bus core.I2CBusID, cfg core.I2CBusConfig) error {
	if int(bus) >= len(d.buses) {
		return errors.New("unsupported I2C bus ID")
	}
	i2c := d.buses[bus]

	if d.configured[bus] {
		// Already configured - just update baud rate if needed
		return i2c.SetBaudRate(cfg.FrequencyHz)
	}

	// The pin mux also enables the internal pull-ups on SDA/SCL
	err := i2c.Configure(machine.I2CConfig{
		Frequency: cfg.FrequencyHz,
		SDA:       machine.Pin(cfg.SDA),
		SCL:       machine.Pin(cfg.SCL),
	})
	if err != nil {
		return err
	}

	d.configured[bus] = true
	return nil
}

// Bus returns the underlying machine.I2C for use with TinyGo drivers.
func (d *RPI2CDriver) Bus(bus core.I2CBusID) (drivers.I2C, error) {
	if int(bus) >= len(d.buses) || !d.configured[bus] {
		return nil, errors.New("I2C bus not configured")
	}
	return d.buses[bus], nil
}
