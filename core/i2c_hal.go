package core

import "tinygo.org/x/drivers"

// I2CBusID identifies a specific I2C bus (e.g., I2C0, I2C1).
type I2CBusID uint8

// I2CAddress is a 7-bit I2C device address.
type I2CAddress uint8

// I2CBusConfig selects the clock and pins of a bus.
type I2CBusConfig struct {
	FrequencyHz uint32
	SDA         GPIOPin
	SCL         GPIOPin
}

// I2CDriver is the abstract I2C interface that core code uses.
type I2CDriver interface {
	// ConfigureBus initializes a specific I2C bus.
	// Returns error if bus ID is invalid or configuration fails.
	ConfigureBus(bus I2CBusID, cfg I2CBusConfig) error

	// Bus returns the configured bus in the form TinyGo drivers expect,
	// so device drivers such as ssd1306 can be attached to it.
	Bus(bus I2CBusID) (drivers.I2C, error)
}

// Global singleton used by core code.
var i2cDriver I2CDriver

// SetI2CDriver is called by target-specific code to register its driver.
func SetI2CDriver(d I2CDriver) {
	i2cDriver = d
}

// MustI2C returns the configured driver or panics if missing.
func MustI2C() I2CDriver {
	if i2cDriver == nil {
		panic("I2C driver not configured")
	}
	return i2cDriver
}
