// Package envsensor adapts the BME280 environmental sensor driver to the
// begin/read shape the loop controller consumes. The driver itself is
// external; this shim only converts its fixed-point units.
package envsensor

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bme280"
)

// BME280 wraps the I2C driver. The bus must already be configured.
type BME280 struct {
	drv bme280.Device
}

// New creates the adaptor without touching the bus.
func New(bus drivers.I2C) *BME280 {
	return &BME280{drv: bme280.New(bus)}
}

// Begin configures the driver and reports whether the sensor answered on the
// bus. Safe to call repeatedly until it returns true.
func (s *BME280) Begin() bool {
	s.drv.Configure()
	return s.drv.Connected()
}

// Read returns temperature [°C], relative humidity [%] and pressure [Pa].
// The driver works in milli-°C, centi-%RH and milli-Pa.
func (s *BME280) Read() (tempC, rhPct, presPa float32, err error) {
	t, err := s.drv.ReadTemperature()
	if err != nil {
		return 0, 0, 0, err
	}
	h, err := s.drv.ReadHumidity()
	if err != nil {
		return 0, 0, 0, err
	}
	p, err := s.drv.ReadPressure()
	if err != nil {
		return 0, 0, 0, err
	}
	return float32(t) / 1000, float32(h) / 100, float32(p) / 1000, nil
}
