package types

// ------------------------
// Sensor snapshot
// ------------------------

// Reading is the single current snapshot of all sensor channels. Exactly one
// Reading is current at any time; the loop controller overwrites it whole on
// every read cycle, so no partial update is ever observable.
type Reading struct {
	// TSms is monotonic milliseconds since boot, captured at the start of
	// the read cycle.
	TSms int64

	// ProbeTempC is the one-wire probe temperature in °C.
	// NaN when the conversion was invalid or no probe answered.
	ProbeTempC float32

	EnvTempC       float32 // BME280 temperature [°C]
	EnvHumidityPct float32 // BME280 relative humidity [%]
	EnvPressurePa  float32 // BME280 pressure [Pa]
}
