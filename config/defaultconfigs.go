package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (the value main selects at build time)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgEnvlogger = `{
  "serial": {"link": "usb", "baud": 9600},
  "pins": {"probe": 5, "pixel": 16},
  "i2c": {"hz": 400000},
  "indicator": {"bright": 15, "dim": 5},
  "retry_ms": 1000,
  "idle_sleep_ms": 0,
  "max_line": 64
}`

var embeddedConfigs = map[string][]byte{
	"envlogger": []byte(cfgEnvlogger),
}
