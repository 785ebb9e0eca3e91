package config

import (
	"github.com/andreyvit/tinyjson"

	"envlogger-go/errcode"
)

// Settings is everything the firmware needs to wire itself up. Values come
// from the embedded per-device JSON overlaid on Defaults.
type Settings struct {
	Device string

	SerialLink string // "usb" | "uart0"
	Baud       uint32

	ProbePin int // one-wire data pin
	PixelPin int // status pixel data pin

	I2CHz uint32

	Bright uint8 // idle-bright green level
	Dim    uint8 // idle-dim green level

	RetryMs     int // delay between BME280 detection attempts
	IdleSleepMs int // 0 keeps the steady loop hot
	MaxLine     int // command line cap in bytes
}

// EmbeddedConfigLookup allows overriding how raw configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Defaults returns the stock board wiring: USB CDC at 9600, probe on pin 5,
// green 15/5 brightness pair, 1 s retry delay.
func Defaults() Settings {
	return Settings{
		SerialLink:  "usb",
		Baud:        9600,
		ProbePin:    5,
		PixelPin:    16,
		I2CHz:       400_000,
		Bright:      15,
		Dim:         5,
		RetryMs:     1000,
		IdleSleepMs: 0,
		MaxLine:     64,
	}
}

// Lookup resolves the embedded JSON for a device and overlays it on
// Defaults. On any error the returned Settings are still usable defaults.
func Lookup(device string) (Settings, error) {
	s := Defaults()
	s.Device = device

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return s, errcode.UnknownDevice
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return s, errcode.InvalidConfig
	}
	apply(&s, m)
	return s, nil
}

func apply(s *Settings, m map[string]any) {
	if v, ok := m["serial"].(map[string]any); ok {
		if link, ok := v["link"].(string); ok && link != "" {
			s.SerialLink = link
		}
		if b, ok := v["baud"].(float64); ok && b > 0 {
			s.Baud = uint32(b)
		}
	}
	if v, ok := m["pins"].(map[string]any); ok {
		if p, ok := v["probe"].(float64); ok {
			s.ProbePin = int(p)
		}
		if p, ok := v["pixel"].(float64); ok {
			s.PixelPin = int(p)
		}
	}
	if v, ok := m["i2c"].(map[string]any); ok {
		if hz, ok := v["hz"].(float64); ok && hz > 0 {
			s.I2CHz = uint32(hz)
		}
	}
	if v, ok := m["indicator"].(map[string]any); ok {
		if b, ok := v["bright"].(float64); ok && b > 0 {
			s.Bright = uint8(b)
		}
		if d, ok := v["dim"].(float64); ok && d > 0 {
			s.Dim = uint8(d)
		}
	}
	if v, ok := m["retry_ms"].(float64); ok && v > 0 {
		s.RetryMs = int(v)
	}
	if v, ok := m["idle_sleep_ms"].(float64); ok && v >= 0 {
		s.IdleSleepMs = int(v)
	}
	if v, ok := m["max_line"].(float64); ok && v > 0 {
		s.MaxLine = int(v)
	}
}
