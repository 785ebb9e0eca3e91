//go:build rp2040

package platform

import (
	"image/color"
	"machine"
	"math"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ds18b20"
	"tinygo.org/x/drivers/onewire"
	"tinygo.org/x/drivers/ws2812"

	"envlogger-go/config"
	"envlogger-go/envsensor"
	"envlogger-go/errcode"
	"envlogger-go/serialcmd"
)

// Devices groups everything main needs to run the controller.
type Devices struct {
	Port  serialcmd.Port
	Strip *PixelStrip
	Probe *DS18B20
	Env   *envsensor.BME280
}

// Setup configures the command link, the I2C bus and both sensor adaptors
// per the device settings.
func Setup(cfg config.Settings) (Devices, error) {
	var port serialcmd.Port
	switch cfg.SerialLink {
	case "uart0":
		u := uartx.UART0
		if err := u.Configure(uartx.UARTConfig{
			BaudRate: cfg.Baud,
			TX:       machine.UART0_TX_PIN,
			RX:       machine.UART0_RX_PIN,
		}); err != nil {
			return Devices{}, err
		}
		port = u
	case "usb", "":
		// USB CDC ignores the configured baud rate.
		port = machine.Serial
	default:
		return Devices{}, errcode.UnknownLink
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: cfg.I2CHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		return Devices{}, err
	}

	return Devices{
		Port:  port,
		Strip: NewPixelStrip(machine.Pin(cfg.PixelPin)),
		Probe: NewDS18B20(machine.Pin(cfg.ProbePin)),
		Env:   envsensor.New(machine.I2C0),
	}, nil
}

// ----------------------------- pixel (rp2040) ---------------------------------

// PixelStrip drives the single status pixel via ws2812.
type PixelStrip struct {
	dev ws2812.Device
	buf [1]color.RGBA
}

func NewPixelStrip(pin machine.Pin) *PixelStrip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &PixelStrip{dev: ws2812.New(pin)}
}

func (s *PixelStrip) SetColor(r, g, b uint8) error {
	s.buf[0] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	return s.dev.WriteColors(s.buf[:])
}

// ----------------------------- probe (rp2040) ---------------------------------

// tConv is the worst-case 12-bit conversion time per the DS18B20 datasheet.
const tConv = 750 * time.Millisecond

// DS18B20 adapts the one-wire temperature driver to the controller's probe
// surface. A single probe on the bus is assumed; index is ignored.
type DS18B20 struct {
	ow  onewire.Device
	drv ds18b20.Device
	rom []uint8
}

func NewDS18B20(pin machine.Pin) *DS18B20 {
	ow := onewire.New(pin)
	return &DS18B20{ow: ow, drv: ds18b20.New(ow)}
}

// Begin searches the bus for the first probe ROM. Begin has no failure path:
// an empty bus just means every subsequent read is NaN.
func (p *DS18B20) Begin() bool {
	roms, err := p.ow.Search(onewire.SEARCH_ROM)
	if err != nil || len(roms) == 0 {
		return true
	}
	p.rom = roms[0]
	return true
}

// RequestConversion starts a temperature conversion and waits it out, the
// way the original driver's blocking request did.
func (p *DS18B20) RequestConversion() {
	if p.rom == nil {
		return
	}
	if err := p.drv.RequestTemperature(p.rom); err != nil {
		return
	}
	time.Sleep(tConv)
}

// ReadCelsius returns the probe temperature, NaN when no probe answered or
// the scratchpad CRC failed.
func (p *DS18B20) ReadCelsius(index int) float32 {
	_ = index
	if p.rom == nil {
		return nanf()
	}
	milli, err := p.drv.ReadTemperature(p.rom)
	if err != nil {
		return nanf()
	}
	return float32(milli) / 1000
}

func nanf() float32 { return float32(math.NaN()) }
