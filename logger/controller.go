// Package logger runs the command-driven read/report cycle: a setup phase
// that brings both sensors up, then a single non-blocking steady loop that
// answers serial commands with tab-separated report lines.
package logger

import (
	"context"
	"io"
	"math"
	"time"

	"envlogger-go/indicator"
	"envlogger-go/serialcmd"
	"envlogger-go/types"
	"envlogger-go/x/timex"
)

// Identity is the fixed identification reply. The desktop logger matches on
// it byte for byte when scanning serial ports, so it must never change.
const Identity = "Arduino, BME280 & DS18B20 logger"

const cmdIdentify = "id?"

// diagNoSensor is written to the serial link on every failed detection
// attempt.
const diagNoSensor = "Could not find a valid BME280 sensor, check wiring!"

// Probe is the one-wire temperature probe driver surface. Begin has no
// failure path; ReadCelsius returns NaN for an invalid conversion.
type Probe interface {
	Begin() bool
	RequestConversion()
	ReadCelsius(index int) float32
}

// EnvSensor is the I2C environmental sensor surface. Begin may need repeated
// calls until the sensor is detected on the bus.
type EnvSensor interface {
	Begin() bool
	Read() (tempC, rhPct, presPa float32, err error)
}

// Config wires the controller's collaborators. Probe, Env, Reader, Ind and
// Out are required; the rest defaults.
type Config struct {
	Probe  Probe
	Env    EnvSensor
	Reader *serialcmd.Reader
	Ind    *indicator.Indicator
	Out    io.Writer

	// Now returns monotonic milliseconds since boot. Defaults to timex.Millis.
	Now func() int64
	// Sleep implements the startup retry delay and the optional idle sleep.
	// Defaults to time.Sleep.
	Sleep func(time.Duration)
	// RetryDelay between BME280 detection attempts. Defaults to 1 s.
	RetryDelay time.Duration
	// IdleSleep bounds the busy poll when no input is pending. Zero keeps
	// the loop hot, matching the original's immediate responsiveness.
	IdleSleep time.Duration
}

// Controller owns the single current Reading and the indicator toggle.
// All state is touched only from the goroutine running Run (or Step).
type Controller struct {
	cfg Config

	reading  types.Reading
	attempts int
	buf      []byte // reused report line buffer
}

func New(cfg Config) *Controller {
	if cfg.Now == nil {
		cfg.Now = timex.Millis
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Controller{cfg: cfg, buf: make([]byte, 0, 64)}
}

// InitAttempts reports how many BME280 detection attempts Setup has made.
// Zero before Setup runs; observable for tests without changing behaviour.
func (c *Controller) InitAttempts() int { return c.attempts }

// Reading returns the current snapshot. Overwritten whole on each cycle.
func (c *Controller) Reading() types.Reading { return c.reading }

// Setup brings the hardware up: indicator to the initializing colour, probe
// begin (assumed successful), then BME280 detection retried until it
// succeeds. Each failure writes the diagnostic line and blocks for
// RetryDelay. Only ctx cancellation escapes the retry loop.
func (c *Controller) Setup(ctx context.Context) error {
	c.cfg.Ind.SetInitializing()
	c.cfg.Probe.Begin()

	for {
		c.attempts++
		if c.cfg.Env.Begin() {
			break
		}
		writeLine(c.cfg.Out, diagNoSensor)
		if err := ctx.Err(); err != nil {
			return err
		}
		c.cfg.Sleep(c.cfg.RetryDelay)
	}

	c.cfg.Ind.SetReady()
	return nil
}

// Step performs exactly one non-blocking check for a completed command line
// and handles it. It reports whether a command triggered any output.
func (c *Controller) Step() bool {
	cmd, ok := c.cfg.Reader.Poll()
	if !ok || cmd == "" {
		return false
	}
	if cmd == cmdIdentify {
		// Identification only; sensors and indicator untouched.
		writeLine(c.cfg.Out, Identity)
		return true
	}
	c.readCycle()
	return true
}

// Run executes Setup and then the steady loop until ctx is cancelled. The
// loop never blocks on input.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Setup(ctx); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.Step() && c.cfg.IdleSleep > 0 {
			c.cfg.Sleep(c.cfg.IdleSleep)
		}
	}
}

// readCycle refreshes every Reading field, then emits one report line. The
// line is built only after all fields are set, so output and state agree.
func (c *Controller) readCycle() {
	c.cfg.Ind.ToggleIdle()

	r := types.Reading{TSms: c.cfg.Now()}
	c.cfg.Probe.RequestConversion()
	r.ProbeTempC = c.cfg.Probe.ReadCelsius(0)

	t, h, p, err := c.cfg.Env.Read()
	if err != nil {
		// Post-init reads are not expected to fail; surface the sentinel
		// rather than an error, matching the probe policy.
		nan := float32(math.NaN())
		t, h, p = nan, nan, nan
	}
	r.EnvTempC, r.EnvHumidityPct, r.EnvPressurePa = t, h, p

	c.reading = r
	c.buf = appendReport(c.buf[:0], r)
	c.buf = append(c.buf, '\n')
	_, _ = c.cfg.Out.Write(c.buf)
}

var nl = [1]byte{'\n'}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
	_, _ = w.Write(nl[:])
}
