//go:build !rp2040

// Package platform wires the logger to real hardware on MCU builds and to
// in-memory fakes on the host. The host fakes back cmd/hostsim and the
// controller tests.
package platform

import (
	"io"
	"math"
	"sync"

	"envlogger-go/config"
)

// Devices groups everything main needs to run the controller.
type Devices struct {
	Port  *SimPort
	Strip *SimStrip
	Probe *SimProbe
	Env   *SimEnv
}

// Setup returns host-side fakes with plausible bench values. cfg is accepted
// for signature parity with the MCU build.
func Setup(cfg config.Settings) (Devices, error) {
	_ = cfg
	return Devices{
		Port:  NewSimPort(),
		Strip: &SimStrip{},
		Probe: &SimProbe{TempC: 21.3},
		Env:   &SimEnv{TempC: 21.5, RHPct: 45.2, PresPa: 101325, Present: true},
	}, nil
}

// ----------------------------- serial (host) ---------------------------------

// SimPort is an in-memory serial port. Injected bytes appear as buffered
// input; writes go to the configured output (discard by default).
type SimPort struct {
	mu  sync.Mutex
	rx  []byte
	out io.Writer
}

func NewSimPort() *SimPort { return &SimPort{out: io.Discard} }

// SetOutput redirects the port's transmit side.
func (p *SimPort) SetOutput(w io.Writer) {
	p.mu.Lock()
	p.out = w
	p.mu.Unlock()
}

// Inject queues bytes as if they arrived on the wire.
func (p *SimPort) Inject(b []byte) {
	p.mu.Lock()
	p.rx = append(p.rx, b...)
	p.mu.Unlock()
}

func (p *SimPort) Buffered() int {
	p.mu.Lock()
	n := len(p.rx)
	p.mu.Unlock()
	return n
}

func (p *SimPort) ReadByte() (byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.rx) == 0 {
		return 0, errNoData
	}
	b := p.rx[0]
	p.rx = p.rx[1:]
	return b, nil
}

func (p *SimPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	w := p.out
	p.mu.Unlock()
	return w.Write(b)
}

type simErr string

func (e simErr) Error() string { return string(e) }

const errNoData = simErr("no data")

// ----------------------------- pixel (host) ----------------------------------

// SimStrip records the last colour set on the fake pixel.
type SimStrip struct {
	mu      sync.Mutex
	r, g, b uint8
	sets    int

	// OnSet, when non-nil, observes every colour change.
	OnSet func(r, g, b uint8)
}

func (s *SimStrip) SetColor(r, g, b uint8) error {
	s.mu.Lock()
	s.r, s.g, s.b = r, g, b
	s.sets++
	cb := s.OnSet
	s.mu.Unlock()
	if cb != nil {
		cb(r, g, b)
	}
	return nil
}

// Color returns the currently displayed colour.
func (s *SimStrip) Color() (r, g, b uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r, s.g, s.b
}

// Sets returns how many times the colour was set.
func (s *SimStrip) Sets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// ----------------------------- probe (host) ----------------------------------

// SimProbe is a scripted one-wire probe.
type SimProbe struct {
	TempC   float32
	Invalid bool // report the NaN sentinel instead of TempC

	begun    bool
	requests int
}

func (p *SimProbe) Begin() bool { p.begun = true; return true }

func (p *SimProbe) RequestConversion() { p.requests++ }

func (p *SimProbe) ReadCelsius(index int) float32 {
	_ = index
	if p.Invalid {
		return float32(math.NaN())
	}
	return p.TempC
}

// Requests reports how many conversions were requested.
func (p *SimProbe) Requests() int { return p.requests }

// ----------------------------- env sensor (host) ------------------------------

// SimEnv is a scripted environmental sensor. FailFirst makes the first N
// Begin calls fail, for exercising the startup retry loop.
type SimEnv struct {
	TempC   float32
	RHPct   float32
	PresPa  float32
	Present bool

	FailFirst int
	begins    int
	reads     int
}

func (e *SimEnv) Begin() bool {
	e.begins++
	if e.begins <= e.FailFirst {
		return false
	}
	return e.Present
}

func (e *SimEnv) Read() (float32, float32, float32, error) {
	e.reads++
	return e.TempC, e.RHPct, e.PresPa, nil
}

// Begins reports how many detection attempts were made.
func (e *SimEnv) Begins() int { return e.begins }

// Reads reports how many read cycles hit the sensor.
func (e *SimEnv) Reads() int { return e.reads }
