// Package indicator drives the single RGB status pixel.
//
// Blue while setting up, green once running, with the green brightness
// alternating between a bright and a dim level on every read cycle.
package indicator

// State is the indicator's logical state.
type State uint8

const (
	Initializing State = iota
	IdleBright
	IdleDim
)

func (s State) String() string {
	switch s {
	case IdleBright:
		return "idle_bright"
	case IdleDim:
		return "idle_dim"
	default:
		return "initializing"
	}
}

// Strip is a single-pixel RGB output: set and immediately display. ws2812 on
// hardware, a recording fake on the host. There is no feedback channel.
type Strip interface {
	SetColor(r, g, b uint8) error
}

// Indicator maps logical states onto fixed colour/brightness pairs. Only the
// loop controller mutates it.
type Indicator struct {
	strip  Strip
	state  State
	bright uint8
	dim    uint8
}

// New returns an indicator over strip. Zero brightness levels fall back to
// the board defaults (15 bright, 5 dim).
func New(strip Strip, bright, dim uint8) *Indicator {
	if bright == 0 {
		bright = 15
	}
	if dim == 0 {
		dim = 5
	}
	return &Indicator{strip: strip, state: Initializing, bright: bright, dim: dim}
}

// SetInitializing shows blue while setup runs.
func (in *Indicator) SetInitializing() {
	in.state = Initializing
	_ = in.strip.SetColor(0, 0, in.bright)
}

// SetReady switches to the bright green idle level.
func (in *Indicator) SetReady() {
	in.state = IdleBright
	_ = in.strip.SetColor(0, in.bright, 0)
}

// ToggleIdle alternates between the two green idle levels. The controller
// calls it once per read cycle; the identity command leaves it alone.
func (in *Indicator) ToggleIdle() {
	if in.state == IdleBright {
		in.state = IdleDim
		_ = in.strip.SetColor(0, in.dim, 0)
		return
	}
	in.state = IdleBright
	_ = in.strip.SetColor(0, in.bright, 0)
}

// State reports the current logical state.
func (in *Indicator) State() State { return in.state }
