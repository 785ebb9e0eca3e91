package indicator

import "testing"

type recStrip struct {
	r, g, b uint8
	sets    int
}

func (s *recStrip) SetColor(r, g, b uint8) error {
	s.r, s.g, s.b = r, g, b
	s.sets++
	return nil
}

func TestLifecycleColours(t *testing.T) {
	s := &recStrip{}
	in := New(s, 15, 5)

	in.SetInitializing()
	if s.r != 0 || s.g != 0 || s.b != 15 {
		t.Fatalf("initializing colour = (%d,%d,%d), want (0,0,15)", s.r, s.g, s.b)
	}
	if in.State() != Initializing {
		t.Fatalf("state = %v, want initializing", in.State())
	}

	in.SetReady()
	if s.r != 0 || s.g != 15 || s.b != 0 {
		t.Fatalf("ready colour = (%d,%d,%d), want (0,15,0)", s.r, s.g, s.b)
	}
	if in.State() != IdleBright {
		t.Fatalf("state = %v, want idle_bright", in.State())
	}
}

func TestToggleAlternates(t *testing.T) {
	s := &recStrip{}
	in := New(s, 15, 5)
	in.SetReady()

	in.ToggleIdle()
	if in.State() != IdleDim || s.g != 5 {
		t.Fatalf("after first toggle: state=%v g=%d, want idle_dim g=5", in.State(), s.g)
	}
	in.ToggleIdle()
	if in.State() != IdleBright || s.g != 15 {
		t.Fatalf("after second toggle: state=%v g=%d, want idle_bright g=15", in.State(), s.g)
	}
	in.ToggleIdle()
	if in.State() != IdleDim || s.g != 5 {
		t.Fatalf("after third toggle: state=%v g=%d, want idle_dim g=5", in.State(), s.g)
	}
}

func TestZeroLevelsFallBack(t *testing.T) {
	s := &recStrip{}
	in := New(s, 0, 0)
	in.SetReady()
	if s.g != 15 {
		t.Fatalf("bright default = %d, want 15", s.g)
	}
	in.ToggleIdle()
	if s.g != 5 {
		t.Fatalf("dim default = %d, want 5", s.g)
	}
}

func TestStateStrings(t *testing.T) {
	type C struct {
		s    State
		want string
	}
	for _, c := range []C{
		{Initializing, "initializing"},
		{IdleBright, "idle_bright"},
		{IdleDim, "idle_dim"},
	} {
		if got := c.s.String(); got != c.want {
			t.Fatalf("State(%d).String() = %q, want %q", c.s, got, c.want)
		}
	}
}
