package logger

import (
	"math"
	"strings"
	"testing"

	"envlogger-go/types"
)

func TestAppendReport_Scenario(t *testing.T) {
	r := types.Reading{
		TSms:           12345,
		ProbeTempC:     21.3,
		EnvTempC:       21.5,
		EnvHumidityPct: 45.2,
		EnvPressurePa:  101325,
	}
	got := string(appendReport(nil, r))
	want := "12345\t21.3\t21.5\t45.2\t101325"
	if got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
	if n := strings.Count(got, "\t"); n != 4 {
		t.Fatalf("tab count = %d, want 4", n)
	}
}

func TestAppendReport_NaNProbe(t *testing.T) {
	r := types.Reading{
		TSms:           1,
		ProbeTempC:     float32(math.NaN()),
		EnvTempC:       20,
		EnvHumidityPct: 50,
		EnvPressurePa:  100000,
	}
	got := string(appendReport(nil, r))
	want := "1\tnan\t20.0\t50.0\t100000"
	if got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
}

func TestAppendFixed(t *testing.T) {
	type C struct {
		v    float64
		prec int
		want string
	}
	for _, c := range []C{
		{0, 1, "0.0"},
		{0, 0, "0"},
		{21.25, 1, "21.3"},
		{21.24, 1, "21.2"},
		{-5.25, 1, "-5.3"},
		{-0.04, 1, "0.0"}, // rounds to zero; no negative zero in output
		{9.99, 1, "10.0"},
		{101325.4, 0, "101325"},
		{101325.5, 0, "101326"},
		{1.04, 2, "1.04"},
		{1.006, 2, "1.01"},
		{2, 2, "2.00"},
		{math.NaN(), 1, "nan"},
		{math.Inf(1), 1, "inf"},
		{math.Inf(-1), 1, "-inf"},
	} {
		if got := string(appendFixed(nil, c.v, c.prec)); got != c.want {
			t.Fatalf("appendFixed(%v, %d) = %q, want %q", c.v, c.prec, got, c.want)
		}
	}
}
