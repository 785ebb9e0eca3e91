// logger/report.go
package logger

import (
	"math"

	"envlogger-go/types"
	"envlogger-go/x/strconvx"
)

// appendReport renders one report line (no terminator): monotonic millis,
// probe °C (1 dp), env °C (1 dp), humidity % (1 dp), pressure Pa (0 dp),
// tab-separated.
func appendReport(dst []byte, r types.Reading) []byte {
	dst = append(dst, strconvx.FormatInt(r.TSms, 10)...)
	dst = append(dst, '\t')
	dst = appendFixed(dst, float64(r.ProbeTempC), 1)
	dst = append(dst, '\t')
	dst = appendFixed(dst, float64(r.EnvTempC), 1)
	dst = append(dst, '\t')
	dst = appendFixed(dst, float64(r.EnvHumidityPct), 1)
	dst = append(dst, '\t')
	dst = appendFixed(dst, float64(r.EnvPressurePa), 0)
	return dst
}

// appendFixed renders v rounded half away from zero to prec decimals, using
// integer math so host and MCU builds agree. NaN renders as the literal
// "nan", which the desktop logger parses as an invalid probe reading.
func appendFixed(dst []byte, v float64, prec int) []byte {
	if math.IsNaN(v) {
		return append(dst, "nan"...)
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			dst = append(dst, '-')
		}
		return append(dst, "inf"...)
	}

	scale := int64(1)
	for i := 0; i < prec; i++ {
		scale *= 10
	}
	neg := v < 0
	if neg {
		v = -v
	}
	n := int64(v*float64(scale) + 0.5)
	if neg && n != 0 {
		dst = append(dst, '-')
	}
	dst = append(dst, strconvx.FormatInt(n/scale, 10)...)
	if prec > 0 {
		dst = append(dst, '.')
		frac := n % scale
		for d := scale / 10; d > 1 && frac < d; d /= 10 {
			dst = append(dst, '0')
		}
		dst = append(dst, strconvx.FormatInt(frac, 10)...)
	}
	return dst
}
