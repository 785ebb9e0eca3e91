// Package serialcmd accumulates newline-terminated command lines from a
// serial port without ever blocking the caller.
package serialcmd

const (
	minLineCap = 16
	maxLineCap = 256
)

// Port is the byte stream the reader polls. machine.Serial and uartx UARTs
// both satisfy it.
type Port interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// Reader buffers incoming bytes until a line terminator and hands out each
// completed line exactly once.
type Reader struct {
	port Port
	line []byte
	max  int
}

// New clamps maxLine to 16..256 and returns a reader over port.
func New(port Port, maxLine int) *Reader {
	if maxLine < minLineCap {
		maxLine = minLineCap
	}
	if maxLine > maxLineCap {
		maxLine = maxLineCap
	}
	return &Reader{port: port, line: make([]byte, 0, maxLine), max: maxLine}
}

// Poll drains bytes the port has buffered and reports whether a complete
// line became available. Lines split on LF; CR is ignored. Bytes past the
// line cap are dropped until the terminator arrives. Absence of a complete
// line yields ("", false) immediately; Poll never waits for input.
//
// When more than one line is buffered, Poll returns the first and leaves the
// rest for subsequent calls, so the caller sees one command per poll.
func (r *Reader) Poll() (string, bool) {
	for r.port.Buffered() > 0 {
		b, err := r.port.ReadByte()
		if err != nil {
			break
		}
		switch b {
		case '\n':
			cmd := string(r.line)
			r.line = r.line[:0]
			return cmd, true
		case '\r':
			// ignore
		default:
			if len(r.line) < r.max {
				r.line = append(r.line, b)
			}
		}
	}
	return "", false
}
