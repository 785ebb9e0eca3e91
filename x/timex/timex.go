package timex

import "time"

var boot = time.Now()

// Millis returns monotonic milliseconds since boot. The value never
// decreases; it is the first field of every report line.
func Millis() int64 { return time.Since(boot).Milliseconds() }
