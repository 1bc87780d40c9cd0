package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders strategy timings: "< 1µs" below the clock
// resolution we care about, whole µs or ms below a second, and millisecond
// precision above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
