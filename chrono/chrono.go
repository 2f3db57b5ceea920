// Package chrono provides a stopwatch over consumed CPU time. A Chrono
// measures the user plus system time charged to the process since it was
// started or last reset, not wall-clock time, so sleeping and blocking do
// not advance it.
package chrono

import "fmt"

// Chrono is an independent CPU-time stopwatch. Several can run at once;
// each only tracks its own starting point.
type Chrono struct {
	base float64
}

// New returns a started stopwatch.
func New() *Chrono {
	c := &Chrono{}
	c.Reset()
	return c
}

// Reset restarts the stopwatch at zero.
func (c *Chrono) Reset() {
	c.base = cpuTime()
}

// Seconds returns the CPU time in seconds consumed since the last Reset.
func (c *Chrono) Seconds() float64 {
	return cpuTime() - c.base
}

// Minutes returns the CPU time in minutes consumed since the last Reset.
func (c *Chrono) Minutes() float64 {
	return c.Seconds() / 60
}

// Hours returns the CPU time in hours consumed since the last Reset.
func (c *Chrono) Hours() float64 {
	return c.Seconds() / 3600
}

// Format renders the current reading as "H:M:S.cc".
func (c *Chrono) Format() string {
	return Format(c.Seconds())
}

// Format converts a time in seconds to a "H:M:S.cc" string, rounded to
// centiseconds.
func Format(seconds float64) string {
	cs := int64(seconds*100 + 0.5)
	h := cs / 360000
	cs -= h * 360000
	m := cs / 6000
	cs -= m * 6000
	s := cs / 100
	cs -= s * 100
	return fmt.Sprintf("%d:%d:%d.%02d", h, m, s, cs)
}
