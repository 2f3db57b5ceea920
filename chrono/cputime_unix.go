//go:build unix

package chrono

import "golang.org/x/sys/unix"

// cpuTime returns the user plus system CPU time consumed by the process,
// in seconds.
func cpuTime() float64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return float64(ru.Utime.Nano()+ru.Stime.Nano()) / 1e9
}
