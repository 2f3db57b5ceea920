//go:build !unix && !windows

package chrono

// cpuTime reports zero where no process CPU accounting is available.
func cpuTime() float64 {
	return 0
}
