//go:build windows

package chrono

import "golang.org/x/sys/windows"

// cpuTime returns the kernel plus user CPU time consumed by the process,
// in seconds.
func cpuTime() float64 {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return 0
	}
	return float64(kernel.Nanoseconds()+user.Nanoseconds()) / 1e9
}
