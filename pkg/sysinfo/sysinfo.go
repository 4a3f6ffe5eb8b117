// Package sysinfo probes the host system: usable CPU counts, running
// processes and the packaging environment.
package sysinfo

import (
	"math/bits"
	"os"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
)

var cpusAllowedPattern = regexp.MustCompile(`(?m)^Cpus_allowed:\s*(.*)$`)

// cpusAllowed parses the Cpus_allowed bit mask from /proc/self/status
// and returns the number of set bits, or 0 when the mask cannot be
// read. cpuset may restrict the processors actually available to the
// process, so this can be lower than the machine's CPU count.
func cpusAllowed() int {
	status, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0
	}
	m := cpusAllowedPattern.FindSubmatch(status)
	if m == nil {
		return 0
	}

	count := 0
	for _, c := range strings.ReplaceAll(string(m[1]), ",", "") {
		switch {
		case c >= '0' && c <= '9':
			count += bits.OnesCount8(uint8(c - '0'))
		case c >= 'a' && c <= 'f':
			count += bits.OnesCount8(uint8(c-'a') + 10)
		case c >= 'A' && c <= 'F':
			count += bits.OnesCount8(uint8(c-'A') + 10)
		}
	}
	return count
}

// AvailableCPUCount determines the number of CPUs available to this
// process. With physicalOnly set, hyperthreaded siblings are not
// counted. The result is always at least 1.
func AvailableCPUCount(physicalOnly bool) int {
	available := cpusAllowed()
	if available > 0 && !physicalOnly {
		return available
	}

	if physicalOnly {
		if physical, err := cpu.Counts(false); err == nil && physical > 0 {
			if available > 0 {
				return min(available, physical)
			}
			return physical
		}
	}

	return max(runtime.NumCPU(), 1)
}

// ProcessRunning searches the system's running processes for one with
// this name. With partial set, processName may match anywhere within
// a process name.
func ProcessRunning(processName string, partial bool) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if partial {
			if strings.Contains(name, processName) {
				return true
			}
		} else if name == processName {
			return true
		}
	}
	return false
}

// IsSnap reports whether the program is running inside a snap
// package.
func IsSnap() bool {
	return strings.Contains(os.Getenv("SNAP_NAME"), "rapid-photo-downloader")
}

var logOSReleaseOnce sync.Once

// LogOSRelease logs the entire contents of /etc/os-release, but only
// the first time it is called.
func LogOSRelease() {
	logOSReleaseOnce.Do(func() {
		contents, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return
		}
		for _, line := range strings.Split(strings.TrimRight(string(contents), "\n"), "\n") {
			logrus.Debug(line)
		}
	})
}
