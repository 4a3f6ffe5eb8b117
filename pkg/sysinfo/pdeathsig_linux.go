package sysinfo

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// PdeathsigHook returns a function that asks the kernel to deliver
// sig to the calling process when its parent dies. Run it at the
// start of helper child processes so they exit with the main program.
func PdeathsigHook(sig syscall.Signal) func() error {
	return func() error {
		return unix.Prctl(unix.PR_SET_PDEATHSIG, uintptr(sig), 0, 0, 0)
	}
}
