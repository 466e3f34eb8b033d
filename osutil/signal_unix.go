//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"os/signal"
	"syscall"
)

// StatusNotify asks the OS to send status request signals to the supplied channel. On
// Unix this is SIGUSR1 which can be sent with "pkill -USR1 mailprobe" while a slow audit
// is in progress.
func StatusNotify(c chan os.Signal) {
	signal.Notify(c, syscall.SIGUSR1)
}

// StatusStop reverses StatusNotify.
func StatusStop(c chan os.Signal) {
	signal.Stop(c)
}

// IsSignalUSR1 returns true if the supplied signal is SIGUSR1. A noop on Windows.
func IsSignalUSR1(s os.Signal) bool {
	return s == syscall.SIGUSR1
}
