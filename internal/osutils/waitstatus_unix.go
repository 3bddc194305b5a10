//go:build unix

package osutils

import (
	"os"
	"syscall"
)

// TerminatingSignal reports the signal that ended the process, if any.
func TerminatingSignal(state *os.ProcessState) (os.Signal, bool) {
	if state == nil {
		return nil, false
	}
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return nil, false
	}
	return ws.Signal(), true
}
