//go:build !unix

package osutils

import "os"

// TerminatingSignal always reports false, processes on this platform do not end by signal.
func TerminatingSignal(state *os.ProcessState) (os.Signal, bool) {
	return nil, false
}
