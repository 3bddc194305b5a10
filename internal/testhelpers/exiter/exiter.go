package exiter

import (
	"github.com/kami-zh/go-capturer"
)

var defaultExiter = New()

// exitSignal is the panic value Exit unwinds with
type exitSignal struct{}

// Exiter stands in for os.Exit so that code calling it can be tested.
type Exiter struct {
	exitCode int
}

func New() *Exiter {
	return &Exiter{}
}

// Exit records code and unwinds to the enclosing WaitForExit.
func (e *Exiter) Exit(code int) {
	e.exitCode = code
	panic(exitSignal{})
}

// WaitForExit calls f and returns the code it exited with, or -1 if it returned without exiting.
// Other panics are re-raised. Not safe for concurrent use.
func (e *Exiter) WaitForExit(f func()) (exitCode int) {
	e.exitCode = -1
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(exitSignal); !ok {
				panic(r)
			}
			exitCode = e.exitCode
		}
	}()
	f()
	return e.exitCode
}

// Capture returns the combined stdout and stderr written while f ran, along with its exit code.
func (e *Exiter) Capture(f func()) (string, int) {
	var code int
	out := capturer.CaptureOutput(func() {
		code = e.WaitForExit(f)
	})
	return out, code
}

// CaptureStreams is like Capture but keeps stdout and stderr apart.
func (e *Exiter) CaptureStreams(f func()) (stdout string, stderr string, code int) {
	stderr = capturer.CaptureStderr(func() {
		stdout = capturer.CaptureStdout(func() {
			code = e.WaitForExit(f)
		})
	})
	return stdout, stderr, code
}

func Exit(code int) {
	defaultExiter.Exit(code)
}

func WaitForExit(f func()) int {
	return defaultExiter.WaitForExit(f)
}
