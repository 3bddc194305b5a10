package launcher

import (
	"errors"
	"os"
	"os/exec"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/ActiveState/launcher/internal/classifier"
	"github.com/ActiveState/launcher/internal/errs"
	"github.com/ActiveState/launcher/internal/locale"
	"github.com/ActiveState/launcher/internal/logging"
	"github.com/ActiveState/launcher/internal/osutils"
)

// Starter creates the child process for cmd. It is the only place the launcher touches the OS process factory.
type Starter func(cmd *exec.Cmd) error

// Option configures a Launcher
type Option func(l *Launcher)

// OptStarter replaces the default starter, (*exec.Cmd).Start.
func OptStarter(s Starter) Option {
	return func(l *Launcher) {
		l.start = s
	}
}

// Result describes how the child process ended.
type Result struct {
	Pid      int
	ExitCode int
	Signal   os.Signal
}

// Launcher runs one program as a child process and waits for it.
type Launcher struct {
	cfg   classifier.Config
	start Starter
}

func New(cfg classifier.Config, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:   cfg,
		start: (*exec.Cmd).Start,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run starts argv[0] with the remaining elements as its arguments and blocks until that specific child exits.
// There is no timeout and no cancellation.
//
// The returned error is only about launching: a child that ran and exited non-zero, or was killed by a signal, is
// not an error. Its status is reported in the Result.
func (l *Launcher) Run(argv classifier.Argv) (*Result, error) {
	program := argv.Program()
	if program == "" {
		return nil, locale.NewInputError("err_no_program", "No program to run was provided.")
	}

	if l.cfg.Verbose {
		if resolved, err := exec.LookPath(program); err == nil {
			logging.Debug("Resolved %s to %s", program, resolved)
		} else {
			logging.Debug("Could not resolve %s: %v", program, err)
		}
	}

	logging.Info("Launching %s with %d argument(s)", program, len(argv.Args()))
	cmd := osutils.Command(program, argv.Args()...)
	if err := l.start(cmd); err != nil {
		if isProcessCreationFailure(err) {
			return nil, newProcessCreationError(err)
		}
		return nil, newExecutionError(err, program)
	}

	pid := cmd.Process.Pid
	logging.CallIfVerbose(func() {
		describeChild(pid)
	})

	waitErr := cmd.Wait()
	res := &Result{
		Pid:      pid,
		ExitCode: osutils.CmdExitCode(cmd),
	}
	if sig, ok := osutils.TerminatingSignal(cmd.ProcessState); ok {
		res.Signal = sig
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, newWaitError(waitErr, program)
		}
	}

	if res.Signal != nil {
		logging.Debug("Child %d (%s) was terminated by %v", pid, program, res.Signal)
	} else {
		logging.Debug("Child %d (%s) exited with code %d", pid, program, res.ExitCode)
	}

	return res, nil
}

func describeChild(pid int) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		logging.Debug("Could not inspect child %d: %v", pid, errs.JoinMessage(err))
		return
	}
	name, err := proc.Name()
	if err != nil {
		logging.Debug("Could not get the name of child %d: %v", pid, errs.JoinMessage(err))
		return
	}
	logging.Debug("Started child %d (%s)", pid, name)
}
