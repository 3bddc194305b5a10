package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"

	"golang.org/x/term"

	"github.com/ActiveState/launcher/internal/captain"
	"github.com/ActiveState/launcher/internal/classifier"
	"github.com/ActiveState/launcher/internal/constants"
	"github.com/ActiveState/launcher/internal/errs"
	"github.com/ActiveState/launcher/internal/launcher"
	"github.com/ActiveState/launcher/internal/locale"
	"github.com/ActiveState/launcher/internal/logging"
	"github.com/ActiveState/launcher/internal/output"
	"github.com/ActiveState/launcher/internal/platform"
)

// Both are swapped out by tests to reach failures the host cannot produce on demand.
var (
	checkPlatform   = platform.Check
	launcherOptions []launcher.Option
)

func init() {
	// One parent waiting on one child, there is nothing to parallelize.
	runtime.GOMAXPROCS(1)
}

func main() {
	defer handlePanics(os.Exit)
	runAndExit(os.Args[1:], os.Exit)
}

func runAndExit(args []string, exiter func(int)) {
	logging.SetHandler(logging.NewVerboseHandler(os.Stderr))

	out := output.New(&output.Config{
		OutWriter:  os.Stdout,
		ErrWriter:  os.Stderr,
		Colored:    term.IsTerminal(int(os.Stdout.Fd())),
		ErrColored: term.IsTerminal(int(os.Stderr.Fd())),
	})

	code, err := unwrapError(run(args, out))
	if err != nil {
		out.Error(errs.UserMessage(err))
		for _, tip := range errs.Tips(err) {
			out.Notice(tip)
		}
	}

	logging.Close()
	exiter(code)
}

func run(args []string, out output.Outputer) error {
	if err := checkPlatform(); err != nil {
		return err
	}

	cmd := newRootCommand(out)
	return cmd.Execute(args)
}

func flags() []*captain.Flag {
	return []*captain.Flag{
		{
			Name:        constants.HelpFlagName,
			Shorthand:   constants.HelpFlagShorthand,
			Description: locale.T("flag_help_description"),
		},
		{
			Name:        constants.VerboseFlagName,
			Shorthand:   constants.VerboseFlagShorthand,
			Description: locale.T("flag_verbose_description"),
		},
	}
}

func newRootCommand(out output.Outputer) *captain.Command {
	return captain.NewCommand(
		constants.UsageLine,
		locale.T("launcher_description"),
		flags(),
		func(cmd *captain.Command, args []string) error {
			return execute(cmd, args, out)
		},
	)
}

func execute(cmd *captain.Command, args []string, out output.Outputer) error {
	if len(args) == 0 {
		out.Print(locale.T("no_arguments_provided"))
		out.Print(cmd.UsageText())
		return nil
	}

	res := classifier.New(cmd.FlagSet(), out).Classify(args)
	if res.Config.Verbose {
		logging.CurrentHandler().SetVerbose(true)
		logging.Debug("Classified %v as %v", args, res.Argv)
	}

	if res.Help {
		out.Print(cmd.UsageText())
		return nil
	}

	if res.Argv.Program() == "" {
		logging.Debug("Nothing to run")
		out.Print(cmd.UsageText())
		return nil
	}

	result, err := launcher.New(res.Config, launcherOptions...).Run(res.Argv)
	if err != nil {
		return err
	}
	if res.Config.Verbose {
		program := output.EscapeColorCodes(res.Argv.Program())
		if result.Signal != nil {
			out.Notice(locale.Tr("child_signaled", program, result.Signal.String()))
		} else {
			out.Notice(locale.Tr("child_exited", program, strconv.Itoa(result.ExitCode)))
		}
	}
	return nil
}

func handlePanics(exiter func(int)) {
	if r := recover(); r != nil {
		logging.Critical("%v - caught panic", r)
		logging.Debug("Panic: %v\n%s", r, string(debug.Stack()))

		fmt.Fprintln(os.Stderr, locale.T("err_main_panic"))
		exiter(constants.ExitFailure)
	}
}
