//go:build unix

package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sys/unix"

	"github.com/ActiveState/launcher/internal/launcher"
	"github.com/ActiveState/launcher/internal/platform"
	"github.com/ActiveState/launcher/internal/testhelpers/exiter"
)

type MainTestSuite struct {
	suite.Suite
	exiter *exiter.Exiter
}

func (suite *MainTestSuite) SetupTest() {
	suite.exiter = exiter.New()
}

func (suite *MainTestSuite) run(args ...string) (stdout, stderr string, code int) {
	return suite.exiter.CaptureStreams(func() {
		runAndExit(args, suite.exiter.Exit)
	})
}

func (suite *MainTestSuite) assertUsage(stdout string) {
	suite.Contains(stdout, "launcher : run a program as a child process")
	suite.Contains(stdout, "Usage:  launcher [-h/--help] [-v/--verbose] [prog] [args]")
	suite.Regexp(`-h, --help\s+Displays this help message\.`, stdout)
	suite.Regexp(`-v, --verbose\s+Prints out more information\.`, stdout)
}

func (suite *MainTestSuite) TestNoArguments() {
	stdout, _, code := suite.run()
	suite.Equal(0, code)
	suite.Regexp(`^No arguments provided\.\nlauncher : `, stdout)
	suite.assertUsage(stdout)
}

func (suite *MainTestSuite) TestHelpAnywhere() {
	for _, args := range [][]string{
		{"-h"},
		{"--help"},
		{"-v", "--help"},
		{"echo", "hi", "-h"},
		{"definitely-not-a-real-program-xyz", "--help"},
	} {
		stdout, stderr, code := suite.run(args...)
		suite.Equal(0, code, "args: %v", args)
		suite.assertUsage(stdout)
		suite.NotContains(stdout, "hi\n", "nothing was launched for %v", args)
		suite.NotContains(stderr, "failed", "nothing was launched for %v", args)
	}
}

func (suite *MainTestSuite) TestOnlyVerbose() {
	stdout, _, code := suite.run("-v", "--verbose")
	suite.Equal(0, code)
	suite.assertUsage(stdout)
}

func (suite *MainTestSuite) TestTrue() {
	stdout, stderr, code := suite.run("true")
	suite.Equal(0, code)
	suite.Empty(stdout)
	suite.Empty(stderr)
}

func (suite *MainTestSuite) TestEchoHelloWorld() {
	stdout, stderr, code := suite.run("echo", "hello", "world")
	suite.Equal(0, code)
	suite.Equal("hello world\n", stdout)
	suite.Empty(stderr)
}

func (suite *MainTestSuite) TestChildFailureStillSucceeds() {
	_, stderr, code := suite.run("false")
	suite.Equal(0, code)
	suite.Empty(stderr)
}

func (suite *MainTestSuite) TestVerboseFalse() {
	stdout, stderr, code := suite.run("-v", "false")
	suite.Equal(0, code)
	suite.Empty(stdout)
	suite.Contains(stderr, "Accepting false as the program to run.")
	suite.Contains(stderr, "false exited with code 1.")
}

func (suite *MainTestSuite) TestVerboseArguments() {
	stdout, stderr, code := suite.run("echo", "-v", "hi", "there")
	suite.Equal(0, code)
	suite.Equal("hi there\n", stdout)
	suite.Contains(stderr, "Adding hi as an argument to echo.")
	suite.Contains(stderr, "Adding there as an argument to echo.")
	suite.NotContains(stderr, "Accepting echo", "echo was classified before verbose was enabled")
}

func (suite *MainTestSuite) TestVerboseIdempotent() {
	onceOut, onceErr, onceCode := suite.run("-v", "echo", "hi")
	twiceOut, twiceErr, twiceCode := suite.run("-v", "-v", "echo", "hi")

	suite.Equal(onceCode, twiceCode)
	suite.Equal(onceOut, twiceOut)
	suite.Equal("hi\n", twiceOut)
	for _, notice := range []string{"Accepting echo as the program to run.", "Adding hi as an argument to echo."} {
		suite.Contains(onceErr, notice)
		suite.Contains(twiceErr, notice)
	}
}

func (suite *MainTestSuite) TestProgramNotFound() {
	stdout, stderr, code := suite.run("definitely-not-a-real-program-xyz")
	suite.Equal(1, code)
	suite.Empty(stdout)
	suite.Contains(stderr, "Running definitely-not-a-real-program-xyz failed. Are you sure the program exists?")
	suite.Contains(stderr, "Run 'launcher --help' for usage.")
}

func (suite *MainTestSuite) TestVerboseDoesNotLeakIntoNextRun() {
	suite.run("-v", "true")
	_, stderr, code := suite.run("true")
	suite.Equal(0, code)
	suite.Empty(stderr)
}

func (suite *MainTestSuite) TestProcessCreationFailure() {
	launcherOptions = []launcher.Option{launcher.OptStarter(func(cmd *exec.Cmd) error {
		return &os.PathError{Op: "fork/exec", Path: cmd.Path, Err: unix.EAGAIN}
	})}
	defer func() { launcherOptions = nil }()

	stdout, stderr, code := suite.run("echo", "hi")
	suite.Equal(1, code)
	suite.Empty(stdout, "no child ran")
	suite.Contains(stderr, "Process unable to be created. PID : -1.")
	suite.NotContains(stderr, "--help", "creation failures are not input errors")
}

func (suite *MainTestSuite) TestUnsupportedPlatform() {
	checkPlatform = func() error { return platform.CheckOS("plan9") }
	defer func() { checkPlatform = platform.Check }()

	stdout, stderr, code := suite.run("echo", "hi")
	suite.Equal(1, code)
	suite.Empty(stdout, "the platform is checked before anything is launched")
	suite.Contains(stderr, "Platform not supported. Please use a linux based OS to run this.")
}

func (suite *MainTestSuite) TestMarkupInTokensIsPrintedVerbatim() {
	_, stderr, code := suite.run("[BOLD]nope-xyz")
	suite.Equal(1, code)
	suite.Contains(stderr, "Running [BOLD]nope-xyz failed. Are you sure the program exists?")

	stdout, stderr, code := suite.run("-v", "echo", "[RED]x")
	suite.Equal(0, code)
	suite.Equal("[RED]x\n", stdout)
	suite.Contains(stderr, "Adding [RED]x as an argument to echo.")
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}
