// A simple levelled logging module.
//
// Logging is done just like calling fmt.Sprintf:
// 		logging.Debug("Accepted %s as the program to run", name)
//
// example output:
//	[DEBUG 14:02:11.031 launcher.go:71] Resolved echo to /usr/bin/echo
//	[DEBUG 14:02:11.033 launcher.go:93] Started child 48211 (echo)
//
// Nothing is written unless the current handler is verbose; the launcher never writes log files.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	WARN     = 4
	ERROR    = 8
	NOTICE   = 16
	CRITICAL = 32
	QUIET    = ERROR | NOTICE | CRITICAL               //setting for errors only
	NORMAL   = INFO | WARN | ERROR | NOTICE | CRITICAL // all besides debug
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL}

var LevelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARN,
	"WARN":     WARN,
	"ERROR":    ERROR,
	"NOTICE":   NOTICE,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

//default logging level is ALL
var level = ALL

// Set the logging level.
//
// This logger is set with a bit mask of active levels, e.g. for INFO and ERROR use:
// 		SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	level = l
}

// Set a minimal level for logging, setting all levels higher than this level as well.
//
// the severity order is DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, lvl := range levelsAscending {
		if lvl >= l {
			newLevel |= lvl
		}
	}
	SetLevel(newLevel)
}

// Set minimal level by name. Case insensitive.
func SetMinimalLevelByName(l string) error {
	l = strings.ToUpper(strings.TrimSpace(l))
	lvl, found := LevelsByName[l]
	if !found {
		return fmt.Errorf("Invalid level %s", l)
	}

	SetMinimalLevel(lvl)
	return nil
}

// LoggingHandler is a pluggable logger backend
type LoggingHandler interface {
	SetFormatter(Formatter)
	SetVerbose(bool)
	Verbose() bool
	Output() io.Writer
	Emit(ctx *MessageContext, message string, args ...interface{}) error
	Close()
}

type verboseHandler struct {
	mu        sync.Mutex
	formatter Formatter
	out       io.Writer
	verbose   bool
}

// NewVerboseHandler returns a handler that writes to out, but only once verbose output has been enabled.
func NewVerboseHandler(out io.Writer) *verboseHandler {
	return &verboseHandler{formatter: DefaultFormatter, out: out}
}

func (l *verboseHandler) SetFormatter(f Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

func (l *verboseHandler) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

func (l *verboseHandler) Verbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func (l *verboseHandler) Output() io.Writer {
	return l.out
}

func (l *verboseHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.verbose {
		return nil
	}
	_, err := fmt.Fprintln(l.out, l.formatter.Format(ctx, message, args...))
	return err
}

func (l *verboseHandler) Close() {}

var currentHandler LoggingHandler = NewVerboseHandler(os.Stderr)

// SetHandler sets the current handler of the library.
func SetHandler(h LoggingHandler) {
	currentHandler = h
}

func CurrentHandler() LoggingHandler {
	return currentHandler
}

type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

//get the stack (line + file) context to return the caller to the log
func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		TimeStamp: time.Now(),
		Line:      line,
	}
}

// CallIfVerbose runs f only when the current handler is verbose, for logging that is expensive to assemble.
func CallIfVerbose(f func()) {
	if currentHandler.Verbose() {
		f()
	}
}

// format the message
func writeMessage(level string, msg string, args ...interface{}) {
	writeMessageDepth(4, level, msg, args...)
}

func writeMessageDepth(depth int, level string, msg string, args ...interface{}) {
	ctx := getContext(level, depth)

	// Arguments with the signature func() interface{} are evaluated lazily, right before emitting.
	for i, arg := range args {
		if fn, ok := arg.(func() interface{}); ok {
			args[i] = fn()
		}
	}

	if err := currentHandler.Emit(ctx, msg, args...); err != nil {
		printLogError(err, ctx, msg, args...)
	}
}

func printLogError(err error, ctx *MessageContext, msg string, args ...interface{}) {
	errMsg := err.Error()
	errw := err
	for {
		errw = errors.Unwrap(errw)
		if errw == nil {
			break
		}
		errMsg += ": " + errw.Error()
	}
	fmt.Fprintf(os.Stderr, "Error writing log message: %s\n", errMsg)
	fmt.Fprintln(os.Stderr, DefaultFormatter.Format(ctx, msg, args...))
}

// Output debug logging messages
func Debug(msg string, args ...interface{}) {
	if level&DEBUG != 0 {
		writeMessage("DEBUG", msg, args...)
	}
}

//output INFO level messages
func Info(msg string, args ...interface{}) {
	if level&INFO != 0 {
		writeMessage("INFO", msg, args...)
	}
}

// Output WARNING level messages
func Warning(msg string, args ...interface{}) {
	if level&WARN != 0 {
		writeMessage("WARNING", msg, args...)
	}
}

// Output ERROR level messages, with the stack of the call site appended
func Error(msg string, args ...interface{}) {
	if level&ERROR != 0 {
		stack := pkgerrors.New("").(interface{ StackTrace() pkgerrors.StackTrace }).StackTrace()
		writeMessage("ERROR", msg+"\n\nStacktrace: "+fmt.Sprintf("%+v", stack)+"\n", args...)
	}
}

// Output a CRITICAL level message
func Critical(msg string, args ...interface{}) {
	if level&CRITICAL != 0 {
		writeMessage("CRITICAL", msg, args...)
	}
}

func Close() {
	currentHandler.Close()
}
