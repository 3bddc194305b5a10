package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ActiveState/launcher/internal/logging"
)

// Plain is our plain outputer: Print goes to the out writer, Notice and Error go to the error writer so that they
// never mix with what a launched program writes to stdout.
type Plain struct {
	cfg *Config
}

// NewPlain constructs a new Plain struct
func NewPlain(config *Config) *Plain {
	return &Plain{config}
}

// Type tells callers what type of outputer we are
func (f *Plain) Type() Format {
	return PlainFormatName
}

// Print will print the given value to the output writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value, f.cfg.Colored)
}

// Notice will print the given value to the error writer
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value, f.cfg.ErrColored)
}

// Error will print the given value to the error writer, in red. Error messages carry no markup of their own, any
// color tags in them are printed as is.
func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("[RED]%s[/RESET]", EscapeColorCodes(sprint(value))), f.cfg.ErrColored)
}

// Config returns the Config struct for the active instance
func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}, colored bool) {
	v := sprint(value)
	if !strings.HasSuffix(v, "\n") {
		v += "\n"
	}
	if _, err := writeColorized(v, writer, !colored); err != nil {
		logging.Warning("Could not write output: %v", err)
	}
}

func sprint(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
