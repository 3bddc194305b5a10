// Package classifier separates the launcher's own flags from the program to run and its arguments.
//
// Tokens are walked once, left to right. A help flag ends classification immediately, a verbose flag enables
// diagnostics, and every other token is positional: the first becomes the program name and the rest its arguments,
// in order and verbatim.
//
// Flag matching always wins over positional placement, even after the program name was seen. A program argument
// that is textually equal to one of the launcher's flags cannot be passed through.
package classifier

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ActiveState/launcher/internal/constants"
	"github.com/ActiveState/launcher/internal/locale"
	"github.com/ActiveState/launcher/internal/logging"
	"github.com/ActiveState/launcher/internal/output"
)

// Config is the launcher configuration gathered from the command line.
type Config struct {
	Verbose bool
}

// Argv is the program to run at index 0, followed by its arguments.
type Argv []string

// Program returns the program name, or an empty string when none was given.
func (a Argv) Program() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// Args returns the arguments for the program.
func (a Argv) Args() []string {
	if len(a) < 2 {
		return nil
	}
	return a[1:]
}

// Result is the outcome of classifying a command line.
type Result struct {
	Help   bool
	Config Config
	Argv   Argv
}

// Classifier matches tokens against a flag set.
type Classifier struct {
	flags *pflag.FlagSet
	out   output.Outputer
}

// New returns a Classifier that recognizes the help and verbose flags declared in flags.
func New(flags *pflag.FlagSet, out output.Outputer) *Classifier {
	return &Classifier{flags, out}
}

// Classify walks tokens, which must not include the launcher's own invocation name.
func (c *Classifier) Classify(tokens []string) Result {
	var res Result
	argv := Argv{}

	for _, token := range tokens {
		switch c.match(token) {
		case constants.HelpFlagName:
			logging.Debug("Help requested by %s", token)
			return Result{Help: true, Config: res.Config}
		case constants.VerboseFlagName:
			res.Config.Verbose = true
			continue
		}

		if len(argv) == 0 {
			if res.Config.Verbose {
				c.out.Notice(locale.Tr("classify_accept_program", output.EscapeColorCodes(token)))
			}
		} else if res.Config.Verbose {
			c.out.Notice(locale.Tr("classify_add_argument", output.EscapeColorCodes(token), output.EscapeColorCodes(argv[0])))
		}
		argv = append(argv, token)
	}

	res.Argv = argv
	return res
}

// match returns the name of the flag that token spells out exactly, or an empty string.
// `--name` matches the long form, `-x` the shorthand. Values, `--name=...` and combined shorthands are not flags.
func (c *Classifier) match(token string) string {
	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(token, "---"):
		return ""
	case strings.HasPrefix(token, "--") && len(token) > 2:
		flag = c.flags.Lookup(token[2:])
	case strings.HasPrefix(token, "-") && len(token) == 2 && token[1] != '-':
		flag = c.flags.ShorthandLookup(token[1:])
	}
	if flag == nil {
		return ""
	}
	return flag.Name
}
