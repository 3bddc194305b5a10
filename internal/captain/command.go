package captain

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	flags []*Flag

	execute Executor
}

// NewCommand creates a command whose executor receives every token verbatim. Flags are declared for the usage text
// and for lookups only, cobra never parses them, so tokens aimed at a launched program are never rejected.
func NewCommand(use, description string, flags []*Flag, executor Executor) *Command {
	cmd := &Command{
		execute: executor,
		flags:   flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:   use,
		Short: short,
		Long:  description,
		RunE:  cmd.runner,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}
	cmd.cobra.SetUsageTemplate(usageTemplate())

	return cmd
}

func (c *Command) Name() string {
	return c.cobra.Name()
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

func (c *Command) Flags() []*Flag {
	return c.flags
}

// FlagSet returns the pflag set holding the declared flags.
func (c *Command) FlagSet() *pflag.FlagSet {
	return c.cobra.Flags()
}

func (c *Command) Execute(args []string) error {
	// cobra falls back on os.Args when the args are nil
	if args == nil {
		args = []string{}
	}
	// cobra intercepts its hidden completion commands before any executor runs
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return c.execute(c, args)
	}
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return err
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	return c.execute(c, args)
}
