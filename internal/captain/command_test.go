package captain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() []*Flag {
	return []*Flag{
		{Name: "help", Shorthand: "h", Description: "Displays this help message."},
		{Name: "verbose", Shorthand: "v", Description: "Prints out more information."},
	}
}

func TestExecutePassesTokensVerbatim(t *testing.T) {
	var got []string
	cmd := NewCommand("launcher [prog] [args]", "runs things. more detail", testFlags(), func(cmd *Command, args []string) error {
		got = args
		return nil
	})

	require.NoError(t, cmd.Execute([]string{"ls", "-la", "--unknown", "-v", "--help"}))
	assert.Equal(t, []string{"ls", "-la", "--unknown", "-v", "--help"}, got)
}

func TestExecuteNilArgs(t *testing.T) {
	var got []string
	called := false
	cmd := NewCommand("launcher", "runs things", testFlags(), func(cmd *Command, args []string) error {
		called = true
		got = args
		return nil
	})

	require.NoError(t, cmd.Execute(nil))
	assert.True(t, called)
	assert.Empty(t, got, "nil args must not fall back on the test binary's own arguments")
}

func TestUsageText(t *testing.T) {
	cmd := NewCommand("launcher [prog] [args]", "runs things. more detail", testFlags(), func(*Command, []string) error { return nil })

	assert.Equal(t, "launcher", cmd.Name())
	usage := cmd.UsageText()
	assert.Contains(t, usage, "launcher : runs things")
	assert.Contains(t, usage, "Usage:  launcher [prog] [args]")
	assert.Regexp(t, `-h, --help\s+Displays this help message\.`, usage)
	assert.Regexp(t, `-v, --verbose\s+Prints out more information\.`, usage)
}

func TestFlagSet(t *testing.T) {
	verbose := false
	name := "default"
	cmd := NewCommand("launcher", "runs things", []*Flag{
		{Name: "verbose", Shorthand: "v", Value: &verbose},
		{Name: "name", Value: &name},
	}, func(*Command, []string) error { return nil })

	assert.NotNil(t, cmd.FlagSet().Lookup("verbose"))
	assert.NotNil(t, cmd.FlagSet().ShorthandLookup("v"))
	assert.Equal(t, "default", cmd.FlagSet().Lookup("name").DefValue)
	assert.Len(t, cmd.Flags(), 2)
}

func TestUnknownFlagType(t *testing.T) {
	assert.Panics(t, func() {
		NewCommand("launcher", "runs things", []*Flag{{Name: "count", Value: new(int)}}, func(*Command, []string) error { return nil })
	})
}

func TestExecuteCompletionTokenIsPositional(t *testing.T) {
	var got []string
	cmd := NewCommand("launcher", "runs things", testFlags(), func(cmd *Command, args []string) error {
		got = args
		return nil
	})

	require.NoError(t, cmd.Execute([]string{"__complete", "x"}))
	assert.Equal(t, []string{"__complete", "x"}, got)
}
