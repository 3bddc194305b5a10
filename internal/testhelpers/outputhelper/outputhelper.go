package outputhelper

import (
	"bytes"

	"github.com/ActiveState/launcher/internal/output"
)

// Catcher is a plain outputer whose streams are kept in memory.
type Catcher struct {
	Outputer  *output.Plain
	outWriter *bytes.Buffer
	errWriter *bytes.Buffer
}

func NewCatcher() *Catcher {
	catch := &Catcher{
		outWriter: &bytes.Buffer{},
		errWriter: &bytes.Buffer{},
	}
	catch.Outputer = output.NewPlain(&output.Config{
		OutWriter: catch.outWriter,
		ErrWriter: catch.errWriter,
		Colored:   false,
	})
	return catch
}

func (c *Catcher) Output() string {
	return c.outWriter.String()
}

func (c *Catcher) ErrorOutput() string {
	return c.errWriter.String()
}

func (c *Catcher) CombinedOutput() string {
	return c.Output() + "\n" + c.ErrorOutput()
}

// TypedCatcher records every value handed to it, by kind.
type TypedCatcher struct {
	Prints  []interface{}
	Errors  []interface{}
	Notices []interface{}
}

func (t *TypedCatcher) Type() output.Format {
	return output.PlainFormatName
}

func (t *TypedCatcher) Print(value interface{}) {
	t.Prints = append(t.Prints, value)
}

func (t *TypedCatcher) Error(value interface{}) {
	t.Errors = append(t.Errors, value)
}

func (t *TypedCatcher) Notice(value interface{}) {
	t.Notices = append(t.Notices, value)
}

func (t *TypedCatcher) Config() *output.Config {
	return &output.Config{}
}
