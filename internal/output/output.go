package output

import (
	"io"
)

type Format string

// PlainFormatName is the only supported output format, human readable text.
const PlainFormatName Format = "plain"

// Outputer is the initialized formatter
type Outputer interface {
	Type() Format
	Print(value interface{})
	Notice(value interface{})
	Error(value interface{})
	Config() *Config
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter  io.Writer
	ErrWriter  io.Writer
	Colored    bool // color tags are rendered on OutWriter
	ErrColored bool // color tags are rendered on ErrWriter
}

// New constructs a new Outputer
func New(config *Config) Outputer {
	return NewPlain(config)
}
