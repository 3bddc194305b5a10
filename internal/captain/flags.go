package captain

import (
	"github.com/ActiveState/launcher/internal/errs"
)

// Flag is used to define flags in our Command struct
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Value       interface{}
}

func (c *Command) setFlags(flags []*Flag) error {
	for _, flag := range flags {
		flagSetter := c.cobra.Flags()

		switch v := flag.Value.(type) {
		case nil:
			var b bool
			flagSetter.BoolVarP(&b, flag.Name, flag.Shorthand, false, flag.Description)
		case *bool:
			flagSetter.BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *string:
			flagSetter.StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		default:
			return errs.New("Unknown type for flag %s: %T (%v)", flag.Name, v, v)
		}
	}

	return nil
}
