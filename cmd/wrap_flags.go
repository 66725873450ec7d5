package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

// WrapFlags makes flags loadable from the --config-file YAML source. It panics on a flag type
// the keymanager commands do not declare, which is a programming error.
func WrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, len(flags))
	for i, f := range flags {
		w, err := wrapFlag(f)
		if err != nil {
			panic(err)
		}
		wrapped[i] = w
	}
	return wrapped
}

func wrapFlag(f cli.Flag) (cli.Flag, error) {
	switch t := f.(type) {
	case *cli.StringFlag:
		return altsrc.NewStringFlag(t), nil
	case *cli.BoolFlag:
		return altsrc.NewBoolFlag(t), nil
	case *cli.DurationFlag:
		return altsrc.NewDurationFlag(t), nil
	case *cli.Float64Flag:
		return altsrc.NewFloat64Flag(t), nil
	case *cli.IntFlag:
		return altsrc.NewIntFlag(t), nil
	default:
		return nil, fmt.Errorf("flag %s of type %T cannot be loaded from a config file", f.Names()[0], f)
	}
}
