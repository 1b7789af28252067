package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/format"
	"github.com/signadot/tony-format/go-oapi/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	if cfg.Reverse {
		d, err = libdiff.Reverse(d)
		if err != nil {
			return fmt.Errorf("error reversing: %w", err)
		}
	}
	// diffs carry tags, which json cannot hold
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(format.YAMLFormat), encode.EncodeWire(false))
	if err := encode.Encode(d, cc.Out, opts...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
