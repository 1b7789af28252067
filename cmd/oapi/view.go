package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	first := true
	for _, file := range args {
		docs, err := getDocs(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if err := encode.Encode(doc, cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding document %d of %s: %w", i, file, err)
			}
		}
	}
	return nil
}
