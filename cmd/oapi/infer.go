package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/infer"
	"github.com/signadot/tony-format/go-oapi/serial"

	"github.com/scott-cotton/cli"
)

func inferSchema(cfg *InferConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Infer.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := singleArg(args)
	if err != nil {
		return err
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: -name must not be empty", cli.ErrUsage)
	}
	sample, err := getObjFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	var opts []infer.Option
	if cfg.RefIf != "" {
		opts = append(opts, infer.RefIf(cfg.RefIf))
	}
	doc, err := infer.Document(cfg.Name, sample, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return writeDocument(cfg.MainConfig, cc, doc)
}

// writeDocument serializes root and encodes it to the output, logging any
// diagnostics.
func writeDocument(cfg *MainConfig, cc *cli.Context, root serial.Root) error {
	node, diags, err := serial.Document(root, serial.WithLogger(theLog))
	if err != nil {
		return err
	}
	if diags.Len() != 0 {
		theLog.Warn("document has diagnostics", "count", diags.Len())
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}
