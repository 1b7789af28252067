package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi"
	"github.com/signadot/tony-format/go-oapi/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.PatchCmd.Parse(cc, args)
	if err != nil {
		cfg.PatchCmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: patch requires -p patchfile", cli.ErrUsage)
	}
	file, err := singleArg(args)
	if err != nil {
		return err
	}
	if file == "-" && cfg.Patch == "-" {
		return fmt.Errorf("%w: patch and document cannot both be stdin", cli.ErrUsage)
	}
	p, err := getObjFile(cc, cfg.Patch)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", cfg.Patch, err)
	}
	target, err := getObjFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	apply := oapi.Patch
	if cfg.Merge {
		apply = oapi.MergePatch
	}
	res, err := apply(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
