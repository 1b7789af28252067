package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/format"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output compact json'"`
	Verbose bool `cli:"name=v desc='log registry events'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	case cfg.Out != "" && cfg.Out != "-":
		fmt = format.FromPath(cfg.Out)
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			// -color=false
			return res
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type InferConfig struct {
	*MainConfig
	Name  string `cli:"name=name desc='name of the root schema'"`
	RefIf string `cli:"name=ref-if desc='expression selecting objects to name, over name key path depth fields'"`

	Infer *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch string `cli:"name=p desc='patch file'"`
	Merge bool   `cli:"name=merge desc='apply as a json merge patch'"`

	PatchCmd *cli.Command
}

type DemoConfig struct {
	*MainConfig
	Conflict bool `cli:"name=conflict desc='redefine a component to show diagnostics'"`

	Demo *cli.Command
}
