package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// getDocs reads the "---" separated documents of path.
func getDocs(cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	parts := bytes.Split(d, []byte("\n---\n"))
	res := make([]*ir.Node, 0, len(parts))
	for i, part := range parts {
		node, err := parse.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, path, err)
		}
		res = append(res, node)
	}
	return res, nil
}

// singleArg returns the file argument of commands reading one document,
// "-" for stdin.
func singleArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
}
