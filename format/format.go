// Package format names the document encodings written by encode.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[string]Format{
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"yml":  YAMLFormat,
	"j":    JSONFormat,
	"json": JSONFormat,
}

func ParseFormat(v string) (Format, error) {
	if f, ok := names[v]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	}
	return fmt.Sprintf("<err: %d is not a format>", int(f))
}

// FromPath guesses a format from a file name, defaulting to YAML.
func FromPath(p string) Format {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if f, ok := names[ext]; ok && len(ext) > 1 {
		return f
	}
	return YAMLFormat
}
