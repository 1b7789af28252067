// Package debug holds environment switched trace output.
//
// Each switch is read once at start up from an OAPI_DEBUG_* variable
// holding a value accepted by strconv.ParseBool.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Ref    bool
	Serial bool
	Infer  bool
	Patch  bool
}

var (
	d *debug
	w io.Writer = os.Stderr

	dumper = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
		MaxDepth:                6,
	}
)

func init() {
	d = &debug{}
	d.Ref = boolEnv("OAPI_DEBUG_REF")
	d.Serial = boolEnv("OAPI_DEBUG_SERIAL")
	d.Infer = boolEnv("OAPI_DEBUG_INFER")
	d.Patch = boolEnv("OAPI_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Ref traces registry lookups, stores and $ref substitutions.
func Ref() bool {
	return d.Ref
}

// Serial traces the values visited by serialization.
func Serial() bool {
	return d.Serial
}
func Infer() bool {
	return d.Infer
}
func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// LogAny dumps v, following pointers.
func LogAny(label string, v any) {
	fmt.Fprintf(w, "%s: %s", label, dumper.Sdump(v))
}

// SetOutput redirects trace output, returning the previous writer.
func SetOutput(out io.Writer) io.Writer {
	res := w
	w = out
	return res
}
