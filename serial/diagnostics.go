package serial

import (
	"fmt"
	"strings"
)

const CodeRedefinition = "redefinition"

// Diagnostic is a warning produced while serializing.
type Diagnostic struct {
	Code    string
	RefName string
	// Path locates the rejected definition.
	Path string
	// Diff is the YAML encoded structural diff from the kept definition
	// to the rejected one.
	Diff string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %q at %s differs from the first definition:\n%s", d.Code, d.RefName, d.Path, d.Diff)
}

type Diagnostics struct {
	List []Diagnostic
}

func (d *Diagnostics) add(diag Diagnostic) {
	d.List = append(d.List, diag)
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.List)
}

func (d *Diagnostics) String() string {
	buf := &strings.Builder{}
	for i := range d.List {
		buf.WriteString(d.List[i].String())
		if !strings.HasSuffix(d.List[i].Diff, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
