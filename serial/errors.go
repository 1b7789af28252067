package serial

import (
	"errors"
	"fmt"
)

var (
	ErrNoRefName    = errors.New("no ref name")
	ErrKeyType      = errors.New("mapping key is not a string")
	ErrUnsupported  = errors.New("unsupported value")
	ErrCycle        = errors.New("circular reference")
	ErrNoRegistry   = errors.New("no registry")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Error is a serialization failure at a document path such as
// "$.paths./pets.get".
type Error struct {
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("serial error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("serial error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
