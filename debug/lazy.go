package debug

import "log/slog"

// Lazy defers computing a log attribute value until a handler which is
// enabled for the record resolves it.
type Lazy func() any

func (l Lazy) LogValue() slog.Value {
	return slog.AnyValue(l())
}
