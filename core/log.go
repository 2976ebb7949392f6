package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// discardLogger backs every *log.Logger parameter in this package when the
// caller passes nil, so every log call site can assume a non-nil logger
// without a device-wide global (spec.md §5 forbids hidden shared state in
// the renderer config path).
var discardLogger = log.New(io.Discard)

func nonNilLogger(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return discardLogger
}
