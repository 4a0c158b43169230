package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// stackTracer matches github.com/pkg/errors's own (unexported) stack-
// trace interface, satisfied by anything built via errors.New/Wrap/
// Wrapf/WithStack. bus.ProgrammingError itself carries no stack trace --
// it panics as a bare struct so callers can type-assert on it directly --
// but cpu.Run's errors.Wrapf call adds one (and the PC) before the error
// ever reaches main, so it's always present by the time logHalt sees it.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

func formatStack(st stackTracer) string {
	return fmt.Sprintf("%+v", st.StackTrace())
}
