package failure

import (
	"errors"

	"github.com/next-trace/scg-valuetype/contract"
)

// Wrap attaches a cause to a new Failure. If cause is nil, an opaque cause is
// created. It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, kind Kind, code, message string, ctx map[string]any) *Failure {
	if cause == nil {
		cause = errors.New("unknown")
	}

	f := New(kind, code, message, ctx)
	f.cause = cause

	return f
}

// Ensure converts any error to *Failure.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Failure => returned as-is (same pointer)
//   - otherwise wrap it into a generic operation failure
func Ensure(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure

	if errors.As(err, &f) {
		return f
	}

	return Wrap(err, contract.KindOperation, "value.internal", "internal failure", nil)
}
