// Package failure provides the structured failure type for scg-valuetype.
//
// It defines a single concrete type Failure with immutable, defensively-cloned
// context and support for errors.Is / errors.As via Unwrap.
package failure

import (
	"fmt"

	"github.com/next-trace/scg-valuetype/contract"
)

// Failure is the canonical error type for scg-valuetype.
//
// Fields:
//   - Kind:    taxonomy category (validation, conversion, operation, ...)
//   - Code:    stable, machine-facing code (e.g. "integer.overflow")
//   - Message: human-readable detail
//   - Context: everything else (offending value, operands, attribute names)
type Failure struct {
	kind    contract.Kind
	code    string
	message string
	context map[string]any
	cause   error
}

// compile-time guarantee that *Failure implements contract.Failure
var _ contract.Failure = (*Failure)(nil)

// ------ standard error interface

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	// Compact, dev-friendly string. Clients should assert on Kind/Code/Context.
	if f.cause != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", f.code, f.kind, f.message, f.cause)
	}

	return fmt.Sprintf("%s [%s]: %s", f.code, f.kind, f.message)
}

func (f *Failure) Unwrap() error { return f.cause }

// ------ contract.Failure getters

func (f *Failure) Kind() contract.Kind     { return f.kind }
func (f *Failure) Code() string            { return f.code }
func (f *Failure) Message() string         { return f.message }
func (f *Failure) Context() map[string]any { return cloneMap(f.context) }

// ------ core constructors

// New creates a new Failure with the provided fields.
// Context is defensively cloned (pass nil for none).
// The optional cause parameter (if provided) is stored and exposed via Unwrap().
func New(kind contract.Kind, code, message string, ctx map[string]any, cause ...error) *Failure {
	f := &Failure{
		kind:    kind,
		code:    code,
		message: message,
		context: cloneMap(ctx),
	}
	if len(cause) > 0 {
		f.cause = cause[0]
	}
	return f
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the failure context map and returns
// the same receiver for chaining. The internal context map is created on first use.
func (f *Failure) WithContextKV(k string, v any) *Failure {
	if f == nil {
		return nil
	}

	if f.context == nil {
		f.context = map[string]any{}
	}

	f.context[k] = v

	return f
}

// WithContextMap merges the provided map into the failure context and returns
// the same receiver for chaining. Nil or empty maps are ignored. Existing keys
// are overwritten.
func (f *Failure) WithContextMap(m map[string]any) *Failure {
	if f == nil || len(m) == 0 {
		return f
	}

	if f.context == nil {
		f.context = map[string]any{}
	}

	for k, v := range m {
		f.context[k] = v
	}

	return f
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Deep-clone nested maps with string keys to avoid leaking internal references.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
