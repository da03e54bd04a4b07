// Package contract exposes the minimal interfaces used by other packages.
//
// Implementations must ensure Context returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Kind classifies a failure. It is a stable, machine-facing category.
type Kind string

// The failure taxonomy. KindOverflow is a sub-kind of KindOperation:
// predicates that match operation failures must also match overflow.
const (
	KindValidation   Kind = "validation"
	KindConversion   Kind = "conversion"
	KindOperation    Kind = "operation"
	KindOverflow     Kind = "overflow"
	KindImmutability Kind = "immutability"
	KindIncomparable Kind = "incomparable"
)

// Failure is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Ensure Context() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//   - Never fail or panic during construction.
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal.
type Failure interface {
	error
	Kind() Kind
	Code() string
	Message() string
	// Context returns a defensive copy; NEVER return the internal map directly.
	Context() map[string]any
	Unwrap() error
}
