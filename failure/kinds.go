package failure

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-valuetype/contract"
)

// Kind aliases contract.Kind so call sites asserting on failure kinds
// need only this package.
type Kind = contract.Kind

const (
	KindValidation   = contract.KindValidation
	KindConversion   = contract.KindConversion
	KindOperation    = contract.KindOperation
	KindOverflow     = contract.KindOverflow
	KindImmutability = contract.KindImmutability
	KindIncomparable = contract.KindIncomparable
)

// Taxonomy constructors. Each builds a Failure carrying the context
// fields callers and tests assert on; construction never fails.

// Validation reports a raw value rejected by a wrapper's validation
// predicate. The rejected value is carried under the "value" context key.
func Validation(message string, value any) *Failure {
	return New(contract.KindValidation, "value.validation", message, map[string]any{
		"value": value,
	})
}

// Conversion reports a value that could not be converted to the target
// kind, e.g. malformed serialized text. The original value and the
// target kind name are carried in the context; cause (if non-nil) is
// exposed via Unwrap for errors.Is / errors.As.
func Conversion(value any, target string, cause error) *Failure {
	f := New(contract.KindConversion, "value.conversion",
		fmt.Sprintf("cannot convert %v to %s", value, target), map[string]any{
			"value":       value,
			"target_kind": target,
		})
	f.cause = cause

	return f
}

// Operation reports a failed operation between two operands.
func Operation(op string, left, right any) *Failure {
	return New(contract.KindOperation, "value.operation",
		fmt.Sprintf("cannot perform %s between %v and %v", op, left, right), map[string]any{
			"operation": op,
			"left":      left,
			"right":     right,
		})
}

// Overflow reports an operation whose mathematical result falls outside
// the representable range. It is a sub-kind of Operation: IsOperation
// matches it as well as IsOverflow.
func Overflow(op string, left, right any) *Failure {
	return New(contract.KindOverflow, "value.overflow",
		fmt.Sprintf("%s between %v and %v would overflow", op, left, right), map[string]any{
			"operation": op,
			"left":      left,
			"right":     right,
		})
}

// Immutability reports a write attempted after construction. The
// attribute that was targeted is carried under "attribute".
func Immutability(attribute string) *Failure {
	return New(contract.KindImmutability, "value.immutable",
		fmt.Sprintf("cannot modify %s after initialization", attribute), map[string]any{
			"attribute": attribute,
		})
}

// Incomparable reports a comparison between two distinct wrapper types.
// It is a contract violation, not a validation failure: the operands
// themselves may both be perfectly valid.
func Incomparable(leftType, rightType string) *Failure {
	return New(contract.KindIncomparable, "value.incomparable",
		fmt.Sprintf("%s is not comparable with %s", leftType, rightType), map[string]any{
			"left_type":  leftType,
			"right_type": rightType,
		})
}

// ------ predicates

// kindOf extracts the Failure kind from an arbitrary error chain.
func kindOf(err error) (contract.Kind, bool) {
	var f *Failure
	if !errors.As(err, &f) {
		return "", false
	}

	return f.kind, true
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == contract.KindValidation
}

// IsConversion reports whether err is (or wraps) a conversion failure.
func IsConversion(err error) bool {
	k, ok := kindOf(err)
	return ok && k == contract.KindConversion
}

// IsOperation reports whether err is (or wraps) an operation failure.
// Overflow is a sub-kind of operation, so overflow failures match too.
func IsOperation(err error) bool {
	k, ok := kindOf(err)
	return ok && (k == contract.KindOperation || k == contract.KindOverflow)
}

// IsOverflow reports whether err is (or wraps) an overflow failure.
func IsOverflow(err error) bool {
	k, ok := kindOf(err)
	return ok && k == contract.KindOverflow
}

// IsImmutability reports whether err is (or wraps) an immutability violation.
func IsImmutability(err error) bool {
	k, ok := kindOf(err)
	return ok && k == contract.KindImmutability
}

// IsIncomparable reports whether err is (or wraps) a cross-type comparison failure.
func IsIncomparable(err error) bool {
	k, ok := kindOf(err)
	return ok && k == contract.KindIncomparable
}
