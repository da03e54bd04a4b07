package value

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/next-trace/scg-valuetype/contract"
	"github.com/next-trace/scg-valuetype/failure"
)

// typeName renders the concrete type of a wrapper for diagnostics.
func typeName(v contract.Value) string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%T", v)
}

// Equate reports payload equality between two wrappers of the same
// dynamic type. Operands of distinct concrete types (or nil operands)
// are a contract violation and yield an incomparable failure; the
// boolean result is meaningful only when the error is nil.
func Equate(a, b contract.Value) (bool, error) {
	if a == nil || b == nil {
		return false, failure.Incomparable(typeName(a), typeName(b))
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false, failure.Incomparable(typeName(a), typeName(b))
	}

	return a.Payload() == b.Payload(), nil
}

// Order compares two wrappers of the same dynamic type by the natural
// order of their payloads, returning a negative value, zero, or a
// positive value in the manner of cmp.Compare. The same-type gate of
// Equate applies; payloads without a natural order also yield an
// incomparable failure.
func Order(a, b contract.Value) (int, error) {
	if _, err := Equate(a, b); err != nil {
		return 0, err
	}

	// Same dynamic wrapper type implies same payload type.
	switch pa := a.Payload().(type) {
	case int64:
		return cmp.Compare(pa, b.Payload().(int64)), nil
	case int:
		return cmp.Compare(pa, b.Payload().(int)), nil
	case uint64:
		return cmp.Compare(pa, b.Payload().(uint64)), nil
	case float64:
		return cmp.Compare(pa, b.Payload().(float64)), nil
	case string:
		return cmp.Compare(pa, b.Payload().(string)), nil
	default:
		return 0, failure.Incomparable(typeName(a), typeName(b)).
			WithContextKV("payload_type", fmt.Sprintf("%T", a.Payload()))
	}
}
