package integer

import (
	"cmp"
	"encoding/json"
	"math"
	"strconv"

	"github.com/next-trace/scg-valuetype/contract"
	"github.com/next-trace/scg-valuetype/failure"
	"github.com/next-trace/scg-valuetype/value"
)

// TypeName is the name BoundedInteger reports in debug text and
// failure context.
const TypeName = "BoundedInteger"

// Payload bounds.
const (
	Min int64 = math.MinInt64
	Max int64 = math.MaxInt64
)

// BoundedInteger is an immutable, validated wrapper around an int64.
// The zero BoundedInteger is the transient uninitialized state; obtain
// instances through New, FromAny, Parse, FromFloat, or FromJSON.
type BoundedInteger struct {
	box value.Box[int64]
}

// compile-time guarantees that BoundedInteger implements the wrapper contract
var _ contract.Value = BoundedInteger{}
var _ contract.Equater[BoundedInteger] = BoundedInteger{}
var _ contract.Orderer[BoundedInteger] = BoundedInteger{}
var _ contract.Copier[BoundedInteger] = BoundedInteger{}
var _ json.Marshaler = BoundedInteger{}
var _ json.Unmarshaler = (*BoundedInteger)(nil)

// validate is the BoundedInteger validation predicate. Every int64 is
// inside the wrapper's range, so the typed gate accepts all values; the
// dynamic gates (FromAny, Parse, FromFloat, FromJSON) reject anything
// that cannot reach an int64 losslessly.
func validate(int64) error { return nil }

// New wraps v. The error return exists for contract uniformity with the
// other constructors; an int64 payload is always valid.
func New(v int64) (BoundedInteger, error) {
	box, err := value.NewBox(v, validate)
	if err != nil {
		return BoundedInteger{}, err
	}

	return BoundedInteger{box: box}, nil
}

// ------ payload access

// Value returns the wrapped integer.
func (b BoundedInteger) Value() int64 { return b.box.Value() }

// Payload returns the wrapped integer as the dynamic contract surface.
func (b BoundedInteger) Payload() any { return b.box.Value() }

// ------ text

// String returns the payload's base-10 digits, no locale formatting.
func (b BoundedInteger) String() string { return strconv.FormatInt(b.box.Value(), 10) }

// Debug returns the canonical debug form, e.g. "BoundedInteger(42)".
func (b BoundedInteger) Debug() string { return value.DebugString(TypeName, b.box.Value()) }

// ------ equality, ordering, hashing (bound to BoundedInteger; a
// cross-type comparison does not compile on this path — use
// value.Equate / value.Order for dynamic operands)

// Equal reports payload equality with another BoundedInteger.
func (b BoundedInteger) Equal(other BoundedInteger) bool {
	return b.box.Value() == other.box.Value()
}

// Compare orders b against other by payload, returning a negative
// value, zero, or a positive value in the manner of cmp.Compare.
func (b BoundedInteger) Compare(other BoundedInteger) int {
	return cmp.Compare(b.box.Value(), other.box.Value())
}

// Less reports whether b orders strictly before other.
func (b BoundedInteger) Less(other BoundedInteger) bool { return b.Compare(other) < 0 }

// Hash returns a deterministic hash of the payload. Equal values always
// hash equal.
func (b BoundedInteger) Hash() uint64 { return value.Hash64(TypeName, b.String()) }

// ------ copying

// Copy returns a new instance holding the same payload.
func (b BoundedInteger) Copy() BoundedInteger { return b }

// DeepCopy returns a new instance whose payload shares no storage with
// the receiver. For a scalar payload this is the same as Copy.
func (b BoundedInteger) DeepCopy() BoundedInteger { return b }

// ------ arithmetic

// Add returns a new BoundedInteger holding the mathematical sum of the
// two payloads. The sum is range-checked against Min and Max before it
// is formed: an out-of-range result fails with an overflow failure
// naming the operation and both operands, and no instance is produced.
func (b BoundedInteger) Add(other BoundedInteger) (BoundedInteger, error) {
	l, r := b.box.Value(), other.box.Value()
	if (r > 0 && l > Max-r) || (r < 0 && l < Min-r) {
		return BoundedInteger{}, failure.Overflow("add", b, other)
	}

	return New(l + r)
}
