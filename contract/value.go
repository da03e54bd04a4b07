package contract

import "fmt"

// Value is the dynamic surface every wrapper type exposes. It is the
// handle used where the static type of a wrapper is not known, e.g. by
// value.Equate and value.Order.
//
// Implementations must:
//   - Be immutable once constructed; Payload() returns the stored value
//     by copy, never a handle through which it could be mutated.
//   - Keep Hash consistent with payload equality.
//   - Render Debug() as "<TypeName>(<payload>)".
type Value interface {
	fmt.Stringer
	Debug() string
	Hash() uint64
	Payload() any
}

// Equater is implemented by wrapper types that compare for equality
// within their own concrete type. Cross-type equality is not part of
// the contract; use value.Equate for a dynamic, checked comparison.
type Equater[S any] interface {
	Equal(other S) bool
}

// Orderer is implemented by wrapper types with a total order within
// their own concrete type. Compare returns a negative value, zero, or a
// positive value, in the manner of cmp.Compare.
type Orderer[S any] interface {
	Compare(other S) int
}

// Copier is implemented by wrapper types that can duplicate themselves.
// For scalar payloads the two forms are indistinguishable; composite
// payloads must guarantee that DeepCopy shares no storage with the
// receiver.
type Copier[S any] interface {
	Copy() S
	DeepCopy() S
}
