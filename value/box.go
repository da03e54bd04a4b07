package value

import "github.com/next-trace/scg-valuetype/failure"

// attrValue names the payload attribute in immutability failures.
const attrValue = "value"

// Validator reports whether raw is an acceptable payload. A nil
// Validator accepts everything. Implementations return a validation
// failure (see the failure package) describing the rejected value.
type Validator[T comparable] func(raw T) error

// Box is a write-once cell holding a wrapper's payload.
//
// The zero Box is uninitialized; Init (or NewBox) validates a raw value
// and seals it in. A sealed Box rejects every further write with an
// immutability failure, including writes attempted through deferred
// construction paths such as JSON unmarshaling. The payload is only
// ever handed out by value.
type Box[T comparable] struct {
	payload T
	sealed  bool
}

// NewBox validates raw and returns a sealed Box holding it. If the
// validator rejects raw, no Box is created and the validator's failure
// is returned as-is.
func NewBox[T comparable](raw T, validate Validator[T]) (Box[T], error) {
	var b Box[T]
	if err := b.Init(raw, validate); err != nil {
		return Box[T]{}, err
	}

	return b, nil
}

// Init validates raw and seals it into b. It is the deferred
// construction path used when a wrapper must be built in place, e.g. by
// UnmarshalJSON. Calling Init on an already-sealed Box fails with an
// immutability failure naming the payload attribute; the stored payload
// is untouched.
func (b *Box[T]) Init(raw T, validate Validator[T]) error {
	if b.sealed {
		return failure.Immutability(attrValue)
	}

	if validate != nil {
		if err := validate(raw); err != nil {
			return err
		}
	}

	b.payload = raw
	b.sealed = true

	return nil
}

// Value returns the payload by value. For the scalar payloads wrapper
// types use, this is an owned copy; the stored payload cannot be
// reached through it.
func (b Box[T]) Value() T { return b.payload }

// Initialized reports whether the Box has been sealed. An uninitialized
// Box is the transient pre-construction state and is not a valid
// wrapper payload source.
func (b Box[T]) Initialized() bool { return b.sealed }
