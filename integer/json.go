package integer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/next-trace/scg-valuetype/failure"
	"github.com/next-trace/scg-valuetype/value"
)

// MarshalJSON encodes the payload as a bare integer literal, e.g. 42.
func (b BoundedInteger) MarshalJSON() ([]byte, error) {
	return value.EncodeJSON(b.box.Value())
}

// FromJSON deserializes a BoundedInteger from its JSON form.
//
// Malformed text fails with a conversion failure carrying the original
// text and the target kind. Well-formed payloads of the wrong shape
// (strings, fractions, out-of-range numbers) fail with the same
// validation failure raw construction would produce.
func FromJSON(data []byte) (BoundedInteger, error) {
	v, err := decodePayload(data)
	if err != nil {
		return BoundedInteger{}, err
	}

	return New(v)
}

// UnmarshalJSON is the deferred construction path for decoding into
// structs. On a fresh BoundedInteger it behaves exactly like FromJSON;
// on an already-constructed one it fails with an immutability failure
// and leaves the payload untouched.
func (b *BoundedInteger) UnmarshalJSON(data []byte) error {
	v, err := decodePayload(data)
	if err != nil {
		return err
	}

	return b.box.Init(v, validate)
}

// decodePayload parses data as a single JSON value and validates its
// shape the way the constructor validates a raw value.
func decodePayload(data []byte) (int64, error) {
	raw, err := value.DecodeJSON(data, TypeName)
	if err != nil {
		return 0, err
	}

	num, ok := raw.(json.Number)
	if !ok {
		return 0, failure.Validation(fmt.Sprintf("must be an integer, got %T", raw), raw)
	}

	v, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, failure.Validation(
			fmt.Sprintf("cannot parse %q as an integer", num.String()), num.String())
	}

	return v, nil
}
