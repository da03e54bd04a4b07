package value

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/next-trace/scg-valuetype/failure"
)

// EncodeJSON serializes a payload to its JSON form. Scalar payloads
// encode as bare literals, e.g. 42 or "forty-two".
func EncodeJSON(payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, failure.Conversion(payload, "json", err)
	}

	return data, nil
}

// DecodeJSON parses data as a single JSON value and returns it with
// numbers preserved as json.Number, so wrappers can tell 42 from 42.5
// and from values outside their range.
//
// Malformed text and trailing input fail with a conversion failure
// carrying the original text and the target kind name. Shape validation
// is the caller's job: a well-formed payload of the wrong shape must be
// rejected by the wrapper's validator, the same way a bad raw value
// would be at construction.
func DecodeJSON(data []byte, target string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, failure.Conversion(string(data), target, err)
	}

	// A serialized wrapper is exactly one value.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, failure.Conversion(string(data), target, nil).
			WithContextKV("reason", "trailing data")
	}

	return raw, nil
}
