package integer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/next-trace/scg-valuetype/failure"
)

// FromAny is the dynamic validation gate: it accepts any native
// whole-number representation already inside the int64 range and
// rejects everything else with a validation failure carrying the
// offending value. Text, floats, booleans, and absent values are wrong
// representations here; use Parse or FromFloat for deliberate
// conversions.
func FromAny(raw any) (BoundedInteger, error) {
	switch v := raw.(type) {
	case nil:
		return BoundedInteger{}, failure.Validation("value cannot be nil", nil)
	case int64:
		return New(v)
	case int:
		return New(int64(v))
	case int8:
		return New(int64(v))
	case int16:
		return New(int64(v))
	case int32:
		return New(int64(v))
	case uint8:
		return New(int64(v))
	case uint16:
		return New(int64(v))
	case uint32:
		return New(int64(v))
	case uint:
		if uint64(v) > uint64(Max) {
			return BoundedInteger{}, failure.Validation("value out of range", v)
		}

		return New(int64(v))
	case uint64:
		if v > uint64(Max) {
			return BoundedInteger{}, failure.Validation("value out of range", v)
		}

		return New(int64(v))
	default:
		return BoundedInteger{}, failure.Validation(
			fmt.Sprintf("must be an integer, got %T", raw), raw)
	}
}

// Parse creates a BoundedInteger from the base-10 text form of an
// integer. Surrounding whitespace is trimmed; an empty result fails
// with a validation failure, as does any text that does not parse as a
// signed 64-bit integer (the failure carries the original text).
func Parse(s string) (BoundedInteger, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return BoundedInteger{}, failure.Validation("empty string", s)
	}

	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return BoundedInteger{}, failure.Validation(
			fmt.Sprintf("cannot parse %q as an integer", s), s)
	}

	return New(v)
}

// FromFloat creates a BoundedInteger from a float that represents a
// whole number. A fractional part, NaN, infinity, or a magnitude
// outside the int64 range fails with a validation failure carrying f.
func FromFloat(f float64) (BoundedInteger, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BoundedInteger{}, failure.Validation("value is not a whole number", f)
	}

	if math.Trunc(f) != f {
		return BoundedInteger{}, failure.Validation("value has a fractional part", f)
	}

	// float64(Max) rounds up to 2^63, which is out of range; the
	// exclusive upper bound catches it.
	if f < -0x1p63 || f >= 0x1p63 {
		return BoundedInteger{}, failure.Validation("value out of range", f)
	}

	return New(int64(f))
}
