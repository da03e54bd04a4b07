// Package integer provides BoundedInteger, an immutable wrapper around
// a signed 64-bit integer.
//
// BoundedInteger implements the full wrapper contract: validated
// construction (from native integers, text, floats, or JSON), equality
// and total ordering bound to its own type, deterministic hashing, JSON
// round-tripping, copy support, and overflow-checked addition. The sum
// is range-checked against the int64 bounds before it is formed, so an
// overflowing add fails with an overflow failure instead of wrapping,
// saturating, or truncating.
package integer
