// Package value provides the building blocks every wrapper type in
// scg-valuetype is assembled from.
//
// A wrapper type owns exactly one validated payload. The pieces here
// enforce the shared contract:
//   - Box: a write-once payload cell. Construction validates the raw
//     value before anything is stored; once sealed, every further write
//     attempt fails with an immutability failure. Instances are
//     therefore safe to share across goroutines once published.
//   - Equate/Order: dynamic comparison between wrappers whose static
//     types are unknown. Operands of distinct concrete types yield an
//     incomparable failure, never a silent false.
//   - EncodeJSON/DecodeJSON: the serialization boundary. Malformed text
//     fails as a conversion; an ill-shaped payload is left for the
//     wrapper's validator to reject, exactly as raw construction would.
//   - Hash64/DebugString: deterministic hashing and the canonical
//     "TypeName(payload)" debug form.
//
// Concrete wrapper types (see the integer package) compose these with
// typed methods bound to their own type, so cross-type comparison is a
// compile error on the static path and a checked failure on the dynamic
// path.
package value
