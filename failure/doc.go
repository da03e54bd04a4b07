// Package failure provides the structured failure type shared by every
// wrapper type in scg-valuetype.
//
// It exposes a single concrete type Failure that implements
// contract.Failure and integrates with the standard library's errors
// helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Stable, machine-facing Kind and Code
//   - Human-readable Message
//   - Structured Context map with defensive cloning on read/write
//   - Optional underlying cause preserved for errors.Is / errors.As
//
// The taxonomy constructors (Validation, Conversion, Operation,
// Overflow, Immutability, Incomparable) build failures carrying the
// context fields callers and tests assert on. Construction options are
// available via E and With* helpers, and Wrap/Ensure provide convenient
// utilities for adapting arbitrary errors. Failures are ordinary
// values: they never log, panic, or terminate the process.
package failure
