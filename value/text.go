package value

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// Hash64 derives a deterministic 64-bit hash from a wrapper's type name
// and the canonical text of its payload. Equal payloads of the same
// type always hash equal; mixing the type name in keeps distinct
// wrapper types over equal-looking payloads apart.
func Hash64(typeName, text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(typeName))
	h.Write([]byte{0})
	h.Write([]byte(text))

	return h.Sum64()
}

// DebugString renders the canonical debug form "<TypeName>(<payload>)",
// e.g. "BoundedInteger(42)". String payloads are quoted so the payload
// boundary stays visible.
func DebugString(typeName string, payload any) string {
	if s, ok := payload.(string); ok {
		return typeName + "(" + strconv.Quote(s) + ")"
	}

	return fmt.Sprintf("%s(%v)", typeName, payload)
}
