// Package main demonstrates usage of the scg-valuetype packages.
package main

import (
	"fmt"

	"github.com/next-trace/scg-valuetype/failure"
	"github.com/next-trace/scg-valuetype/integer"
	"github.com/next-trace/scg-valuetype/value"
)

func main() {
	// Direct construction and the textual forms.
	a, _ := integer.New(42)
	fmt.Println(a.String(), a.Debug(), a.Hash())

	// Parsing trims surrounding whitespace.
	b, _ := integer.Parse("  -7 ")
	fmt.Println(a.Compare(b), a.Equal(b))

	// An overflowing add fails with a structured failure; no instance
	// is produced and nothing wraps around.
	max, _ := integer.New(integer.Max)
	one, _ := integer.New(1)
	if _, err := max.Add(one); failure.IsOverflow(err) {
		f := failure.Ensure(err)
		fmt.Println(f.Code(), f.Context()["operation"])
	}

	// JSON round-trip.
	data, _ := a.MarshalJSON()
	back, _ := integer.FromJSON(data)
	fmt.Println(string(data), back.Equal(a))

	// Comparing wrappers of different concrete types is rejected, not
	// answered with false.
	if _, err := value.Equate(a, nil); failure.IsIncomparable(err) {
		fmt.Println(failure.Ensure(err).Message())
	}
}
