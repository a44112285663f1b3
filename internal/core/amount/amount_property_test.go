package amount

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAmountProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Parse(String(a)) == a", prop.ForAll(
		func(v int64) bool {
			a := Stroops(v)
			got, err := Parse(a.String())
			return err == nil && got == a
		},
		gen.Int64Range(0, int64(Max)-1),
	))

	properties.Property("String(Parse(s)) == s for canonical strings", prop.ForAll(
		func(whole int64, frac int64) bool {
			a := Stroops(whole*int64(One) + frac)
			s := a.String()
			got, err := Parse(s)
			return err == nil && got.String() == s
		},
		gen.Int64Range(0, 922337203684),
		gen.Int64Range(0, int64(One)-1),
	))

	properties.Property("eighth fractional digit is rejected", prop.ForAll(
		func(v int64, digit int64) bool {
			s := Stroops(v).String() + string(rune('0'+digit))
			return !IsValid(s, true)
		},
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(1, 9),
	))

	properties.TestingRun(t)
}
