// Package amount converts between decimal amount strings and the signed
// 64-bit stroop counts carried on the wire (one unit = 10^7 stroops).
package amount

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Stroops is an amount in the smallest indivisible unit.
type Stroops int64

const (
	// One is the number of stroops in one whole unit.
	One Stroops = 10_000_000
	// Decimals is the number of fractional digits of an amount string.
	Decimals = 7
	// Max is the largest representable amount.
	Max Stroops = math.MaxInt64
	// MaxString is Max rendered as an amount string.
	MaxString = "922337203685.4775807"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOverflow      = errors.New("amount overflow")

	maxDecimal = decimal.New(math.MaxInt64, -Decimals)
)

// New wraps a raw stroop count.
func New(stroops int64) Stroops {
	return Stroops(stroops)
}

// Int64 returns the raw stroop count.
func (a Stroops) Int64() int64 {
	return int64(a)
}

// Decimal returns the amount in whole units.
func (a Stroops) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Decimals)
}

// Add returns a+b, failing on int64 overflow.
func (a Stroops) Add(b Stroops) (Stroops, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}
	return s, nil
}

// Mul returns a*factor, failing on int64 overflow.
func (a Stroops) Mul(factor int64) (Stroops, error) {
	if a == 0 || factor == 0 {
		return 0, nil
	}
	p := a * Stroops(factor)
	if p/Stroops(factor) != a || (a == -1 && factor == math.MinInt64) || (factor == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	return p, nil
}

func (a Stroops) IsPositive() bool {
	return a > 0
}

func (a Stroops) IsZero() bool {
	return a == 0
}

// String renders the amount with exactly seven fractional digits.
func (a Stroops) String() string {
	return a.Decimal().StringFixed(Decimals)
}

// parse returns the exact decimal value of s, or false when s is not a
// plain non-negative decimal with at most seven fractional digits.
func parse(s string) (decimal.Decimal, bool) {
	if s == "" || strings.HasPrefix(s, "-") {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if !d.Equal(d.Truncate(Decimals)) {
		return decimal.Decimal{}, false
	}
	if d.IsNegative() || d.GreaterThan(maxDecimal) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// IsValid reports whether s is a positive decimal with at most seven
// fractional digits that fits in an int64 stroop count. Zero is accepted
// only when allowZero is set.
func IsValid(s string, allowZero bool) bool {
	d, ok := parse(s)
	if !ok {
		return false
	}
	return allowZero || !d.IsZero()
}

// Parse converts s to stroops without rounding. Zero is accepted.
func Parse(s string) (Stroops, error) {
	d, ok := parse(s)
	if !ok {
		return 0, &kerrors.ValidationError{Field: "amount", Msg: "invalid amount " + quote(s), Err: ErrInvalidAmount}
	}
	return Stroops(d.Shift(Decimals).IntPart()), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Stroops {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseField parses s as the named field, rejecting zero unless allowZero
// is set. The error message names the field.
func ParseField(field, s string, allowZero bool) (Stroops, error) {
	if !IsValid(s, allowZero) {
		return 0, &kerrors.ValidationError{
			Field: field,
			Msg:   field + " argument must be of type String, represent a positive number and have at most 7 digits after the decimal",
			Err:   ErrInvalidAmount,
		}
	}
	return Parse(s)
}

// FromDecimal converts a decimal number of units to stroops exactly.
func FromDecimal(d decimal.Decimal) (Stroops, error) {
	return Parse(d.String())
}

func quote(s string) string {
	return `"` + s + `"`
}
