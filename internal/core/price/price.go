// Package price models offer prices as 32-bit rationals and converts
// decimal input to the closest representable fraction.
package price

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// divisionPlaces is the number of decimal places kept when dividing.
const divisionPlaces = 20

var (
	ErrNotPositive     = errors.New("price must be positive")
	ErrRequired        = errors.New("price argument is required")
	ErrNotANumber      = errors.New("not a number")
	ErrNoApproximation = errors.New("couldn't find approximation")
)

// Price is the ratio N/D.
type Price struct {
	N int32
	D int32
}

// Input is any value an offer price can be given as.
type Input interface {
	toPrice() (Price, error)
}

// Rational is an exact fraction. D must be positive.
type Rational struct {
	N int32
	D int32
}

// Text is a decimal price such as "3.07".
type Text string

// Float is a binary floating point price. It is converted through its
// shortest decimal representation.
type Float float64

// Decimal is an arbitrary precision decimal price.
type Decimal decimal.Decimal

func (r Rational) toPrice() (Price, error) {
	if r.N <= 0 || r.D <= 0 {
		return Price{}, ErrNotPositive
	}
	return Price{N: r.N, D: r.D}, nil
}

func (t Text) toPrice() (Price, error) {
	d, err := decimal.NewFromString(string(t))
	if err != nil {
		return Price{}, ErrNotANumber
	}
	return fromDecimal(d)
}

func (f Float) toPrice() (Price, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Price{}, ErrNotANumber
	}
	return fromDecimal(decimal.NewFromFloat(float64(f)))
}

func (d Decimal) toPrice() (Price, error) {
	return fromDecimal(decimal.Decimal(d))
}

func fromDecimal(d decimal.Decimal) (Price, error) {
	if !d.IsPositive() {
		return Price{}, ErrNotPositive
	}
	n, den, err := BestRational(d)
	if err != nil {
		return Price{}, err
	}
	return Price{N: int32(n), D: int32(den)}, nil
}

// From converts in to a Price. A nil input is reported as missing.
func From(in Input) (Price, error) {
	if in == nil {
		return Price{}, &kerrors.ValidationError{Field: "price", Msg: ErrRequired.Error(), Err: ErrRequired}
	}
	p, err := in.toPrice()
	if err != nil {
		return Price{}, &kerrors.ValidationError{Field: "price", Msg: err.Error(), Err: err}
	}
	return p, nil
}

// BestRational returns the closest fraction n/d to x with both terms
// fitting in a signed 32-bit integer.
func BestRational(x decimal.Decimal) (int64, int64, error) {
	return BestRationalBounded(x, math.MaxInt32, math.MaxInt32)
}

// BestRationalBounded walks the continued fraction expansion of x and
// returns the last convergent whose numerator and denominator stay within
// maxN and maxD.
func BestRationalBounded(x decimal.Decimal, maxN, maxD int64) (int64, int64, error) {
	limitN := decimal.NewFromInt(maxN)
	limitD := decimal.NewFromInt(maxD)
	one := decimal.NewFromInt(1)

	// (h2,k2) and (h1,k1) are the two previous convergents.
	h2, k2 := decimal.Zero, one
	h1, k1 := one, decimal.Zero

	number := x
	for {
		if number.GreaterThan(limitN) {
			break
		}
		a := number.Floor()
		f := number.Sub(a)
		h := a.Mul(h1).Add(h2)
		k := a.Mul(k1).Add(k2)
		if h.GreaterThan(limitN) || k.GreaterThan(limitD) {
			break
		}
		h2, k2 = h1, k1
		h1, k1 = h, k
		if f.IsZero() {
			break
		}
		number = one.DivRound(f, divisionPlaces)
	}

	if h1.IsZero() || k1.IsZero() {
		return 0, 0, ErrNoApproximation
	}
	return h1.IntPart(), k1.IntPart(), nil
}

// Decimal returns N/D rounded to twenty decimal places.
func (p Price) Decimal() decimal.Decimal {
	if p.D == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt32(p.N).DivRound(decimal.NewFromInt32(p.D), divisionPlaces)
}

// String renders N/D as a decimal without trailing zeros, e.g. "1.25".
func (p Price) String() string {
	return p.Decimal().String()
}

func (p Price) ToXDR() xdr.Price {
	return xdr.Price{N: p.N, D: p.D}
}

func FromXDR(x xdr.Price) Price {
	return Price{N: x.N, D: x.D}
}
