package amount

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		allowZero bool
		want      bool
	}{
		{"integer", "10", false, true},
		{"fraction", "0.0000001", false, true},
		{"seven digits", "1000.1234567", false, true},
		{"trailing zeros beyond seven", "1.10000000", false, true},
		{"max", MaxString, false, true},
		{"zero rejected", "0", false, false},
		{"zero allowed", "0", true, true},
		{"zero fraction allowed", "0.0000000", true, true},
		{"empty", "", false, false},
		{"word", "test", false, false},
		{"negative", "-10", false, false},
		{"negative fraction", "-10.5", false, false},
		{"negative zero", "-0", true, false},
		{"eight digits", "0.12345678", false, false},
		{"over max", "922337203685.4775808", false, false},
		{"infinity", "Infinity", false, false},
		{"nan", "Nan", false, false},
		{"nan upper", "NaN", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input, tt.allowZero))
		})
	}
}

func TestParseAndString(t *testing.T) {
	tests := []struct {
		input   string
		stroops int64
		output  string
	}{
		{"0.0000001", 1, "0.0000001"},
		{"1", 10_000_000, "1.0000000"},
		{"2000", 20_000_000_000, "2000.0000000"},
		{"3.1415", 31_415_000, "3.1415000"},
		{"100000000000", 1_000_000_000_000_000_000, "100000000000.0000000"},
		{MaxString, math.MaxInt64, MaxString},
		{"0", 0, "0.0000000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.stroops, got.Int64())
			assert.Equal(t, tt.output, got.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "test", "-1", "0.12345678", "922337203685.4775808", "Infinity"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.True(t, kerrors.IsValidation(err))
		})
	}
	assert.Panics(t, func() { MustParse("x") })
}

func TestParseField(t *testing.T) {
	_, err := ParseField("sendMax", "0", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendMax argument must be of type String")

	got, err := ParseField("limit", "0", true)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestArithmetic(t *testing.T) {
	sum, err := One.Add(One)
	require.NoError(t, err)
	assert.Equal(t, Stroops(20_000_000), sum)

	_, err = Max.Add(1)
	assert.ErrorIs(t, err, ErrOverflow)

	p, err := Stroops(100).Mul(3)
	require.NoError(t, err)
	assert.Equal(t, Stroops(300), p)

	_, err = Max.Mul(2)
	assert.ErrorIs(t, err, ErrOverflow)

	assert.True(t, One.IsPositive())
	assert.False(t, Stroops(0).IsPositive())
	assert.Equal(t, "-0.0000001", Stroops(-1).String())
}

func TestFromDecimal(t *testing.T) {
	got, err := FromDecimal(decimal.RequireFromString("12.5"))
	require.NoError(t, err)
	assert.Equal(t, Stroops(125_000_000), got)

	_, err = FromDecimal(decimal.RequireFromString("0.00000001"))
	assert.Error(t, err)
}
