package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

const issuer = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

func TestNative(t *testing.T) {
	n := asset.Native()
	assert.True(t, n.IsNative())
	assert.Equal(t, "XLM", n.Code())
	assert.Empty(t, n.Issuer())
	assert.Equal(t, asset.TypeNative, n.Type())
	assert.Equal(t, "native", n.String())

	x, err := n.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeNative, x.Type)
	assert.Nil(t, x.AlphaNum4)
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		issuer string
		msg    string
	}{
		{"empty code", "", issuer, "Asset code is invalid"},
		{"code too long", "1234567890123", issuer, "Asset code is invalid"},
		{"bad character", "ab_", issuer, "Asset code is invalid"},
		{"missing issuer", "USD", "", "Issuer cannot be null"},
		{"bad issuer", "USD", "GCEZ", "Issuer is invalid"},
		{"seed as issuer", "USD", "SBGWKM3CD4IL47QN6X54N6Y33T3JDNVI6AIJ6CD5IM47HG3IG4O36XCU", "Issuer is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asset.New(tt.code, tt.issuer)
			require.Error(t, err)
			assert.True(t, kerrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCreditTypes(t *testing.T) {
	tests := []struct {
		code string
		typ  asset.Type
		pad  string
	}{
		{"USD", asset.TypeCreditAlphanum4, "USD\x00"},
		{"ABCD", asset.TypeCreditAlphanum4, "ABCD"},
		{"12345", asset.TypeCreditAlphanum12, "12345\x00\x00\x00\x00\x00\x00\x00"},
		{"ABCDEFGHIJKL", asset.TypeCreditAlphanum12, "ABCDEFGHIJKL"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			a := asset.MustNew(tt.code, issuer)
			assert.Equal(t, tt.typ, a.Type())
			assert.Equal(t, tt.code, a.Code())
			assert.Equal(t, issuer, a.Issuer())
			assert.Equal(t, tt.code+":"+issuer, a.String())

			x, err := a.ToXDR()
			require.NoError(t, err)
			if tt.typ == asset.TypeCreditAlphanum4 {
				require.NotNil(t, x.AlphaNum4)
				assert.Equal(t, tt.pad, string(x.AlphaNum4.AssetCode[:]))
			} else {
				require.NotNil(t, x.AlphaNum12)
				assert.Equal(t, tt.pad, string(x.AlphaNum12.AssetCode[:]))
			}

			back, err := asset.FromXDR(x)
			require.NoError(t, err)
			assert.True(t, a.Equals(back))
		})
	}
}

func TestEquals(t *testing.T) {
	other := "GB7TAYRUZGE6TVT7NHP5SMIZRNQA6PLM423EYISAOAP3MKYIQMVYP2JO"
	assert.True(t, asset.Native().Equals(asset.Native()))
	assert.False(t, asset.Native().Equals(asset.MustNew("USD", issuer)))
	assert.False(t, asset.MustNew("USD", issuer).Equals(asset.MustNew("USD", other)))
	assert.False(t, asset.MustNew("USD", issuer).Equals(asset.MustNew("EUR", issuer)))
	assert.True(t, asset.MustNew("USD", issuer).Equals(asset.MustNew("USD", issuer)))
}

func TestCodeXDR(t *testing.T) {
	c, err := asset.CodeToXDR("USD")
	require.NoError(t, err)
	require.NotNil(t, c.AssetCode4)
	assert.Equal(t, "USD", asset.CodeFromXDR(c))

	c, err = asset.CodeToXDR("USDUSD")
	require.NoError(t, err)
	require.NotNil(t, c.AssetCode12)
	assert.Equal(t, "USDUSD", asset.CodeFromXDR(c))

	_, err = asset.CodeToXDR("")
	assert.True(t, kerrors.IsValidation(err))
}

func TestFromXDRUnknownType(t *testing.T) {
	_, err := asset.FromXDR(xdr.Asset{Type: 9})
	assert.True(t, kerrors.IsDecode(err))
}

func TestZeroAsset(t *testing.T) {
	var zero asset.Asset
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsNative())
	assert.False(t, zero.Equals(asset.Native()))
	assert.Empty(t, zero.String())

	_, err := zero.ToXDR()
	require.Error(t, err)
	assert.Equal(t, "asset is invalid", err.Error())
}

func TestParse(t *testing.T) {
	n, err := asset.Parse("native")
	require.NoError(t, err)
	assert.True(t, n.IsNative())

	usd, err := asset.Parse("USD:" + issuer)
	require.NoError(t, err)
	assert.True(t, usd.Equals(asset.MustNew("USD", issuer)))

	for _, bad := range []string{"", "XLM", "USD:", ":" + issuer, "TOOLONGASSETCODE:" + issuer} {
		_, err := asset.Parse(bad)
		assert.True(t, kerrors.IsValidation(err), bad)
	}
}
