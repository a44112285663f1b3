package strkey

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

func genKey() gopter.Gen {
	return gen.SliceOfN(32, gen.UInt8())
}

func TestStrKeyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(p)) == p for every version", prop.ForAll(
		func(payload []byte, which int) bool {
			versions := []VersionByte{AccountID, Seed, PreAuthTx, SHA256Hash}
			v := versions[which]
			s, err := Encode(v, payload)
			if err != nil {
				return false
			}
			got, err := Decode(v, s)
			if err != nil {
				return false
			}
			again, err := Encode(v, got)
			return err == nil && again == s
		},
		genKey(),
		gen.IntRange(0, 3),
	))

	properties.Property("single character substitution is rejected", prop.ForAll(
		func(payload []byte, pos int, shift int) bool {
			s := MustEncode(AccountID, payload)
			i := pos % len(s)
			idx := 0
			for j := 0; j < len(alphabet); j++ {
				if alphabet[j] == s[i] {
					idx = j
				}
			}
			c := alphabet[(idx+shift)%len(alphabet)]
			corrupted := s[:i] + string(c) + s[i+1:]
			_, err := Decode(AccountID, corrupted)
			return err != nil
		},
		genKey(),
		gen.IntRange(0, 55),
		gen.IntRange(1, 31),
	))

	properties.Property("muxed id survives round trip", prop.ForAll(
		func(payload []byte, id uint64) bool {
			var key [32]byte
			copy(key[:], payload)
			gotKey, gotID, err := DecodeMuxed(EncodeMuxed(key, id))
			return err == nil && gotKey == key && gotID == id
		},
		genKey(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
