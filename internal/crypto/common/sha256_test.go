package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha256(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"public network passphrase",
			"Public Global Stellar Network ; September 2015",
			"7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sha256([]byte(tt.input))
			assert.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

func TestSha256Concat(t *testing.T) {
	whole := Sha256([]byte("network|payload"))
	parts := Sha256Concat([]byte("network"), []byte("|"), []byte("payload"))
	assert.Equal(t, whole, parts)
}
