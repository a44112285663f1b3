package builders

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
)

// RequireSignedBy asserts that env carries a valid signature from each
// account, matched by key hint.
func RequireSignedBy(t *testing.T, env tx.Envelope, accounts ...*Account) {
	t.Helper()
	hash := env.Hash()
	for _, acc := range accounts {
		found := false
		for _, sig := range env.Signatures() {
			if sig.Hint != acc.Keypair.Hint() {
				continue
			}
			require.True(t, acc.Keypair.Verify(hash[:], sig.Signature),
				"signature with hint of %s does not verify", acc.Name)
			found = true
		}
		require.True(t, found, "envelope is not signed by %s", acc.Name)
	}
}

// RequireUnsigned asserts that env has no signatures.
func RequireUnsigned(t *testing.T, env tx.Envelope) {
	t.Helper()
	require.Empty(t, env.Signatures(), "expected an unsigned envelope")
}

// RequireOperationTypes asserts the kinds of the transaction's operations
// in order.
func RequireOperationTypes(t *testing.T, built *tx.Transaction, want ...operation.Type) {
	t.Helper()
	ops := built.Operations()
	require.Len(t, ops, len(want), "operation count mismatch")
	for i, op := range ops {
		require.Equal(t, want[i], op.Body.OpType(), "operation %d", i)
	}
}

// RequireRoundTrip asserts that env survives an envelope encode/decode
// cycle with the same hash, and returns the decoded copy.
func RequireRoundTrip(t *testing.T, env tx.Envelope) tx.Envelope {
	t.Helper()
	encoded, err := env.ToXDR()
	require.NoError(t, err)
	back, err := tx.FromXDR(encoded, env.NetworkPassphrase())
	require.NoError(t, err)
	require.Equal(t, env.Hash(), back.Hash(), "hash changed across round trip")
	return back
}
