package cli_test

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/cli"
	"github.com/LeJamon/goKurdBase/internal/core/network"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

const (
	alice = "GBBM6BKZPEHWYO3E3YKREDPQXMS4VK35YLNU7NFBRI26RAN7GI5POFBB"
	bob   = "GDJJRRMBK4IWLEPJGIE6SXD2LP7REGZODU7WDC3I2D6MR37F4XSHBKX2"

	keybaseEnvelope = "AAAAAAW8Dk9idFR5Le+xi0/h/tU47bgC1YWjtPH1vIVO3BklAAAAZACoKlYAAAABAAAAAAAAAAEAAAALdmlhIGtleWJhc2UAAAAAAQAAAAAAAAAIAAAAAN7aGcXNPO36J1I8MR8S4QFhO79T5JGG2ZeS5Ka1m4mJAAAAAAAAAAFO3BklAAAAQP0ccCoeHdm3S7bOhMjXRMn3EbmETJ9glxpKUZjPSPIxpqZ7EkyTgl3FruieqpZd9LYOzdJrNik1GNBLhgTh/AU="
)

// isolate points the store at a fresh directory and clears ambient
// configuration.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("KURDTX_STORE_PATH", t.TempDir())
	t.Setenv("KURDTX_NETWORK_PASSPHRASE", "testnet")
	t.Setenv("KURDTX_LOG_LEVEL", "error")
	t.Setenv(cli.SecretEnv, "")
}

// compactJSON drops the space an indenting encoder puts after a key.
func compactJSON(s string) string {
	return strings.ReplaceAll(s, `": `, `":`)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	require.NoError(t, err, "kurdtx %s", strings.Join(args, " "))
	return strings.TrimSpace(out)
}

func newSecret(t *testing.T) (*keypair.Keypair, string) {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	secret, err := kp.Secret()
	require.NoError(t, err)
	return kp, secret
}

func parse(t *testing.T, envelope string) tx.Envelope {
	t.Helper()
	env, err := tx.FromXDR(envelope, network.TestnetPassphrase)
	require.NoError(t, err)
	return env
}

func TestVersion(t *testing.T) {
	isolate(t)
	out := mustRun(t, "version")
	assert.Contains(t, out, "kurdtx version "+cli.Version)
	assert.Contains(t, out, "Go version:")
}

func TestAmount(t *testing.T) {
	isolate(t)
	assert.Equal(t, "125000000", mustRun(t, "amount", "12.5"))
	assert.Equal(t, "12.5000000", mustRun(t, "amount", "--stroops", "125000000"))

	_, err := run(t, "", "amount", "1.00000001")
	assert.Error(t, err)
	_, err = run(t, "", "amount", "--stroops", "-1")
	assert.Error(t, err)
}

func TestAddress(t *testing.T) {
	isolate(t)
	out := mustRun(t, "address", "decode", "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ")
	assert.Contains(t, out, "type: muxedAccount")
	assert.Contains(t, out, "account: GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ")
	assert.Contains(t, out, "id: 0")

	key := "3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a"
	assert.Equal(t, "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ",
		mustRun(t, "address", "encode", "ed25519PublicKey", key))
	assert.Equal(t, "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAE2JUG6",
		mustRun(t, "address", "encode", "muxedAccount", key, "--id", "1234"))
	assert.Equal(t, "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF",
		mustRun(t, "address", "encode", "ed25519PublicKey", strings.Repeat("00", 32)))

	_, err := run(t, "", "address", "decode", "GBAD")
	assert.Error(t, err)
	_, err = run(t, "", "address", "encode", "bogus", key)
	assert.Error(t, err)
}

func TestKeygen(t *testing.T) {
	isolate(t)
	master, err := keypair.Master(network.TestnetPassphrase)
	require.NoError(t, err)
	out := mustRun(t, "keygen", "--master")
	assert.Contains(t, out, "Public: "+master.PublicKey())

	out = mustRun(t, "keygen")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	secret := strings.TrimPrefix(lines[1], "Secret: ")
	kp, err := keypair.FromSecret(secret)
	require.NoError(t, err)
	assert.Equal(t, "Public: "+kp.PublicKey(), lines[0])
}

func TestBuildWithStore(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "build", "payment", "--source", alice, "--destination", bob, "--amount", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kurdtx seq set")

	mustRun(t, "seq", "set", alice, "99")
	first := mustRun(t, "build", "payment", "--source", alice, "--destination", bob, "--amount", "10", "--memo-text", "rent")
	second := mustRun(t, "build", "create-account", "--source", alice, "--destination", bob, "--starting-balance", "5", "--fee", "300", "--timeout", "0")
	assert.Equal(t, "101", mustRun(t, "seq", "get", alice))
	assert.Equal(t, alice+" 101", mustRun(t, "seq", "list"))

	p := parse(t, first).(*tx.Transaction)
	assert.Equal(t, "100", p.Sequence())
	assert.Equal(t, uint32(100), p.Fee())
	assert.Equal(t, "rent", p.Memo().Value())
	assert.NotZero(t, p.TimeBounds().MaxTime)
	pay := p.Operations()[0].Body.(operation.Payment)
	assert.Equal(t, "10.0000000", pay.Amount)

	c := parse(t, second).(*tx.Transaction)
	assert.Equal(t, "101", c.Sequence())
	assert.Equal(t, uint32(300), c.Fee())
	assert.Zero(t, c.TimeBounds().MaxTime)
	assert.Empty(t, c.Signatures())

	_, err = run(t, "", "build", "payment", "--source", alice, "--destination", bob, "--amount", "-1")
	assert.Error(t, err)
	assert.Equal(t, "101", mustRun(t, "seq", "get", alice))

	mustRun(t, "seq", "forget", alice)
	assert.Empty(t, mustRun(t, "seq", "list"))
}

func TestBuildAndSignWithExplicitSequence(t *testing.T) {
	isolate(t)
	kp, secret := newSecret(t)
	t.Setenv(cli.SecretEnv, secret)

	out := mustRun(t, "build", "payment", "--source", kp.PublicKey(), "--sequence", "7",
		"--destination", bob, "--amount", "1", "--sign")
	env := parse(t, out)
	require.Len(t, env.Signatures(), 1)
	hash := env.Hash()
	assert.True(t, kp.Verify(hash[:], env.Signatures()[0].Signature))
	assert.Equal(t, "8", env.(*tx.Transaction).Sequence())
}

func TestSignFiles(t *testing.T) {
	isolate(t)
	kp, secret := newSecret(t)
	dir := t.TempDir()

	var paths []string
	for _, seq := range []string{"1", "2", "3"} {
		out := mustRun(t, "build", "payment", "--source", alice, "--sequence", seq, "--destination", bob, "--amount", "1")
		path := filepath.Join(dir, "tx"+seq+".xdr")
		require.NoError(t, os.WriteFile(path, []byte(out+"\n"), 0o600))
		paths = append(paths, path)
	}

	out := mustRun(t, append([]string{"sign", "--secret", secret, "--workers", "2"}, paths...)...)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		env := parse(t, line).(*tx.Transaction)
		assert.Equal(t, []string{"2", "3", "4"}[i], env.Sequence())
		require.Len(t, env.Signatures(), 1)
		hash := env.Hash()
		assert.True(t, kp.Verify(hash[:], env.Signatures()[0].Signature))
	}

	mustRun(t, append([]string{"sign", "--secret", secret, "--in-place"}, paths[0])...)
	raw, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Len(t, parse(t, strings.TrimSpace(string(raw))).Signatures(), 1)

	bad := filepath.Join(dir, "bad.xdr")
	require.NoError(t, os.WriteFile(bad, []byte("not an envelope"), 0o600))
	out, err = run(t, "", append([]string{"sign", "--secret", secret, bad}, paths...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.xdr")
	assert.Empty(t, out)

	_, err = run(t, "", "sign", paths[0])
	assert.Error(t, err)
}

func TestDecodeAndHash(t *testing.T) {
	isolate(t)
	out := compactJSON(mustRun(t, "decode", keybaseEnvelope))
	for _, want := range []string{
		`"type":"envelopeTypeTxV0"`,
		`"source":"GAC3YDSPMJ2FI6JN56YYWT7B73KTR3NYALKYLI5U6H23ZBKO3QMSKP5K"`,
		`"sequence":"47334344942944257"`,
		`"value":"via keybase"`,
		`"type":"accountMerge"`,
		`"threshold":"high"`,
		`"destination":"GDPNUGOFZU6O36RHKI6DCHYS4EAWCO57KPSJDBWZS6JOJJVVTOEYTZO5"`,
		`"hint":"4edc1925"`,
	} {
		assert.Contains(t, out, want)
	}

	hash := "ebcb4df474d1ebf3a3696d50254f1d129895bd83f568270f93577b5606fec42a"
	assert.Equal(t, hash, mustRun(t, "hash", keybaseEnvelope))
	stdinOut, err := run(t, keybaseEnvelope+"\n", "hash", "-")
	require.NoError(t, err)
	assert.Equal(t, hash, strings.TrimSpace(stdinOut))

	_, err = run(t, "", "decode", "AAAA")
	assert.Error(t, err)
}

func TestFeeBump(t *testing.T) {
	isolate(t)
	payer, secret := newSecret(t)

	_, err := run(t, "", "feebump", "--fee-source", payer.PublicKey(), "--base-fee", "50", keybaseEnvelope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 100 stroops")

	out := mustRun(t, "feebump", "--fee-source", payer.PublicKey(), "--base-fee", "200", "--sign", "--secret", secret, keybaseEnvelope)
	bump, ok := parse(t, out).(*tx.FeeBumpTransaction)
	require.True(t, ok)
	assert.Equal(t, int64(400), bump.Fee())
	assert.Equal(t, payer.PublicKey(), bump.FeeSource())
	inner := bump.InnerTransaction().Hash()
	assert.Equal(t, "ebcb4df474d1ebf3a3696d50254f1d129895bd83f568270f93577b5606fec42a", hex.EncodeToString(inner[:]))
	require.Len(t, bump.Signatures(), 1)

	decoded := compactJSON(mustRun(t, "decode", out))
	assert.Contains(t, decoded, `"type":"envelopeTypeTxFeeBump"`)
	assert.Contains(t, decoded, `"innerTransaction"`)

	_, err = run(t, "", "feebump", "--fee-source", payer.PublicKey(), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a fee bump")
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "kurdtx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[network]\nbase_fee = 500\ntimeout = 0\n"), 0o600))

	out := mustRun(t, "--conf", path, "build", "payment", "--source", alice, "--sequence", "1", "--destination", bob, "--amount", "1")
	built := parse(t, out).(*tx.Transaction)
	assert.Equal(t, uint32(500), built.Fee())
	assert.Zero(t, built.TimeBounds().MaxTime)

	out = mustRun(t, "--network", "public", "build", "payment", "--source", alice, "--sequence", "1", "--destination", bob, "--amount", "1")
	_, err := tx.FromXDR(out, network.PublicPassphrase)
	require.NoError(t, err)
}
