package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goKurdBase/internal/codec/strkey"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

func newKeygenCmd(a *app) *cobra.Command {
	var master bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair",
		Long: `Generate a random keypair. With --master, print the network's master
keypair instead, derived from the configured passphrase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				kp  *keypair.Keypair
				err error
			)
			if master {
				kp, err = keypair.Master(a.cfg.NetworkPassphrase())
			} else {
				kp, err = keypair.Random()
			}
			if err != nil {
				return err
			}
			defer kp.Close()

			secret, err := kp.Secret()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Public: %s\nSecret: %s\n", kp.PublicKey(), secret)
			return nil
		},
	}
	cmd.Flags().BoolVar(&master, "master", false, "print the network master keypair")
	return cmd
}

var versionByName = map[string]strkey.VersionByte{
	"ed25519PublicKey":  strkey.AccountID,
	"ed25519SecretSeed": strkey.Seed,
	"preAuthTx":         strkey.PreAuthTx,
	"sha256Hash":        strkey.SHA256Hash,
	"muxedAccount":      strkey.MuxedAccount,
}

func newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Encode and decode StrKey addresses",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <strkey>",
		Short: "Print the kind and raw payload of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, payload, err := strkey.DecodeAny(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type: %s\n", v)
			fmt.Fprintf(out, "payload: %s\n", hex.EncodeToString(payload))
			if v == strkey.MuxedAccount {
				key, id, err := strkey.DecodeMuxed(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "account: %s\n", strkey.MustEncode(strkey.AccountID, key[:]))
				fmt.Fprintf(out, "id: %d\n", id)
			}
			return nil
		},
	}

	var muxedID uint64
	encodeCmd := &cobra.Command{
		Use:   "encode <type> <hex>",
		Short: "Encode a raw payload as an address",
		Long: `Encode a 32-byte hex payload. type is one of ed25519PublicKey,
ed25519SecretSeed, preAuthTx, sha256Hash or muxedAccount; the latter
takes the account key as payload and the id from --id.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := versionByName[args[0]]
			if !ok {
				return fmt.Errorf("unknown address type %q", args[0])
			}
			payload, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("payload: %w", err)
			}
			var s string
			if v == strkey.MuxedAccount {
				if len(payload) != 32 {
					return fmt.Errorf("muxed account key must be 32 bytes, got %d", len(payload))
				}
				s = strkey.EncodeMuxed([32]byte(payload), muxedID)
			} else if s, err = strkey.Encode(v, payload); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	encodeCmd.Flags().Uint64Var(&muxedID, "id", 0, "muxed account id")

	cmd.AddCommand(decodeCmd, encodeCmd)
	return cmd
}
