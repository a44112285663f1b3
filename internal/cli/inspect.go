package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goKurdBase/internal/core/tx"
)

func (a *app) parseEnvelope(cmd *cobra.Command, args []string) (tx.Envelope, error) {
	raw, err := envelopeArg(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	return tx.FromXDR(raw, a.cfg.NetworkPassphrase())
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [envelope|-]",
		Short: "Print an envelope as JSON",
		Long:  `Decode a base64 envelope, read from stdin when omitted or "-", and print it as JSON.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.parseEnvelope(cmd, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), describeEnvelope(env))
		},
	}
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [envelope|-]",
		Short: "Print the transaction hash of an envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.parseEnvelope(cmd, args)
			if err != nil {
				return err
			}
			hash := env.Hash()
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(hash[:]))
			return nil
		},
	}
}
