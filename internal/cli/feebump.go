package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goKurdBase/internal/core/tx"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

func newFeeBumpCmd(a *app) *cobra.Command {
	var (
		feeSource string
		baseFee   uint32
		sign      bool
		secret    string
	)
	cmd := &cobra.Command{
		Use:   "feebump [envelope|-]",
		Short: "Wrap a signed transaction in a fee bump",
		Long: `Wrap a v0 or v1 envelope in a fee-bump transaction paid by --fee-source.
--base-fee is the per-operation rate; the bump counts as one extra
operation. It must be at least the inner transaction's own rate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kp *keypair.Keypair
			if sign {
				var err error
				if kp, err = signingKey(secret); err != nil {
					return err
				}
				defer kp.Close()
			}

			env, err := a.parseEnvelope(cmd, args)
			if err != nil {
				return err
			}
			inner, ok := env.(*tx.Transaction)
			if !ok {
				return errors.New("envelope is already a fee bump")
			}
			rate := a.cfg.Network.BaseFee
			if cmd.Flags().Changed("base-fee") {
				rate = baseFee
			}
			bump, err := tx.BuildFeeBump(feeSource, rate, inner, a.cfg.NetworkPassphrase())
			if err != nil {
				return err
			}
			if kp != nil {
				if err := bump.Sign(kp); err != nil {
					return err
				}
			}
			out, err := bump.ToXDR()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&feeSource, "fee-source", "", "account paying the fee (G address)")
	cmd.Flags().Uint32Var(&baseFee, "base-fee", 0, "per-operation fee in stroops (default from config)")
	cmd.Flags().BoolVar(&sign, "sign", false, "sign the fee bump with --secret or "+SecretEnv)
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (S address)")
	_ = cmd.MarkFlagRequired("fee-source")
	return cmd
}
