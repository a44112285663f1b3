package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goKurdBase/internal/core/account"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/memo"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
	"github.com/LeJamon/goKurdBase/internal/keypair"
	"github.com/LeJamon/goKurdBase/internal/storage/seqstore"
)

// buildOptions are the flags shared by every build subcommand.
type buildOptions struct {
	source   string
	sequence string
	fee      uint32
	timeout  int64
	memoText string
	memoID   string
	sign     bool
	secret   string
}

func (o *buildOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.source, "source", "", "source account (G address)")
	f.StringVar(&o.sequence, "sequence", "", "current sequence number of the source; skips the sequence store")
	f.Uint32Var(&o.fee, "fee", 0, "per-operation fee in stroops (default from config)")
	f.Int64Var(&o.timeout, "timeout", 0, "seconds until the transaction expires, 0 for none (default from config)")
	f.StringVar(&o.memoText, "memo-text", "", "text memo")
	f.StringVar(&o.memoID, "memo-id", "", "id memo")
	f.BoolVar(&o.sign, "sign", false, "sign the result with --secret or "+SecretEnv)
	f.StringVar(&o.secret, "secret", "", "signing secret (S address)")
	_ = cmd.MarkFlagRequired("source")
	cmd.MarkFlagsMutuallyExclusive("memo-text", "memo-id")
}

func (o *buildOptions) memo() (memo.Memo, error) {
	switch {
	case o.memoText != "":
		return memo.Text(o.memoText)
	case o.memoID != "":
		return memo.ID(o.memoID)
	}
	return memo.None(), nil
}

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a single-operation transaction",
		Long: `Build a transaction and print its base64 envelope. Unless --sequence is
given, the source's sequence number is taken from the sequence store and
advanced on success.`,
	}
	cmd.AddCommand(newBuildPaymentCmd(a), newBuildCreateAccountCmd(a))
	return cmd
}

func newBuildPaymentCmd(a *app) *cobra.Command {
	var (
		opts        buildOptions
		destination string
		amt         string
		assetName   string
	)
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Send an amount of an asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			as, err := asset.Parse(assetName)
			if err != nil {
				return err
			}
			op, err := operation.New(operation.Payment{Destination: destination, Asset: as, Amount: amt})
			if err != nil {
				return err
			}
			return a.build(cmd, &opts, op)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&destination, "destination", "", "receiving account")
	cmd.Flags().StringVar(&amt, "amount", "", "decimal amount")
	cmd.Flags().StringVar(&assetName, "asset", "native", `"native" or CODE:ISSUER`)
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newBuildCreateAccountCmd(a *app) *cobra.Command {
	var (
		opts            buildOptions
		destination     string
		startingBalance string
	)
	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create and fund a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.New(operation.CreateAccount{Destination: destination, StartingBalance: startingBalance})
			if err != nil {
				return err
			}
			return a.build(cmd, &opts, op)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&destination, "destination", "", "account to create")
	cmd.Flags().StringVar(&startingBalance, "starting-balance", "", "initial balance")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("starting-balance")
	return cmd
}

func (a *app) build(cmd *cobra.Command, o *buildOptions, op operation.Operation) (err error) {
	fee := a.cfg.Network.BaseFee
	if cmd.Flags().Changed("fee") {
		fee = o.fee
	}
	timeout := a.cfg.Network.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = o.timeout
	}
	m, err := o.memo()
	if err != nil {
		return err
	}
	// Resolve the key first so a bad secret never consumes a sequence number.
	var kp *keypair.Keypair
	if o.sign {
		if kp, err = signingKey(o.secret); err != nil {
			return err
		}
		defer kp.Close()
	}

	var source account.SequenceSource
	if o.sequence != "" {
		if source, err = account.New(o.source, o.sequence); err != nil {
			return err
		}
	} else {
		var (
			book      *seqstore.Book
			closeBook func() error
		)
		if book, closeBook, err = a.openBook(); err != nil {
			return err
		}
		defer closeWith(&err, closeBook)
		if source, err = book.Source(cmd.Context(), o.source); err != nil {
			if storeMissing(err) {
				return fmt.Errorf("%w (record it with `kurdtx seq set` or pass --sequence)", err)
			}
			return err
		}
	}

	built, err := tx.NewBuilder(source,
		tx.WithFee(fee),
		tx.WithMemo(m),
		tx.WithNetworkPassphrase(a.cfg.NetworkPassphrase()),
		tx.WithLogger(a.logger.Named("builder")),
	).AddOperation(op).SetTimeout(timeout).Build()
	if err != nil {
		return err
	}
	if kp != nil {
		if err := built.Sign(kp); err != nil {
			return err
		}
	}
	out, err := built.ToXDR()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
