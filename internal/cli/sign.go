package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goKurdBase/internal/core/tx"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

func newSignCmd(a *app) *cobra.Command {
	var (
		secret  string
		inPlace bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sign <file>...",
		Short: "Sign base64 envelopes stored in files",
		Long: `Add a signature to every envelope file given. Files are signed
concurrently. Without --in-place the signed envelopes are printed one per
line in argument order; nothing is printed if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := signingKey(secret)
			if err != nil {
				return err
			}
			defer kp.Close()

			signed, err := a.signFiles(cmd, kp, args, workers)
			if err != nil {
				return err
			}
			for i, path := range args {
				if inPlace {
					if err := os.WriteFile(path, []byte(signed[i]+"\n"), 0o600); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), signed[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (S address), default "+SecretEnv)
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite each file with its signed envelope")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "files signed at once")
	return cmd
}

// signFiles returns the signed envelope of each path, in order.
func (a *app) signFiles(cmd *cobra.Command, kp *keypair.Keypair, paths []string, workers int) ([]string, error) {
	passphrase := a.cfg.NetworkPassphrase()
	out := make([]string, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			env, err := tx.FromXDR(strings.TrimSpace(string(raw)), passphrase)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := env.Sign(kp); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if out[i], err = env.ToXDR(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			hash := env.Hash()
			a.logger.Debug("signed envelope", zap.String("file", path), zap.String("hash", hex.EncodeToString(hash[:])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
