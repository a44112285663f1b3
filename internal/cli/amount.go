package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goKurdBase/internal/core/amount"
)

func newAmountCmd() *cobra.Command {
	var fromStroops bool
	cmd := &cobra.Command{
		Use:   "amount <value>",
		Short: "Convert between decimal amounts and stroops",
		Long: `Print the stroop count of a decimal amount such as 12.5, or with
--stroops the canonical decimal form of a stroop count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromStroops {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || n < 0 {
					return fmt.Errorf("stroops must be a non-negative 64-bit integer: %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), amount.New(n).String())
				return nil
			}
			s, err := amount.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Int64())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStroops, "stroops", false, "convert a stroop count to a decimal amount")
	return cmd
}
