package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeqCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Manage tracked sequence numbers",
		Long: `Record the current sequence number of a source account, as reported by
the network, so that build can assign the next ones.`,
	}

	getCmd := &cobra.Command{
		Use:   "get <account>",
		Short: "Print the current sequence number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			book, closeBook, err := a.openBook()
			if err != nil {
				return err
			}
			defer closeWith(&err, closeBook)

			seq, err := book.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <account> <sequence>",
		Short: "Record the current sequence number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			book, closeBook, err := a.openBook()
			if err != nil {
				return err
			}
			defer closeWith(&err, closeBook)
			return book.Set(cmd.Context(), args[0], args[1])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			book, closeBook, err := a.openBook()
			if err != nil {
				return err
			}
			defer closeWith(&err, closeBook)

			entries, err := book.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.AccountID, e.Sequence)
			}
			return nil
		},
	}

	forgetCmd := &cobra.Command{
		Use:   "forget <account>",
		Short: "Stop tracking an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			book, closeBook, err := a.openBook()
			if err != nil {
				return err
			}
			defer closeWith(&err, closeBook)
			return book.Forget(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(getCmd, setCmd, listCmd, forgetCmd)
	return cmd
}
