package cli

import (
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/spf13/cobra"
)

func (r *root) showCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			acc, ok := r.app.Store.Get(id)
			if !ok {
				return report(cmd.ErrOrStderr(), id, fmt.Errorf("show: %w", common.ErrorNotFound))
			}
			return printAccount(cmd.OutOrStdout(), acc, reveal)
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the local password in clear text")
	return cmd
}

func (r *root) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			err := r.app.Store.DeleteAccount(cmd.Context(), id)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			}
			return report(cmd.ErrOrStderr(), id, err)
		},
	}
}
