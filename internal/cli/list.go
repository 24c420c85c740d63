package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/spf13/cobra"
)

func (r *root) listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List accounts in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := r.app.Store.Accounts()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), accounts)
			}
			return printTable(cmd.OutOrStdout(), accounts)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON form")
	return cmd
}

func (r *root) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), r.app.Store.Count())
			return err
		},
	}
}

func labelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "labels <text>...",
		Short:       "Normalize a ';'-separated label string",
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), models.FormatLabelsForInput(models.ParseLabels(text)))
			return err
		},
	}
}
