package cli

import (
	"bufio"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/spf13/cobra"
)

// formFlags are the account form fields shared by add and update.
type formFlags struct {
	label    string
	typ      string
	login    string
	password string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "", "labels separated by ';'")
	cmd.Flags().StringVar(&f.typ, "type", string(models.AccountTypeLDAP), "account type: LDAP or Local")
	cmd.Flags().StringVar(&f.login, "login", "", "login name")
	cmd.Flags().StringVar(&f.password, "password", "", "password for Local accounts (prompted when omitted)")
}

// apply overlays the flags the user set onto form.
func (f *formFlags) apply(cmd *cobra.Command, form *models.AccountFormData) error {
	changed := cmd.Flags().Changed
	if changed("label") {
		form.Label = f.label
	}
	if changed("type") || form.Type == "" {
		t, err := models.ParseAccountType(f.typ)
		if err != nil {
			return err
		}
		form.Type = t
	}
	if changed("login") {
		form.Login = f.login
	}
	if changed("password") {
		form.Password = f.password
	}
	return nil
}

// promptPassword asks for a password without echo.
func (r *root) promptPassword(cmd *cobra.Command) (string, error) {
	pw, err := GetPassword(bufio.NewReader(r.in), "Password", cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (r *root) addCmd() *cobra.Command {
	var f formFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var form models.AccountFormData
			if err := f.apply(cmd, &form); err != nil {
				return report(cmd.ErrOrStderr(), "", err)
			}
			if form.Type == models.AccountTypeLocal && !cmd.Flags().Changed("password") {
				pw, err := r.promptPassword(cmd)
				if err != nil {
					return err
				}
				form.Password = pw
			}

			acc, err := r.app.Store.AddAccount(cmd.Context(), form)
			if err != nil {
				return report(cmd.ErrOrStderr(), "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), acc.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (r *root) updateCmd() *cobra.Command {
	var f formFlags

	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"edit"},
		Short:   "Rebuild an account from its current values and the given flags",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			current, ok := r.app.Store.Get(id)
			if !ok {
				return report(cmd.ErrOrStderr(), id, fmt.Errorf("update: %w", common.ErrorNotFound))
			}

			form := models.FormFromAccount(current)
			if err := f.apply(cmd, &form); err != nil {
				return report(cmd.ErrOrStderr(), id, err)
			}
			_, wasLocal := current.Password()
			if form.Type == models.AccountTypeLocal && !wasLocal && !cmd.Flags().Changed("password") {
				pw, err := r.promptPassword(cmd)
				if err != nil {
					return err
				}
				form.Password = pw
			}

			if _, err := r.app.Store.UpdateAccount(cmd.Context(), id, form); err != nil {
				return report(cmd.ErrOrStderr(), id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
