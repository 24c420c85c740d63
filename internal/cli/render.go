package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/fatih/color"
)

var (
	ldapColor  = color.New(color.FgCyan).SprintFunc()
	localColor = color.New(color.FgYellow).SprintFunc()
	mutedColor = color.New(color.Faint).SprintFunc()
)

func colorType(t models.AccountType) string {
	if t == models.AccountTypeLocal {
		return localColor(string(t))
	}
	return ldapColor(string(t))
}

// printTable writes accounts as an aligned table.
func printTable(w io.Writer, accounts []models.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts yet. Use 'add' to create one.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tLOGIN\tLABELS")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			a.ID, colorType(a.Type()), orDash(a.Login), orDash(models.FormatLabelsForInput(a.Labels)))
	}
	return tw.Flush()
}

// printJSON writes accounts in the persisted wire form, indented.
func printJSON(w io.Writer, accounts []models.Account) error {
	b, err := json.MarshalIndent(nonNil(accounts), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// printAccount writes a single account. The password is masked unless
// reveal is set.
func printAccount(w io.Writer, a models.Account, reveal bool) error {
	pw := mutedColor("(managed by LDAP)")
	if p, ok := a.Password(); ok {
		switch {
		case reveal:
			pw = p
		case p == "":
			pw = mutedColor("(empty)")
		default:
			pw = "********"
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", a.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", colorType(a.Type()))
	fmt.Fprintf(tw, "Login:\t%s\n", orDash(a.Login))
	fmt.Fprintf(tw, "Labels:\t%s\n", orDash(models.FormatLabelsForInput(a.Labels)))
	fmt.Fprintf(tw, "Password:\t%s\n", pw)
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func nonNil(accounts []models.Account) []models.Account {
	if accounts == nil {
		return []models.Account{}
	}
	return accounts
}
