package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
	"github.com/spf13/cobra"
)

func (r *root) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(r.app.Store, bufio.NewReader(r.in), cmd.OutOrStdout())
			defer s.close()

			fmt.Fprintln(s.w, "Welcome to accountkeeper (type 'help' for commands)")
			runREPL(cmd.Context(), s, s.status, s.reader, s.w)
			return nil
		},
	}
}

// session is the interactive front end over one AccountStore. It tracks
// the aggregates through a store subscription, the way a view would.
type session struct {
	store  *services.AccountStore
	reader *bufio.Reader
	w      io.Writer

	count       int
	unsubscribe func()
}

func newSession(store *services.AccountStore, reader *bufio.Reader, w io.Writer) *session {
	s := &session{store: store, reader: reader, w: w, count: store.Count()}
	s.unsubscribe = store.Subscribe(func(snap services.Snapshot) {
		s.count = snap.Count
	})
	return s
}

func (s *session) close() { s.unsubscribe() }

func (s *session) status() string {
	if s.count == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("(%d)", s.count)
}

func (s *session) List(ctx context.Context) error {
	return printTable(s.w, s.store.Accounts())
}

func (s *session) Count(ctx context.Context) error {
	_, err := fmt.Fprintf(s.w, "%d account(s)\n", s.store.Count())
	return err
}

func (s *session) Save(ctx context.Context) error {
	if err := s.store.Save(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, "Saved")
	return err
}

func (s *session) Show(ctx context.Context, id string) error {
	id, err := s.idArg(id)
	if err != nil {
		return err
	}
	acc, ok := s.store.Get(id)
	if !ok {
		return report(s.w, id, common.ErrorNotFound)
	}
	return printAccount(s.w, acc, false)
}

func (s *session) Delete(ctx context.Context, id string) error {
	id, err := s.idArg(id)
	if err != nil {
		return err
	}
	err = s.store.DeleteAccount(ctx, id)
	if err == nil {
		fmt.Fprintf(s.w, "Deleted %s\n", id)
	}
	return reportSoft(s.w, id, err)
}

func (s *session) Add(ctx context.Context) error {
	form, err := s.fillForm(models.AccountFormData{Type: models.AccountTypeLDAP}, false)
	if err != nil {
		return reportSoft(s.w, "", err)
	}

	acc, err := s.store.AddAccount(ctx, form)
	if err == nil {
		fmt.Fprintf(s.w, "Added %s\n", acc.ID)
	}
	return reportSoft(s.w, acc.ID, err)
}

func (s *session) Edit(ctx context.Context, id string) error {
	id, err := s.idArg(id)
	if err != nil {
		return err
	}
	current, ok := s.store.Get(id)
	if !ok {
		return report(s.w, id, common.ErrorNotFound)
	}

	_, wasLocal := current.Password()
	form, err := s.fillForm(models.FormFromAccount(current), wasLocal)
	if err != nil {
		return reportSoft(s.w, id, err)
	}

	_, err = s.store.UpdateAccount(ctx, id, form)
	if err == nil {
		fmt.Fprintf(s.w, "Updated %s\n", id)
	}
	return reportSoft(s.w, id, err)
}

// fillForm prompts for every field, offering the values in form as
// defaults. Labels and login can be emptied with ClearInput. With
// keepPassword an empty password entry keeps the current one.
func (s *session) fillForm(form models.AccountFormData, keepPassword bool) (models.AccountFormData, error) {
	var err error

	if form.Label, err = GetClearableText(s.reader, "Labels (separated by ';')", form.Label, s.w); err != nil {
		return form, err
	}
	typ, err := GetTextWithDefault(s.reader, "Type (LDAP or Local)", string(form.Type), s.w)
	if err != nil {
		return form, err
	}
	if form.Type, err = models.ParseAccountType(typ); err != nil {
		return form, err
	}
	if form.Login, err = GetClearableText(s.reader, "Login", form.Login, s.w); err != nil {
		return form, err
	}

	if form.Type != models.AccountTypeLocal {
		form.Password = ""
		return form, nil
	}

	prompt := "Password"
	if keepPassword {
		prompt = "Password (empty keeps current)"
	}
	pw, err := GetPassword(s.reader, prompt, s.w)
	if err != nil {
		return form, err
	}
	defer common.WipeByteArray(pw)
	if len(pw) > 0 || !keepPassword {
		form.Password = string(pw)
	}
	return form, nil
}

func (s *session) idArg(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	return GetSimpleText(s.reader, "Account ID", s.w)
}
