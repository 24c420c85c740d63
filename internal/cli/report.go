package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// report prints a message for an unknown id and swallows the error, so
// deleting or showing a missing account is not a failure. Anything else is
// returned.
func report(w io.Writer, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintf(w, "Account %s not found\n", id)
		return nil
	case errors.Is(err, common.ErrorInvalidAccountType):
		return fmt.Errorf("%w (want LDAP or Local)", err)
	default:
		return err
	}
}

// reportSoft is report for the shell: a failed write leaves the change in
// memory, so it is a warning there and 'save' can retry.
func reportSoft(w io.Writer, id string, err error) error {
	if errors.Is(err, common.ErrorPersistence) {
		fmt.Fprintf(w, "Warning: change kept in memory but not saved (%v). Run 'save' to retry.\n", err)
		return nil
	}
	return report(w, id, err)
}
