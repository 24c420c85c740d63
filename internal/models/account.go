package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// AccountType classifies how an account authenticates.
type AccountType string

const (
	AccountTypeLDAP  AccountType = "LDAP"
	AccountTypeLocal AccountType = "Local"

	// legacyLocal is how the browser version spelled the local type.
	legacyLocal = "Локальная"
)

// ParseAccountType maps user or persisted input onto an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(v, string(AccountTypeLDAP)):
		return AccountTypeLDAP, nil
	case strings.EqualFold(v, string(AccountTypeLocal)), v == legacyLocal:
		return AccountTypeLocal, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidAccountType, s)
	}
}

// Credentials is implemented only by LDAPCredentials and LocalCredentials.
type Credentials interface {
	Type() AccountType
	credentials()
}

// LDAPCredentials marks an externally authenticated account.
type LDAPCredentials struct{}

func (LDAPCredentials) Type() AccountType { return AccountTypeLDAP }
func (LDAPCredentials) credentials()      {}

// LocalCredentials stores the password alongside the account.
type LocalCredentials struct {
	Password string
}

func (LocalCredentials) Type() AccountType { return AccountTypeLocal }
func (LocalCredentials) credentials()      {}

// Account is one stored credential entry.
type Account struct {
	ID          string
	Labels      []LabelItem
	Login       string
	Credentials Credentials
}

// Type reports the account variant. An Account without credentials is
// treated as LDAP, the variant that stores nothing.
func (a Account) Type() AccountType {
	if a.Credentials == nil {
		return AccountTypeLDAP
	}
	return a.Credentials.Type()
}

// Password returns the stored password and true for local accounts.
func (a Account) Password() (string, bool) {
	if c, ok := a.Credentials.(LocalCredentials); ok {
		return c.Password, true
	}
	return "", false
}

// Clone returns a copy that shares no label storage with a.
func (a Account) Clone() Account {
	out := a
	out.Labels = append(make([]LabelItem, 0, len(a.Labels)), a.Labels...)
	return out
}

// AccountFormData is the raw input of the create and edit forms.
type AccountFormData struct {
	Label    string
	Type     AccountType
	Login    string
	Password string
}

// Build constructs a complete Account with the given id. Every field is
// recomputed from the form; the password survives only for local accounts.
// Invalid UTF-8 in any text field is replaced with U+FFFD.
func (f AccountFormData) Build(id string) (Account, error) {
	t, err := ParseAccountType(string(f.Type))
	if err != nil {
		return Account{}, err
	}

	var creds Credentials = LDAPCredentials{}
	if t == AccountTypeLocal {
		creds = LocalCredentials{Password: validText(f.Password)}
	}

	return Account{
		ID:          id,
		Labels:      ParseLabels(f.Label),
		Login:       validText(strings.TrimSpace(f.Login)),
		Credentials: creds,
	}, nil
}

// FormFromAccount pre-fills a form from an existing account, e.g. for editing.
func FormFromAccount(a Account) AccountFormData {
	pw, _ := a.Password()
	return AccountFormData{
		Label:    FormatLabelsForInput(a.Labels),
		Type:     a.Type(),
		Login:    a.Login,
		Password: pw,
	}
}
