package models

import (
	"encoding/json"
	"fmt"
)

// accountJSON is the persisted shape of an Account.
type accountJSON struct {
	ID       string      `json:"id"`
	Label    []LabelItem `json:"label"`
	Type     AccountType `json:"type"`
	Login    string      `json:"login"`
	Password *string     `json:"password"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	out := accountJSON{
		ID:    a.ID,
		Label: a.Labels,
		Type:  a.Type(),
		Login: a.Login,
	}
	if out.Label == nil {
		out.Label = []LabelItem{}
	}
	if pw, ok := a.Password(); ok {
		out.Password = &pw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the persisted shape and re-establishes the
// password-iff-local rule: a password next to an LDAP type is dropped.
func (a *Account) UnmarshalJSON(b []byte) error {
	var in accountJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	t, err := ParseAccountType(string(in.Type))
	if err != nil {
		return fmt.Errorf("account %q: %w", in.ID, err)
	}

	var creds Credentials = LDAPCredentials{}
	if t == AccountTypeLocal {
		var pw string
		if in.Password != nil {
			pw = *in.Password
		}
		creds = LocalCredentials{Password: pw}
	}

	labels := in.Label
	if labels == nil {
		labels = []LabelItem{}
	}

	*a = Account{ID: in.ID, Labels: labels, Login: in.Login, Credentials: creds}
	return nil
}

// MarshalAccounts serializes the whole list as a JSON array.
func MarshalAccounts(accounts []Account) ([]byte, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	return json.Marshal(accounts)
}

// UnmarshalAccounts decodes a JSON array of accounts. A JSON null yields an
// empty list.
func UnmarshalAccounts(b []byte) ([]Account, error) {
	var accounts []Account
	if err := json.Unmarshal(b, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []Account{}
	}
	return accounts, nil
}
