package models

import (
	"testing"
	"unicode/utf8"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{in: "LDAP", want: AccountTypeLDAP},
		{in: "ldap", want: AccountTypeLDAP},
		{in: " Local ", want: AccountTypeLocal},
		{in: "local", want: AccountTypeLocal},
		{in: "Локальная", want: AccountTypeLocal},
		{in: "", wantErr: true},
		{in: "kerberos", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccountType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorInvalidAccountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_LocalKeepsPassword(t *testing.T) {
	a, err := AccountFormData{Label: "a; b", Type: AccountTypeLocal, Login: "  root ", Password: " s3cr3t "}.Build("id-1")
	require.NoError(t, err)

	assert.Equal(t, "id-1", a.ID)
	assert.Equal(t, "root", a.Login)
	assert.Equal(t, []LabelItem{{Text: "a"}, {Text: "b"}}, a.Labels)
	assert.Equal(t, AccountTypeLocal, a.Type())

	pw, ok := a.Password()
	require.True(t, ok)
	assert.Equal(t, " s3cr3t ", pw)
}

func TestBuild_LDAPDropsPassword(t *testing.T) {
	a, err := AccountFormData{Type: AccountTypeLDAP, Login: "jdoe", Password: "ignored"}.Build("id-2")
	require.NoError(t, err)

	assert.Equal(t, AccountTypeLDAP, a.Type())
	assert.Equal(t, LDAPCredentials{}, a.Credentials)
	_, ok := a.Password()
	assert.False(t, ok)
	assert.Empty(t, a.Labels)
}

func TestBuild_AcceptsEmptyLoginAndLabel(t *testing.T) {
	a, err := AccountFormData{Type: AccountTypeLocal}.Build("x")
	require.NoError(t, err)
	assert.Equal(t, "", a.Login)
	assert.NotNil(t, a.Labels)
	assert.Empty(t, a.Labels)
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := AccountFormData{Type: "Kerberos"}.Build("x")
	require.ErrorIs(t, err, common.ErrorInvalidAccountType)
}

func TestFormFromAccount_RebuildsSameAccount(t *testing.T) {
	orig, err := AccountFormData{Label: "x ; y", Type: AccountTypeLocal, Login: "u", Password: "p"}.Build("id")
	require.NoError(t, err)

	rebuilt, err := FormFromAccount(orig).Build("id")
	require.NoError(t, err)
	assert.Equal(t, orig, rebuilt)
}

func TestClone_DoesNotShareLabels(t *testing.T) {
	a := Account{ID: "1", Labels: []LabelItem{{Text: "a"}}, Credentials: LDAPCredentials{}}
	c := a.Clone()
	c.Labels[0].Text = "changed"
	assert.Equal(t, "a", a.Labels[0].Text)
}

func TestAccount_ZeroValueIsLDAP(t *testing.T) {
	var a Account
	assert.Equal(t, AccountTypeLDAP, a.Type())
	_, ok := a.Password()
	assert.False(t, ok)
}

func TestBuild_InvalidUTF8SurvivesJSON(t *testing.T) {
	form := AccountFormData{
		Label:    "ops\xff; ok",
		Type:     AccountTypeLocal,
		Login:    " bob\xff ",
		Password: "pw\xfe\xfd",
	}
	acc, err := form.Build("id")
	require.NoError(t, err)

	assert.Equal(t, "bob�", acc.Login)
	assert.Equal(t, []LabelItem{{Text: "ops�"}, {Text: "ok"}}, acc.Labels)
	pw, _ := acc.Password()
	assert.True(t, utf8.ValidString(pw))

	b, err := MarshalAccounts([]Account{acc})
	require.NoError(t, err)
	back, err := UnmarshalAccounts(b)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Empty(t, cmp.Diff(acc, back[0]))
}
