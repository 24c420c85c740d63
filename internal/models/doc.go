// Package models defines the account record, its credential variants and the
// label helpers shared by the store and the CLI.
//
// An Account carries exactly one Credentials value. LDAPCredentials holds
// nothing, since such accounts are authenticated externally; LocalCredentials
// holds the locally stored password. The persisted JSON form flattens this
// into the "type" and nullable "password" fields:
//
//	{"id":"...","label":[{"text":"ops"}],"type":"LDAP","login":"jdoe","password":null}
package models
