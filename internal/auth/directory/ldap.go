// Package directory adapts the corporate LDAP directory behind the small
// interface the auth service needs, so the service stays testable without a
// live directory.
package directory

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// Entry is a single directory entry projected to the attributes we request.
type Entry struct {
	DisplayName    string
	Mail           string
	SAMAccountName string
}

// Conn is one authenticated directory connection.
type Conn interface {
	// Bind authenticates the given principal (user@domain).
	Bind(principal, password string) error
	// SearchUser looks up the user entry by sAMAccountName under the base DN.
	SearchUser(baseDN, username string) (*Entry, error)
	Close()
}

// Dialer opens directory connections.
type Dialer interface {
	Dial() (Conn, error)
}

// LDAPDialer dials a fixed LDAP endpoint using go-ldap.
type LDAPDialer struct {
	url string
}

// NewDialer returns a Dialer for the given ldap:// or ldaps:// URL.
func NewDialer(url string) *LDAPDialer {
	return &LDAPDialer{url: url}
}

// Dial opens a new connection to the directory.
func (d *LDAPDialer) Dial() (Conn, error) {
	conn, err := ldap.DialURL(d.url)
	if err != nil {
		return nil, fmt.Errorf("dial directory %s: %w", d.url, err)
	}
	return &ldapConn{conn: conn}, nil
}

type ldapConn struct {
	conn *ldap.Conn
}

func (c *ldapConn) Bind(principal, password string) error {
	return c.conn.Bind(principal, password)
}

func (c *ldapConn) SearchUser(baseDN, username string) (*Entry, error) {
	// Username is escaped before interpolation into the filter.
	filter := fmt.Sprintf("(&(objectClass=user)(sAMAccountName=%s))", ldap.EscapeFilter(username))

	req := ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		[]string{"displayName", "mail", "sAMAccountName"},
		nil,
	)

	res, err := c.conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search user %q: %w", username, err)
	}
	if len(res.Entries) == 0 {
		return nil, nil
	}

	// First result only; the directory may hold stale duplicates.
	entry := res.Entries[0]
	return &Entry{
		DisplayName:    entry.GetAttributeValue("displayName"),
		Mail:           entry.GetAttributeValue("mail"),
		SAMAccountName: entry.GetAttributeValue("sAMAccountName"),
	}, nil
}

func (c *ldapConn) Close() {
	_ = c.conn.Close()
}
