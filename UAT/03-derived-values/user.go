// Package user holds a record type, as a subject for matching derived values.
package user

import "strings"

// User is an account record.
type User struct {
	Name  string
	Email string
	Roles []string
}

// Domain returns the part of the email after the @, or "" if there is none.
func (u User) Domain() string {
	_, domain, found := strings.Cut(u.Email, "@")
	if !found {
		return ""
	}

	return domain
}
