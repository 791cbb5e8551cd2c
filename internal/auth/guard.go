package auth

import (
	"errors"
	"time"
)

// RejectionMessage is the only thing a rejected caller ever sees. It
// deliberately does not distinguish "not logged in" from "wrong owner"
// from "session expired".
const RejectionMessage = "Invalid Request!!!"

// ErrUnauthorized is returned by Authorize for every rejection.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated identity carried by a session: exactly
// one account per session token. ExpiresAt is an absolute deadline in
// seconds since epoch, set once at login and never extended.
type Identity struct {
	AccountID string
	Name      string
	ExpiresAt int64
}

// Context is what a handler receives once a request passes the guard.
type Context struct {
	OwnerID string
	Name    string
}

// Authorize decides whether the caller behind ident may act on the
// resources owned by targetOwnerID. It succeeds only when the session's
// authenticated account is the path's owner and the session has not
// expired; a session whose deadline equals now is still valid.
//
// Authorize is a pure decision: it never mutates ident and never slides
// the expiry. It must run before any data access on every owner-scoped
// route; it is the sole tenant-isolation mechanism.
func Authorize(targetOwnerID string, ident *Identity, now time.Time) (Context, error) {
	if ident == nil || ident.AccountID == "" || ident.AccountID != targetOwnerID {
		return Context{}, ErrUnauthorized
	}
	if ident.ExpiresAt < now.Unix() {
		return Context{}, ErrUnauthorized
	}
	return Context{OwnerID: targetOwnerID, Name: ident.Name}, nil
}
