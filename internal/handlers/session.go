package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/saravpatel/foodify/internal/auth"
)

// SessionName is the cookie the owner session lives under.
const SessionName = "owner-session"

const identityKey = "identity"

// currentIdentity pulls the authenticated identity out of the caller's
// session, or nil when the caller has never logged in.
func currentIdentity(ss *sessions.CookieStore, r *http.Request) *auth.Identity {
	session, _ := ss.Get(r, SessionName)
	ident, ok := session.Values[identityKey].(auth.Identity)
	if !ok {
		return nil
	}
	return &ident
}

// saveIdentity overwrites the session's identity. Only login calls this;
// the guard never writes the session.
func saveIdentity(ss *sessions.CookieStore, w http.ResponseWriter, r *http.Request, ident auth.Identity) error {
	session, _ := ss.Get(r, SessionName)
	session.Values[identityKey] = ident
	session.Options.Path = "/"
	return session.Save(r, w)
}

// clearSession expires the whole session, not just the identity entry.
func clearSession(ss *sessions.CookieStore, w http.ResponseWriter, r *http.Request) {
	session, _ := ss.Get(r, SessionName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	session.Options.MaxAge = -1 // Expire immediately
	session.Save(r, w)
}

// authorize runs the session guard against the {id} path parameter.
// Every owner-scoped handler calls this before touching any data.
func authorize(ss *sessions.CookieStore, r *http.Request) (auth.Context, error) {
	return auth.Authorize(r.PathValue("id"), currentIdentity(ss, r), time.Now())
}
