package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "cookbook_session"

	// Fixed session lifetime, 24 hours from issuance.
	maxAgeSeconds = 86400
)

// Identity is the authenticated principal carried by a session cookie.
type Identity struct {
	UserID uint
	Name   string
}

// Manager issues, reads, and destroys cookie-backed sessions.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a session manager signing cookies with secret.
func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(maxAgeSeconds)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Manager{store: store}
}

// Establish associates the request's session cookie with the given identity.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, ident Identity) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values["user_id"] = ident.UserID
	sess.Values["name"] = ident.Name
	return sess.Save(r, w)
}

// Current returns the identity carried by the request, if any. A missing,
// expired, or tampered cookie reports false.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		return Identity{}, false
	}
	userID, ok := sess.Values["user_id"].(uint)
	if !ok {
		return Identity{}, false
	}
	name, _ := sess.Values["name"].(string)
	return Identity{UserID: userID, Name: name}, true
}

// Destroy invalidates the session cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		// A bad cookie still gets expired on the client.
		sess, _ = m.store.New(r, cookieName)
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
