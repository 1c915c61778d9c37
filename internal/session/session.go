// Package session bridges cookie-based browser state and the backend's
// token auth. The bearer token lives in an HTTP-only cookie; a cached user
// profile lives beside it in a script-readable one.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vamm99/moterplace/internal/models"
)

const (
	TokenCookieName = "auth_token"
	UserCookieName  = "user_data"
)

// Session is the explicit value threaded through actions: the bearer token
// plus the cached profile. A zero Session means anonymous.
type Session struct {
	Token string
	User  *models.User
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

type Manager struct {
	maxAge time.Duration
	secure bool
}

func NewManager(maxAge time.Duration, secure bool) *Manager {
	return &Manager{maxAge: maxAge, secure: secure}
}

// SetSession writes both cookies, site-wide, SameSite Lax. The profile is
// base64url-encoded JSON since raw JSON is not a valid cookie value.
func (m *Manager) SetSession(w http.ResponseWriter, token string, user *models.User) error {

	maxAge := m.sessionWindow(token)

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	profile, err := json.Marshal(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     UserCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(profile),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: false,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// sessionWindow caps the configured window at the token's own exp claim when
// the backend hands us a JWT. There is no refresh transition, so a cookie
// outliving its token just produces 401s downstream.
func (m *Manager) sessionWindow(token string) time.Duration {

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return m.maxAge
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return m.maxAge
	}

	if remaining := time.Until(exp.Time); remaining > 0 && remaining < m.maxAge {
		return remaining
	}

	return m.maxAge
}

// Token returns the bearer token, or false when the browser is anonymous.
func (m *Manager) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// UserData returns the cached profile. A missing or malformed cookie reads
// as no profile, never as an error.
func (m *Manager) UserData(r *http.Request) (*models.User, bool) {

	cookie, err := r.Cookie(UserCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false
	}

	return &user, true
}

// FromRequest assembles the Session actions receive.
func (m *Manager) FromRequest(r *http.Request) Session {

	token, ok := m.Token(r)
	if !ok {
		return Session{}
	}

	user, _ := m.UserData(r)

	return Session{Token: token, User: user}
}

func (m *Manager) IsAuthenticated(r *http.Request) bool {
	_, ok := m.Token(r)

	return ok
}

// ClearSession expires both cookies (logout).
func (m *Manager) ClearSession(w http.ResponseWriter) {

	for _, name := range []string{TokenCookieName, UserCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
			HttpOnly: name == TokenCookieName,
		})
	}
}
