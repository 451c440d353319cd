package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kirbygold/goldsuite/internal/viewstate"
)

// CookieName is the browser cookie carrying the signed session id.
const CookieName = "goldsuite_session"

// Sessions maps browser session ids to their view-state controllers. Each
// controller is used by one request at a time. Nothing is persisted.
type Sessions struct {
	auth   viewstate.Authenticator
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu       sync.Mutex
	ctrl     *viewstate.Controller
	lastSeen time.Time
}

// NewSessions creates an empty registry. Controllers are created with auth;
// cookies are HS256 tokens signed with secret and valid for ttl.
func NewSessions(auth viewstate.Authenticator, secret []byte, ttl time.Duration) *Sessions {
	return &Sessions{
		auth:    auth,
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// With runs fn against the controller for the requesting browser. Requests
// without a valid cookie get a fresh controller and a new cookie.
func (s *Sessions) With(w http.ResponseWriter, r *http.Request, fn func(*viewstate.Controller) error) error {
	e, err := s.acquire(w, r)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()
	return fn(e.ctrl)
}

// Logout ends the browser's session, drops its controller and expires the
// cookie. Logging out without a session is a no-op.
func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := s.sessionID(r); ok {
		s.mu.Lock()
		e := s.entries[sid]
		delete(s.entries, sid)
		s.mu.Unlock()

		if e != nil {
			e.mu.Lock()
			e.ctrl.Logout()
			e.mu.Unlock()
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Len returns the number of live controllers.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// acquire returns the locked entry for r, creating one if needed.
func (s *Sessions) acquire(w http.ResponseWriter, r *http.Request) (*sessionEntry, error) {
	now := s.now()

	s.mu.Lock()
	sid, ok := s.sessionID(r)
	e := s.entries[sid]
	if !ok || e == nil {
		s.pruneLocked(now)
		sid = uuid.NewString()
		e = &sessionEntry{ctrl: viewstate.NewController(s.auth)}
		s.entries[sid] = e

		token, err := s.issue(sid, now)
		if err != nil {
			delete(s.entries, sid)
			s.mu.Unlock()
			return nil, err
		}
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			Expires:  now.Add(s.ttl),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	e.lastSeen = now
	s.mu.Unlock()

	e.mu.Lock()
	return e, nil
}

// pruneLocked drops controllers idle for longer than the token lifetime.
func (s *Sessions) pruneLocked(now time.Time) {
	for sid, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, sid)
		}
	}
}

func (s *Sessions) issue(sid string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return token, nil
}

func (s *Sessions) sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	sid, err := s.parse(c.Value)
	if err != nil {
		return "", false
	}
	return sid, true
}

func (s *Sessions) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}
