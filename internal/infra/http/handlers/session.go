package handlers

import (
	"net/http"
	"time"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

const (
	// SessionCookieName carries the guest session id across visits.
	SessionCookieName = "op_session"
	// UserIDHeader is set by the auth collaborator in front of this service.
	UserIDHeader = "X-User-ID"

	sessionCookieMaxAge = 180 * 24 * time.Hour
)

// CookieSession adapts the request/response cookie pair to the resolver's
// SessionState. Setting a session id writes the cookie immediately, so it
// must happen before the handler writes the response body.
type CookieSession struct {
	w  http.ResponseWriter
	id string
}

func NewCookieSession(w http.ResponseWriter, r *http.Request) *CookieSession {
	s := &CookieSession{w: w}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		s.id = c.Value
	}
	return s
}

func (s *CookieSession) SessionID() string {
	return s.id
}

func (s *CookieSession) SetSessionID(id string) {
	s.id = id
	http.SetCookie(s.w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// resolveIdentity pulls the identity hints off the request and resolves them.
// It never fails: worst case the visitor becomes a brand-new guest.
func resolveIdentity(resolver *usecase.ResolveIdentityUseCase, w http.ResponseWriter, r *http.Request) entity.Identity {
	session := NewCookieSession(w, r)
	return resolver.Execute(r.Context(), session, r.Header.Get(UserIDHeader))
}
