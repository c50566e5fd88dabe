package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"
)

// SessionMiddleware resolves the signed session cookie to the current user and gates routes by role.
type SessionMiddleware struct {
	auth   usecase.AuthUsecase
	cookie config.SessionConfig
}

// defaultSessionMaxAge matches the token TTL used when session.maxAge is unset
const defaultSessionMaxAge = 7 * 24 * time.Hour

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	cookie := cfg.Session
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = defaultSessionMaxAge
	}

	return &SessionMiddleware{auth: auth, cookie: cookie}
}

// Load attaches the session user when the cookie is valid. It never rejects a request;
// a stale cookie is cleared so the browser stops sending it.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookie.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := m.auth.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			m.ClearSession(c)

			return next(c)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireLogin fails with ErrUnauthenticated when Load found no user.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetUser(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireCapability runs after RequireLogin and fails with ErrForbidden when the user's role lacks capability.
func (m *SessionMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetUser(c)
			if user == nil {
				return domainerrors.ErrUnauthenticated
			}

			if err := m.auth.Authorize(user, capability); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// StartSession stores the session token in an HttpOnly cookie.
func (m *SessionMiddleware) StartSession(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func (m *SessionMiddleware) ClearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
