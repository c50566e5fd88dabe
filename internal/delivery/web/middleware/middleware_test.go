package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockUsecase "portal/internal/mocks/usecase"
)

const testCookie = "portal_session"

func newSessionEcho(t *testing.T, auth *mockUsecase.MockAuthUsecase) (*echo.Echo, *SessionMiddleware) {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	cfg := &config.Config{Session: config.SessionConfig{CookieName: testCookie}}
	session := NewSessionMiddleware(auth, cfg)

	e := echo.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.Use(session.Load)

	return e, session
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_Load(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	e, _ := newSessionEcho(t, auth)

	e.GET("/whoami", func(c echo.Context) error {
		if user := deliverycontext.GetUser(c); user != nil {
			return c.String(http.StatusOK, user.Email)
		}

		return c.String(http.StatusOK, "anonymous")
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid cookie", func(t *testing.T) {
		auth.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.User{ID: 1, Email: "a@x.com", Role: entity.RoleTenant}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "good"})
		rec := serve(e, req)

		assert.Equal(t, "a@x.com", rec.Body.String())
		assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
	})

	t.Run("stale cookie is cleared", func(t *testing.T) {
		auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthenticated).Once()

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale"})
		rec := serve(e, req)

		assert.Equal(t, "anonymous", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), testCookie+"=;")
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
	})
}

func TestSessionMiddleware_Gates(t *testing.T) {
	tenant := &entity.User{ID: 1, Email: "a@x.com", Role: entity.RoleTenant}

	auth := mockUsecase.NewMockAuthUsecase(t)
	e, session := newSessionEcho(t, auth)

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/records", ok, session.RequireLogin, session.RequireCapability(entity.CapManageOwnRecords))
	e.GET("/admin", ok, session.RequireLogin, session.RequireCapability(entity.CapAdminister))

	auth.EXPECT().Authenticate(mock.Anything, "tenant").Return(tenant, nil)
	auth.EXPECT().Authorize(tenant, entity.CapManageOwnRecords).Return(nil)
	auth.EXPECT().Authorize(tenant, entity.CapAdminister).Return(domainerrors.ErrForbidden)

	tests := []struct {
		name       string
		path       string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "anonymous records", path: "/records", wantStatus: http.StatusUnauthorized, wantBody: `href="/login"`},
		{name: "anonymous admin", path: "/admin", wantStatus: http.StatusUnauthorized, wantBody: "Please log in"},
		{name: "tenant records", path: "/records", cookie: "tenant", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "tenant admin", path: "/admin", cookie: "tenant", wantStatus: http.StatusForbidden, wantBody: "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: tt.cookie})
			}
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestSessionMiddleware_StartSession(t *testing.T) {
	e, session := newSessionEcho(t, mockUsecase.NewMockAuthUsecase(t))

	e.POST("/login", func(c echo.Context) error {
		session.StartSession(c, "token-value")

		return c.NoContent(http.StatusSeeOther)
	})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/login", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Equal(t, "token-value", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, int(defaultSessionMaxAge/time.Second), cookies[0].MaxAge)
}

func TestErrorMiddleware(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil))).HandleHTTPError

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   []string
		hidden     string
		wantLogged bool
	}{
		{
			name:       "app error with details",
			err:        domainerrors.ErrBadRequest.WithDetails("note is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"note is required"},
		},
		{
			name:       "wrapped not found",
			err:        errors.Wrap(domainerrors.ErrNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server app error hides details",
			err:        domainerrors.ErrInternalError.WithDetails("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"Internal server error"},
			hidden:     "connection refused",
			wantLogged: true,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "slow down"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   []string{"slow down"},
		},
		{
			name:       "unknown error",
			err:        errors.New("secret stack detail"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"Internal server error"},
			hidden:     "secret stack detail",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			if tt.hidden != "" {
				assert.NotContains(t, rec.Body.String(), tt.hidden)
			}
			assert.Equal(t, tt.wantLogged, buf.Len() > 0)
		})
	}

	t.Run("head request has no body", func(t *testing.T) {
		e.HEAD("/missing", func(echo.Context) error { return domainerrors.ErrNotFound })

		rec := serve(e, httptest.NewRequest(http.MethodHead, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
