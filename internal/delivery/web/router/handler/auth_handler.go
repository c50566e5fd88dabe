package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"
)

const (
	msgAccountCreated     = "Account created, please log in"
	msgEmailRegistered    = "Email already registered"
	msgInvalidCredentials = "Invalid credentials"
)

type registerForm struct {
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,max=72"`
}

type loginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AuthHandler serves the home page, registration, login and logout.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	session *middleware.SessionMiddleware
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, session *middleware.SessionMiddleware, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, session: session, logger: logger}
}

func (h *AuthHandler) Home(c echo.Context) error {
	return render(c, view.PageHome, "", nil)
}

func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return render(c, view.PageRegister, "Register", nil)
}

// Register creates a tenant account and sends the browser to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	_, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
		return seeOtherWithMsg(c, "/login", msgEmailRegistered)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return seeOtherWithMsg(c, "/login", msgAccountCreated)
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, view.PageLogin, "Log in", nil)
}

// Login starts a session. Bad credentials go back to the form with a message, never a distinct error.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := bindForm(c, &form); err != nil {
		return seeOtherWithMsg(c, "/login", msgInvalidCredentials)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return seeOtherWithMsg(c, "/login", msgInvalidCredentials)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	h.session.StartSession(c, output.SessionToken)

	return seeOther(c, "/dashboard")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.ClearSession(c)

	return seeOther(c, "/")
}

func (h *AuthHandler) Dashboard(c echo.Context) error {
	return render(c, view.PageDashboard, "Dashboard", nil)
}
