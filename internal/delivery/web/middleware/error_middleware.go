package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
)

// ErrorMiddleware renders errors as HTML error pages
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	data := m.errorData(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(data.Status)

		return
	}

	page := view.Page{
		Title: http.StatusText(data.Status),
		User:  deliverycontext.GetUser(c),
		Data:  data,
	}
	if renderErr := c.Render(data.Status, view.PageError, page); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(data.Status, data.Message)
	}
}

func (m *ErrorMiddleware) errorData(err error, c echo.Context) view.ErrorData {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		data := view.ErrorData{Status: appErr.HTTPCode(), Message: appErr.Message()}
		if appErr.HTTPCode() < http.StatusInternalServerError {
			data.Details = appErr.Details()
		} else {
			m.logError(err, c)
		}

		return data
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(err, c)
		}

		return view.ErrorData{Status: httpErr.Code, Message: message}
	}

	// Unknown errors never leak their text to the browser
	m.logError(err, c)

	return view.ErrorData{Status: http.StatusInternalServerError, Message: "Internal server error"}
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	deliverycontext.LoggerFrom(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
