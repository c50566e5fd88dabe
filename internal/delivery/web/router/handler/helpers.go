// Package handler contains the HTML form handlers of the portal.
package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
)

// render writes a full page for the current session user
func render(c echo.Context, name, title string, data any) error {
	return c.Render(http.StatusOK, name, view.Page{
		Title: title,
		User:  deliverycontext.GetUser(c),
		Msg:   c.QueryParam("msg"),
		Data:  data,
	})
}

// seeOther answers a form POST with a 303 so that reloading the target page does not resubmit
func seeOther(c echo.Context, target string) error {
	return c.Redirect(http.StatusSeeOther, target)
}

// seeOtherWithMsg redirects with a ?msg= flash shown by the layout
func seeOtherWithMsg(c echo.Context, target, msg string) error {
	return seeOther(c, target+"?msg="+url.QueryEscape(msg))
}

// currentUser is only called behind RequireLogin
func currentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return user, nil
}

// pathID parses a record id route parameter. Ids that cannot exist are reported as not found.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrNotFound.WithDetails("invalid id")
	}

	return uint(id), nil
}

// receiptID parses the "<id>.pdf" segment of a receipt URL
func receiptID(c echo.Context) (uint, error) {
	file := c.Param("file")
	raw, ok := strings.CutSuffix(file, ".pdf")
	if !ok {
		return 0, domainerrors.ErrNotFound
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrNotFound.WithDetails("invalid id")
	}

	return uint(id), nil
}

// receiptQuery returns the ?receipt= id a create handler redirected with, or "" when absent or malformed
func receiptQuery(c echo.Context) string {
	raw := c.QueryParam("receipt")
	if _, err := strconv.ParseUint(raw, 10, 0); err != nil {
		return ""
	}

	return raw
}

// bindForm binds and validates a form into dst
func bindForm(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrBadRequest.WithDetails("malformed form")
	}

	return errors.WithStack(c.Validate(dst))
}

// checkbox interprets an HTML checkbox value
func checkbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
