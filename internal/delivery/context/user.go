package context

import (
	"github.com/labstack/echo/v4"

	"portal/internal/domain/entity"
)

// SetUser stores the authenticated user for the rest of the request.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(echoUserKey, user)
}

// GetUser returns the authenticated user, or nil on routes without a session gate.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(echoUserKey).(*entity.User)

	return user
}
