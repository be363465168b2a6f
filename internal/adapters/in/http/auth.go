package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Roles recognized by the basic auth scheme. Credentials are accepted when
// the username equals the password and names one of these roles; the matched
// role then gates route access.
const (
	RolePartner = "partner"
	RoleUser    = "user"
)

// roleContextKey is where the authenticated role is stored on the request
// context.
const roleContextKey = "auth.role"

// BasicAuthValidator validates basic auth credentials. A credential pair is
// valid when username and password match and the username is a known role.
func BasicAuthValidator(username, password string, c echo.Context) (bool, error) {
	if username != password {
		return false, nil
	}

	switch strings.ToLower(username) {
	case RolePartner, RoleUser:
		c.Set(roleContextKey, strings.ToLower(username))
		return true, nil
	default:
		return false, nil
	}
}

// requireRole returns middleware that rejects requests whose authenticated
// role is not among the allowed ones.
func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(roleContextKey).(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Insufficient role for this operation",
			})
		}
	}
}
