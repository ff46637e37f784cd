package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys set by Auth.
const (
	subjectKey = "subject"
	roleKey    = "role"
)

// Role is the value of the token's role claim.
type Role string

const (
	// RoleHR may read and change the roster.
	RoleHR Role = "hr"
	// RoleViewer may only read the roster and convert amounts.
	RoleViewer Role = "viewer"
)

// RoleFrom returns the role Auth stored on c, or "" when Auth did not run.
func RoleFrom(c echo.Context) Role {
	role, _ := c.Get(roleKey).(Role)
	return role
}

// SubjectFrom returns the token subject Auth stored on c.
func SubjectFrom(c echo.Context) string {
	sub, _ := c.Get(subjectKey).(string)
	return sub
}

type roleSet map[Role]struct{}

func newRoleSet(roles []Role) roleSet {
	set := make(roleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s roleSet) allows(r Role) bool {
	_, ok := s[r]
	return ok
}

// RBAC admits a request only when its role is one of allowed. A request
// without a role never passed Auth and gets 401; a foreign role gets 403.
func RBAC(allowed ...Role) echo.MiddlewareFunc {
	set := newRoleSet(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFrom(c)
			switch {
			case role == "":
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication claims"})
			case !set.allows(role):
				return c.JSON(http.StatusForbidden, map[string]string{"error": "role " + string(role) + " may not access this resource"})
			}
			return next(c)
		}
	}
}
