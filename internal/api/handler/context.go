package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/practicum/employee-model/internal/api/middleware"
)

// actor returns the token subject injected by the Auth middleware, or
// "anonymous" when auth is disabled.
func actor(c echo.Context) string {
	if sub := middleware.SubjectFrom(c); sub != "" {
		return sub
	}
	return "anonymous"
}
