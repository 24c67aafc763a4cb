package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/authz"
)

// RequireRole is a coarse route-level gate: the resolved actor must hold one
// of the allowed roles. Fine-grained permission and ownership checks still
// happen in the policy behind each service call.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(CtxActor).(authz.Actor)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			for _, r := range allowedRoles {
				if actor.HasRole(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized"})
		}
	}
}
