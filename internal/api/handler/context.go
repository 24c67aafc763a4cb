package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/api/middleware"
	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// ctxActor extracts the actor resolved by the Auth middleware. Its presence
// proves the middleware ran; a handler reached without it is a routing bug,
// answered with 401 rather than a panic.
func ctxActor(c echo.Context) (authz.Actor, error) {
	actor, ok := c.Get(middleware.CtxActor).(authz.Actor)
	if !ok {
		return authz.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}

// ctxUser extracts the full user record loaded by the Auth middleware.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CtxUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// ctxClaims extracts the verified token claims, needed for logout revocation.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	claims, ok := c.Get(middleware.CtxClaims).(ports.TokenClaims)
	if !ok {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
