package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// Context keys set by the Auth middleware.
const (
	CtxActor  = "actor"
	CtxUser   = "user"
	CtxClaims = "claims"
)

// Auth validates the bearer token, rejects revoked tokens, loads the account
// behind it and injects the resolved actor into the echo context. Roles and
// permissions come from the store on every request, not from the token, so
// assignments made after login apply immediately.
func Auth(jwtSecret string, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := parseToken(parts[1], jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			actor, user, err := auth.ResolveActor(c.Request().Context(), claims)
			if err != nil {
				if errors.Is(err, domain.ErrTokenRevoked) || errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(CtxActor, actor)
			c.Set(CtxUser, user)
			c.Set(CtxClaims, claims)

			return next(c)
		}
	}
}

func parseToken(raw, secret string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ports.TokenClaims{}, jwt.ErrTokenMalformed
	}

	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return ports.TokenClaims{}, jwt.ErrTokenInvalidClaims
	}

	out := ports.TokenClaims{UserID: sub, JTI: jti}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
