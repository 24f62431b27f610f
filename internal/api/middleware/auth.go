package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/userportal/account-system/internal/core/ports"
)

// Auth validates the JWT, checks the session registry and injects claims
// into context. A token whose session has been revoked (logout) is
// rejected even though its signature is still valid.
func Auth(jwtSecret string, sessions ports.SessionRegistry) echo.MiddlewareFunc {
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

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["jti"].(string)
			if sessions != nil {
				if sessionID == "" {
					return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
				}
				active, err := sessions.Exists(c.Request().Context(), sessionID)
				if err != nil {
					return err
				}
				if !active {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
			}

			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
