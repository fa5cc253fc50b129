package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/comanda/ordering-system/internal/api/metrics"
	"github.com/comanda/ordering-system/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// Session authenticates the request from its session cookie. The cookie
// value is a signed token naming a server-side session record; the record
// is looked up on every request so a logout revokes access immediately.
// On success the session identity is injected into the request context.
func Session(secret string, store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("no_session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthRejectionsTotal.WithLabelValues("no_session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("no_session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			session, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("no_session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set("session_id", session.ID)
			c.Set("user_id", session.UserID)
			c.Set("username", session.Username)
			c.Set("role", session.Role)

			return next(c)
		}
	}
}
