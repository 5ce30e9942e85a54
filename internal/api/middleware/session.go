package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayfinder/booking-api/internal/api/handler"
	"github.com/stayfinder/booking-api/internal/api/metrics"
	"github.com/stayfinder/booking-api/internal/core/ports"
)

// Session gates protected routes on the auth_token cookie. A missing cookie
// and an invalid or expired token are rejected with the same response, so the
// client never learns which check failed. On success the resolved subject id
// is attached to the request context under "user_id".
//
// The gate is pure: it never touches account state and never re-issues a
// token (no sliding expiry).
func Session(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(handler.SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			userID, err := tokens.Validate(cookie.Value)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
