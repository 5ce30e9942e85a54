package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayfinder/booking-api/internal/core/domain"
)

// SessionCookieName is the cookie that transports the session token.
const SessionCookieName = "auth_token"

// setSessionCookie places the session token in an HTTP-only cookie whose
// lifetime matches the token's. Secure is on for production deployments.
func setSessionCookie(c echo.Context, session *domain.Session, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt) / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the client to discard the session: empty value,
// expiry in the past, same name and attributes as issuance. The server keeps
// no revocation state; an already-issued token stays valid until it expires.
func clearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
