package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayfinder/booking-api/internal/api/metrics"
	"github.com/stayfinder/booking-api/internal/core/domain"
	"github.com/stayfinder/booking-api/internal/core/ports"
)

// AuthHandler handles login, token validation, and logout.
type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: ve.Fields})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// Unknown email and wrong password are indistinguishable here:
		// the service has already collapsed both into ErrInvalidCredentials.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, session, h.secureCookie)
	return c.JSON(http.StatusOK, sessionResponse{UserID: session.UserID})
}

// ValidateToken reports the identity resolved by the session middleware. The
// middleware has already rejected the request if the cookie was missing or
// the token invalid.
//
// @Summary      Validate session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/validate-token [get]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, sessionResponse{UserID: userID})
}

// Logout clears the session cookie. Always succeeds, with or without an
// existing session.
//
// @Summary      Logout
// @Tags         auth
// @Success      200
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.secureCookie)
	return c.NoContent(http.StatusOK)
}
