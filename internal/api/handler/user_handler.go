package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayfinder/booking-api/internal/api/metrics"
	"github.com/stayfinder/booking-api/internal/core/domain"
	"github.com/stayfinder/booking-api/internal/core/ports"
)

// UserHandler handles account registration.
type UserHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

func NewUserHandler(authService ports.AuthService, secureCookie bool) *UserHandler {
	return &UserHandler{authService: authService, secureCookie: secureCookie}
}

// Register creates a new account and logs it in immediately: the response
// carries the session cookie just like a successful login.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
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

	session, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "user already exists"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, session, h.secureCookie)
	return c.JSON(http.StatusCreated, sessionResponse{UserID: session.UserID})
}
