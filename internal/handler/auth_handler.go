package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"msgboard/internal/auth"
	apperrors "msgboard/internal/errors"
	"msgboard/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.Sessions
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginForm is the login form.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginPage godoc
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "form"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "auth/login", echo.Map{})
}

// Login godoc
// @Summary Log in and start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303
// @Failure 401 {string} string "invalid credentials"
// @Failure 422 {string} string "validation errors"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusUnprocessableEntity, "auth/login", echo.Map{
			"Username": form.Username,
			"Errors":   fieldErrors(err),
		})
	}

	user, err := h.authService.Authenticate(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Render(http.StatusUnauthorized, "auth/login", echo.Map{
				"Username": form.Username,
				"Error":    err.Error(),
			})
		}
		return httpError(err)
	}

	if err := h.sessions.Start(c, user.ID); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", user.ID))
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Success 303
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/users")
}
