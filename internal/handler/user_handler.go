package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"msgboard/internal/auth"
	apperrors "msgboard/internal/errors"
	"msgboard/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	users       service.UserService
	authService service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{users: users, authService: authService}
}

// CreateUserForm is the sign-up form.
type CreateUserForm struct {
	Username   string `form:"username" validate:"required,max=255"`
	Password   string `form:"password" validate:"required,maxbytes=72"`
	FirstName  string `form:"first_name"`
	LastName   string `form:"last_name"`
	PictureURL string `form:"picture_url"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce html
// @Success 200 {string} string "users page"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "users/index", echo.Map{"Users": users})
}

// NewUserForm godoc
// @Summary Sign-up form
// @Tags users
// @Produce html
// @Success 200 {string} string "form"
// @Router /users/new [get]
func (h *UserHandler) NewUserForm(c echo.Context) error {
	return c.Render(http.StatusOK, "users/new", echo.Map{"Form": CreateUserForm{}})
}

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Param picture_url formData string false "Picture URL"
// @Success 303
// @Failure 409 {string} string "username taken"
// @Failure 422 {string} string "validation errors"
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var form CreateUserForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := c.Validate(&form); err != nil {
		form.Password = ""
		return c.Render(http.StatusUnprocessableEntity, "users/new", echo.Map{
			"Form":   form,
			"Errors": fieldErrors(err),
		})
	}

	_, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Username:   form.Username,
		Password:   form.Password,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		PictureURL: form.PictureURL,
	})
	if err != nil {
		form.Password = ""
		switch {
		case errors.Is(err, apperrors.ErrUsernameTaken):
			return c.Render(http.StatusConflict, "users/new", echo.Map{
				"Form":  form,
				"Error": err.Error(),
			})
		case errors.Is(err, apperrors.ErrInvalidInput):
			return c.Render(http.StatusUnprocessableEntity, "users/new", echo.Map{
				"Form":  form,
				"Error": err.Error(),
			})
		}
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/users")
}

// ShowUser godoc
// @Summary Show a user
// @Tags users
// @Produce html
// @Param id path int true "User ID"
// @Success 200 {string} string "profile page"
// @Failure 404 {string} string "not found"
// @Router /users/{id} [get]
func (h *UserHandler) ShowUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "users/show", echo.Map{
		"User":    user,
		"IsOwner": isSessionUser(c, user.ID),
	})
}

// EditUser godoc
// @Summary Profile edit form (owner only)
// @Tags users
// @Produce html
// @Param id path int true "User ID"
// @Success 200 {string} string "form"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /users/{id}/edit [get]
func (h *UserHandler) EditUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "users/edit", echo.Map{"User": user})
}

// UpdateUser godoc
// @Summary Update supplied profile fields (owner only)
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "User ID"
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Param picture_url formData string false "Picture URL"
// @Success 200 {string} string "profile page"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	var in service.UpdateUserInput
	in.FirstName = formValue(params, "first_name")
	in.LastName = formValue(params, "last_name")
	in.PictureURL = formValue(params, "picture_url", "profile_picture")

	user, err := h.users.UpdateUser(c.Request().Context(), id, in)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "users/show", echo.Map{
		"User":    user,
		"IsOwner": isSessionUser(c, user.ID),
	})
}

// formValue returns the first of keys present in params, or nil when none
// was submitted.
func formValue(params map[string][]string, keys ...string) *string {
	for _, key := range keys {
		if v, ok := params[key]; ok && len(v) > 0 {
			s := v[0]
			return &s
		}
	}
	return nil
}

func isSessionUser(c echo.Context, id uint) bool {
	current, ok := auth.CurrentUserID(c)
	return ok && current == id
}
