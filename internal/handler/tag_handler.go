package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "msgboard/internal/errors"
	"msgboard/internal/service"
)

// TagHandler handles tags and tagging of messages.
type TagHandler struct {
	tags service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tags service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// TagForm names a tag.
type TagForm struct {
	Name string `form:"name" validate:"required,max=255"`
}

// ListTags godoc
// @Summary List tags
// @Tags tags
// @Produce html
// @Success 200 {string} string "tags page"
// @Router /tags [get]
func (h *TagHandler) ListTags(c echo.Context) error {
	return h.renderList(c, http.StatusOK, echo.Map{})
}

// CreateTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Tag name"
// @Success 303
// @Failure 409 {string} string "name taken"
// @Failure 422 {string} string "validation errors"
// @Router /tags [post]
func (h *TagHandler) CreateTag(c echo.Context) error {
	var form TagForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Name = strings.TrimSpace(form.Name)

	if err := c.Validate(&form); err != nil {
		return h.renderList(c, http.StatusUnprocessableEntity, echo.Map{
			"Name":  form.Name,
			"Error": "Tag name: " + fieldErrors(err)["name"],
		})
	}

	if _, err := h.tags.CreateTag(c.Request().Context(), form.Name); err != nil {
		if errors.Is(err, apperrors.ErrTagNameTaken) {
			return h.renderList(c, http.StatusConflict, echo.Map{
				"Name":  form.Name,
				"Error": err.Error(),
			})
		}
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/tags")
}

// DeleteTag godoc
// @Summary Delete a tag and its message associations
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 303
// @Failure 404 {string} string "not found"
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.tags.DeleteTag(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/tags")
}

// AttachTag godoc
// @Summary Tag a message
// @Tags tags
// @Accept x-www-form-urlencoded
// @Param id path int true "User ID"
// @Param message_id path int true "Message ID"
// @Param name formData string true "Tag name"
// @Success 303
// @Failure 404 {string} string "not found"
// @Router /users/{id}/messages/{message_id}/tags [post]
func (h *TagHandler) AttachTag(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "message_id")
	if err != nil {
		return err
	}

	var form TagForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Name = strings.TrimSpace(form.Name)
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Tag name: "+fieldErrors(err)["name"])
	}

	if _, err := h.tags.AttachTag(c.Request().Context(), userID, messageID, form.Name); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d/messages", userID))
}

// DetachTag godoc
// @Summary Remove a tag from a message
// @Tags tags
// @Param id path int true "User ID"
// @Param message_id path int true "Message ID"
// @Param tag_id path int true "Tag ID"
// @Success 303
// @Failure 404 {string} string "not found"
// @Router /users/{id}/messages/{message_id}/tags/{tag_id} [delete]
func (h *TagHandler) DetachTag(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "message_id")
	if err != nil {
		return err
	}
	tagID, err := parseID(c, "tag_id")
	if err != nil {
		return err
	}

	if err := h.tags.DetachTag(c.Request().Context(), userID, messageID, tagID); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d/messages", userID))
}

func (h *TagHandler) renderList(c echo.Context, status int, data echo.Map) error {
	tags, err := h.tags.ListTags(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	data["Tags"] = tags
	return c.Render(status, "tags/index", data)
}
