package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"msgboard/internal/service"
)

// MessageHandler handles a user's messages.
type MessageHandler struct {
	messages service.MessageService
	users    service.UserService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messages service.MessageService, users service.UserService) *MessageHandler {
	return &MessageHandler{messages: messages, users: users}
}

// CreateMessageForm is the new message form.
type CreateMessageForm struct {
	Author  string `form:"author" validate:"required"`
	Content string `form:"content" validate:"required,max=60"`
}

// ListMessages godoc
// @Summary List a user's messages
// @Tags messages
// @Produce html
// @Param id path int true "User ID"
// @Success 200 {string} string "messages page"
// @Failure 404 {string} string "not found"
// @Router /users/{id}/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, messages, err := h.messages.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "messages/index", echo.Map{
		"User":     user,
		"Messages": messages,
	})
}

// NewMessageForm godoc
// @Summary New message form
// @Tags messages
// @Produce html
// @Param id path int true "User ID"
// @Success 200 {string} string "form"
// @Failure 404 {string} string "not found"
// @Router /users/{id}/messages/new [get]
func (h *MessageHandler) NewMessageForm(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "messages/new", echo.Map{
		"User": user,
		"Form": CreateMessageForm{},
	})
}

// CreateMessage godoc
// @Summary Post a message
// @Tags messages
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "User ID"
// @Param author formData string true "Display name"
// @Param content formData string true "Message, at most 60 characters"
// @Success 303
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "validation errors"
// @Router /users/{id}/messages [post]
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var form CreateMessageForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	// Older clients post the author as "name".
	if form.Author == "" {
		form.Author = c.FormValue("name")
	}
	form.Author = strings.TrimSpace(form.Author)
	form.Content = strings.TrimSpace(form.Content)

	if err := c.Validate(&form); err != nil {
		user, uerr := h.users.GetUser(c.Request().Context(), userID)
		if uerr != nil {
			return httpError(uerr)
		}
		return c.Render(http.StatusUnprocessableEntity, "messages/new", echo.Map{
			"User":   user,
			"Form":   form,
			"Errors": fieldErrors(err),
		})
	}

	if _, err := h.messages.Create(c.Request().Context(), userID, service.CreateMessageInput{
		Author:  form.Author,
		Content: form.Content,
	}); err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d/messages", userID))
}

// DeleteMessage godoc
// @Summary Delete a message
// @Tags messages
// @Param id path int true "User ID"
// @Param message_id path int true "Message ID"
// @Success 303
// @Failure 404 {string} string "not found"
// @Router /users/{id}/messages/{message_id} [delete]
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	messageID, err := parseID(c, "message_id")
	if err != nil {
		return err
	}

	message, err := h.messages.Delete(c.Request().Context(), userID, messageID)
	if err != nil {
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d/messages", message.UserID))
}
