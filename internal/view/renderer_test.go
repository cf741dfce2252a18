package view

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgboard/internal/model"
)

func TestRenderer_ParsesAllPages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{
		"error", "auth/login",
		"users/index", "users/new", "users/show", "users/edit",
		"messages/index", "messages/new", "tags/index",
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest("GET", "/users", nil), httptest.NewRecorder())

	var buf bytes.Buffer
	err = r.Render(&buf, "users/index", echo.Map{
		"Users": []model.User{{ID: 1, FirstName: "Ada", LastName: "<Lovelace>", Username: "ada"}},
	}, c)
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "&lt;Lovelace&gt;")
	assert.Contains(t, body, `href="/login"`)
}

func TestRenderer_MessagesWithTags(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "messages/index", echo.Map{
		"User": &model.User{ID: 2, FirstName: "Ada"},
		"Messages": []model.Message{{
			ID: 7, Author: "Kelley", Content: "hello", UserID: 2,
			Tags: []model.Tag{{ID: 3, Name: "greeting"}},
		}},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "/users/2/messages/7/tags/3")
	assert.Contains(t, buf.String(), "#greeting")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "nope", nil, nil))
}
