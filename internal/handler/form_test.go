package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "msgboard/internal/errors"
)

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(CreateMessageForm{Content: strings.Repeat("x", 61)})

	errs := fieldErrors(err)
	assert.Equal(t, "This field is required.", errs["Author"])
	assert.Equal(t, "Field must be at most 60 characters long.", errs["Content"])

	assert.Equal(t, map[string]string{"form": "boom"}, fieldErrors(errors.New("boom")))
}

func TestFormValue(t *testing.T) {
	params := map[string][]string{
		"first_name":      {""},
		"profile_picture": {"http://img"},
	}

	first := formValue(params, "first_name")
	if assert.NotNil(t, first) {
		assert.Equal(t, "", *first)
	}
	assert.Nil(t, formValue(params, "last_name"))

	pic := formValue(params, "picture_url", "profile_picture")
	if assert.NotNil(t, pic) {
		assert.Equal(t, "http://img", *pic)
	}
}

func TestHTTPError(t *testing.T) {
	err := httpError(apperrors.ErrMessageNotFound)

	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Equal(t, "message not found", he.Message)
		assert.ErrorIs(t, he.Internal, apperrors.ErrMessageNotFound)
	}
}

func TestParseID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("12")
	id, err := parseID(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"0", "-1", "x"} {
		c.SetParamValues(bad)
		_, err := parseID(c, "id")
		assert.Error(t, err, bad)
	}
}
