package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "msgboard/internal/errors"
)

// fieldErrors turns validator errors into per-field messages keyed by form
// field name. Other errors are reported under "form".
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required."
		case "max":
			out[fe.Field()] = fmt.Sprintf("Field must be at most %s characters long.", fe.Param())
		case "maxbytes":
			out[fe.Field()] = fmt.Sprintf("Field must be at most %s bytes long.", fe.Param())
		default:
			out[fe.Field()] = fmt.Sprintf("Invalid value (%s).", fe.Tag())
		}
	}
	return out
}

// httpError converts a service error into an echo error, keeping the cause
// for logging.
func httpError(err error) error {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.Message).SetInternal(err)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
