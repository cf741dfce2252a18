package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"msgboard/internal/auth"
	"msgboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.Sessions,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	messageHandler *handler.MessageHandler,
	tagHandler *handler.TagHandler,
) {
	// HTML forms can only POST; "_method" carries PATCH and DELETE.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))
	e.Use(middleware.RequestID())
	e.Use(RequestLogger())
	e.Use(middleware.Recover())
	e.Use(sessions.Middleware()...)

	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/users")
	})

	// Auth
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Users
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/new", userHandler.NewUserForm)
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users/:id", userHandler.ShowUser)
	e.GET("/users/:id/edit", userHandler.EditUser, auth.RequireOwner("id"))
	e.PATCH("/users/:id", userHandler.UpdateUser, auth.RequireOwner("id"))

	// Messages
	e.GET("/users/:id/messages", messageHandler.ListMessages)
	e.GET("/users/:id/messages/new", messageHandler.NewMessageForm)
	e.POST("/users/:id/messages", messageHandler.CreateMessage)
	e.DELETE("/users/:id/messages/:message_id", messageHandler.DeleteMessage)

	// Tags
	e.GET("/tags", tagHandler.ListTags)
	e.POST("/tags", tagHandler.CreateTag)
	e.DELETE("/tags/:id", tagHandler.DeleteTag)
	e.POST("/users/:id/messages/:message_id/tags", tagHandler.AttachTag)
	e.DELETE("/users/:id/messages/:message_id/tags/:tag_id", tagHandler.DetachTag)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports field errors under their form names.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// bcrypt limits passwords by bytes, not characters.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RequestLogger logs one line per request through slog.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("request", attrs...)
			return nil
		},
	})
}

// ErrorHandler renders errors as an HTML page with the matching status code.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.Render(code, "error", echo.Map{
			"Status":     code,
			"StatusText": http.StatusText(code),
			"Message":    message,
		})
	}
	if err != nil {
		slog.Error("render error page", "error", err)
	}
}
