package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "msgboard/internal/errors"
)

const (
	tokenContextKey     = "session_token"
	userIDContextKey    = "session_user_id"
	sessionIDContextKey = "session_id"
)

// Sessions ties the signed cookie to the server-side session record.
type Sessions struct {
	tokens     *TokenService
	store      SessionStore
	cookieName string
	ttl        time.Duration
}

// NewSessions creates a session manager.
func NewSessions(tokens *TokenService, store SessionStore, cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{
		tokens:     tokens,
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Start opens a session for userID and sets the cookie on the response.
// A session already attached to the request is ended first.
func (s *Sessions) Start(c echo.Context, userID uint) error {
	if previous, ok := c.Get(sessionIDContextKey).(string); ok {
		if err := s.store.Delete(c.Request().Context(), previous); err != nil {
			return err
		}
	}

	sessionID := uuid.NewString()
	if err := s.store.Save(c.Request().Context(), sessionID, userID, s.ttl); err != nil {
		return err
	}

	token, err := s.tokens.Generate(sessionID, userID)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(userIDContextKey, userID)
	c.Set(sessionIDContextKey, sessionID)
	return nil
}

// End deletes the current session record, if any, and expires the cookie.
func (s *Sessions) End(c echo.Context) error {
	if sessionID, ok := c.Get(sessionIDContextKey).(string); ok {
		if err := s.store.Delete(c.Request().Context(), sessionID); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(userIDContextKey, nil)
	c.Set(sessionIDContextKey, nil)
	return nil
}

// Middleware verifies the session cookie when present and records the session
// user in the context. Requests without a valid session continue anonymously.
func (s *Sessions) Middleware() []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  s.tokens.Secret(),
		TokenLookup: "cookie:" + s.cookieName,
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
	return []echo.MiddlewareFunc{verify, s.load}
}

func (s *Sessions) load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get(tokenContextKey).(*jwt.Token)
		if !ok || !token.Valid {
			return next(c)
		}
		claims, ok := token.Claims.(*Claims)
		if !ok || claims.ID == "" {
			return next(c)
		}

		userID, found, err := s.store.Get(c.Request().Context(), claims.ID)
		if err != nil {
			slog.Warn("session lookup failed", "error", err, "request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			return next(c)
		}
		if found && userID == claims.UserID {
			c.Set(userIDContextKey, userID)
			c.Set(sessionIDContextKey, claims.ID)
		}
		return next(c)
	}
}

// CurrentUserID returns the authenticated user of the request, if any.
func CurrentUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDContextKey).(uint)
	return id, ok
}

// RequireOwner rejects the request with 403 unless the session user's id
// equals the path parameter param.
func RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID, err := strconv.ParseUint(c.Param(param), 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
			}
			userID, ok := CurrentUserID(c)
			if !ok || uint64(userID) != ownerID {
				forbidden := fmt.Errorf("%w: you can only edit your own profile", apperrors.ErrForbidden)
				mapped := apperrors.MapErrorToHTTP(forbidden)
				return echo.NewHTTPError(mapped.StatusCode, mapped.Message).SetInternal(forbidden)
			}
			return next(c)
		}
	}
}
