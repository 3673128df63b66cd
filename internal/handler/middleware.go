package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type UserSessionServicer interface {
	GetUserByOpenID(ctx context.Context, openID string) *store.User
}

type SessionCookieServicer interface {
	GetSessionToken(echo.Context) (string, error)
}

type SessionTokenVerifier interface {
	Verify(token string) (*security.SessionClaims, error)
}

// SessionMiddleware resolves the session cookie to a user and stores it in
// the request context. Every failure mode (no cookie, bad cookie, bad or
// expired token, unknown subject) just means no user is attached.
func SessionMiddleware(
	userService UserSessionServicer,
	cookieService SessionCookieServicer,
	tokens SessionTokenVerifier,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := cookieService.GetSessionToken(c)
			if err != nil || token == "" {
				return next(c)
			}
			claims, err := tokens.Verify(token)
			if err != nil {
				return next(c)
			}
			if u := userService.GetUserByOpenID(c.Request().Context(), claims.Subject); u != nil {
				c.Set("user", u)
			}
			return next(c)
		}
	}
}

// RequireUser gates protected operations. It runs before any handler touches
// the store, and always fails with the exact shared unauthorized message.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if getCtxUser(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, internal.UnauthorizedMessage)
		}
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := getCtxUser(c)
		if u == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, internal.UnauthorizedMessage)
		}
		if !u.IsAdmin() {
			return newError(c, nil, http.StatusForbidden, "invalid permissions")
		}
		return next(c)
	}
}
