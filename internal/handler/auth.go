package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type UserAuthServicer interface {
	Authenticate(ctx context.Context, username, password string) (*store.User, error)
	EnsureAdmin(ctx context.Context)
}

type AuthCookieServicer interface {
	SetSessionCookie(echo.Context, string) error
	RemoveSessionCookie(echo.Context)
}

type AuthTokenIssuer interface {
	Issue(openID, name string) (string, error)
}

func SetupAuthRoutes(
	g *echo.Group,
	userService UserAuthServicer,
	cookieService AuthCookieServicer,
	tokens AuthTokenIssuer,
) {
	h := NewAuthHandler(userService, cookieService, tokens)
	g.POST("/api/auth/login", h.PostLogin)
	g.POST("/api/auth/logout", h.PostLogout)
	g.GET("/api/auth/me", h.GetMe)
}

type AuthHandler struct {
	userService   UserAuthServicer
	cookieService AuthCookieServicer
	tokens        AuthTokenIssuer
}

func NewAuthHandler(
	userService UserAuthServicer,
	cookieService AuthCookieServicer,
	tokens AuthTokenIssuer,
) *AuthHandler {
	return &AuthHandler{userService, cookieService, tokens}
}

type LoginResponse struct {
	Success bool          `json:"success"`
	User    LoginUserInfo `json:"user"`
}

type LoginUserInfo struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
}

func (h *AuthHandler) PostLogin(c echo.Context) error {
	lp := new(LoginParams)
	if err := c.Bind(lp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid login data")
	}
	if lp.Username == "" {
		return newError(c, nil, http.StatusBadRequest, "username is required")
	}
	if lp.Password == "" {
		return newError(c, nil, http.StatusBadRequest, "password is required")
	}

	u, err := h.userService.Authenticate(c.Request().Context(), lp.Username, lp.Password)
	if err != nil {
		return newError(c, err, http.StatusUnauthorized, "Invalid username or password")
	}

	openID := u.OpenID
	if openID == "" {
		openID = fmt.Sprintf("local-%d", u.ID)
	}
	name := u.Name
	if name == "" {
		name = "Admin"
	}
	token, err := h.tokens.Issue(openID, name)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to create session")
	}

	if err := h.cookieService.SetSessionCookie(c, token); err != nil {
		return newError(
			c, err, http.StatusInternalServerError, "unable to set session cookie",
		)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User: LoginUserInfo{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
		},
	})
}

func (h *AuthHandler) PostLogout(c echo.Context) error {
	h.cookieService.RemoveSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GetMe returns the caller's resolved identity, or JSON null when there is
// none. An unauthenticated probe also kicks the admin bootstrap, so a fresh
// deployment can always log in.
func (h *AuthHandler) GetMe(c echo.Context) error {
	u := getCtxUser(c)
	if u == nil {
		h.userService.EnsureAdmin(c.Request().Context())
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, u)
}
