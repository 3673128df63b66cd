package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/paverbrasil/paveradmin/internal/store"
	"github.com/paverbrasil/paveradmin/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_SessionMiddleware(t *testing.T) {
	next := func(c echo.Context) error {
		if u := getCtxUser(c); u != nil {
			return c.String(http.StatusOK, u.Name)
		}
		return c.String(http.StatusOK, "anonymous")
	}

	t.Run("success - valid session attaches the user", func(t *testing.T) {
		// arrange
		user := &store.User{ID: 1, OpenID: "local-admin-user", Name: "Administrador PaverBrasil"}
		mockCookies := new(testutil.MockCookieService)
		mockTokens := new(testutil.MockTokenService)
		mockUsers := new(testutil.MockUserService)
		claims := &security.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "local-admin-user"},
			Name:             "Administrador PaverBrasil",
		}
		mockTokens.On("Verify", "token").Return(claims, nil)
		mockUsers.On("GetUserByOpenID", context.Background(), "local-admin-user").Return(user)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		mockCookies.On("GetSessionToken", c).Return("token", nil)
		h := SessionMiddleware(mockUsers, mockCookies, mockTokens)(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "Administrador PaverBrasil", rec.Body.String())
	})
	t.Run("success - missing cookie leaves the request anonymous", func(t *testing.T) {
		// arrange
		mockCookies := new(testutil.MockCookieService)
		mockTokens := new(testutil.MockTokenService)
		mockUsers := new(testutil.MockUserService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		mockCookies.On("GetSessionToken", c).Return("", http.ErrNoCookie)
		h := SessionMiddleware(mockUsers, mockCookies, mockTokens)(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "anonymous", rec.Body.String())
		mockTokens.AssertNotCalled(t, "Verify")
		mockUsers.AssertNotCalled(t, "GetUserByOpenID")
	})
	t.Run("success - invalid token leaves the request anonymous", func(t *testing.T) {
		// arrange
		mockCookies := new(testutil.MockCookieService)
		mockTokens := new(testutil.MockTokenService)
		mockUsers := new(testutil.MockUserService)
		mockTokens.On("Verify", "garbage").Return(nil, security.ErrInvalidToken)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		mockCookies.On("GetSessionToken", c).Return("garbage", nil)
		h := SessionMiddleware(mockUsers, mockCookies, mockTokens)(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "anonymous", rec.Body.String())
		mockUsers.AssertNotCalled(t, "GetUserByOpenID")
	})
	t.Run("success - unknown subject leaves the request anonymous", func(t *testing.T) {
		// arrange
		mockCookies := new(testutil.MockCookieService)
		mockTokens := new(testutil.MockTokenService)
		mockUsers := new(testutil.MockUserService)
		claims := &security.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "deleted-user"},
		}
		mockTokens.On("Verify", "token").Return(claims, nil)
		mockUsers.On("GetUserByOpenID", context.Background(), "deleted-user").Return(nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		mockCookies.On("GetSessionToken", c).Return("token", nil)
		h := SessionMiddleware(mockUsers, mockCookies, mockTokens)(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

func TestMiddleware_RequireUser(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "allowed")
	}

	t.Run("success - authenticated user passes through", func(t *testing.T) {
		// arrange
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &store.User{ID: 1, Role: store.RoleUser})
		h := RequireUser(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "allowed", rec.Body.String())
	})
	t.Run("failure - anonymous caller gets the shared unauthorized message", func(t *testing.T) {
		// arrange
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		h := RequireUser(next)

		// act
		err := h(c)

		// assert
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, internal.UnauthorizedMessage, httpErr.Message)
	})
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "allowed")
	}

	t.Run("success - admin passes through", func(t *testing.T) {
		// arrange
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &store.User{ID: 1, Role: store.RoleAdmin})
		h := RequireAdmin(next)

		// act
		err := h(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "allowed", rec.Body.String())
	})
	t.Run("failure - regular user is forbidden", func(t *testing.T) {
		// arrange
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &store.User{ID: 2, Role: store.RoleUser})
		h := RequireAdmin(next)

		// act
		err := h(c)

		// assert
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})
	t.Run("failure - anonymous caller gets the shared unauthorized message", func(t *testing.T) {
		// arrange
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		h := RequireAdmin(next)

		// act
		err := h(c)

		// assert
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, internal.UnauthorizedMessage, httpErr.Message)
	})
}
