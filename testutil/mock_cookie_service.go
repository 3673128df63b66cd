package testutil

import (
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockCookieService struct {
	mock.Mock
}

func (m *MockCookieService) GetSessionToken(c echo.Context) (string, error) {
	args := m.Called(c)
	return args.String(0), args.Error(1)
}

func (m *MockCookieService) SetSessionCookie(c echo.Context, token string) error {
	args := m.Called(c, token)
	return args.Error(0)
}

func (m *MockCookieService) RemoveSessionCookie(c echo.Context) {
	m.Called(c)
}
