package testutil

import (
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(openID, name string) (string, error) {
	args := m.Called(openID, name)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*security.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SessionClaims), args.Error(1)
}
