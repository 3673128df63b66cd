package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims binds a user's open id and display name to an expiry. The
// token is valid iff its signature and expiry check out; there is no
// server-side session state behind it.
type SessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

type TokenIssuer struct {
	secret  []byte
	expires time.Duration
}

func NewTokenIssuer(secret []byte, expires time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, expires: expires}
}

func (ti *TokenIssuer) Issue(openID, name string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   openID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.expires)),
		},
		Name: name,
	})
	return token.SignedString(ti.secret)
}

// Verify is a pure function of the token string. Expired, malformed and
// wrongly signed tokens all come back as ErrInvalidToken; callers only learn
// valid vs invalid.
func (ti *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			return ti.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
