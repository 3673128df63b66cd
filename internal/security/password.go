package security

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for password digests. Raising it invalidates
// nothing (old digests carry their own cost) but slows every login.
const BcryptCost = 10

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether digest was produced from plaintext. A
// malformed digest is simply a non-match.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
