package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("success - digest verifies against its password", func(t *testing.T) {
		// arrange
		password := "paverbrasil2026"

		// act
		digest, err := HashPassword(password)

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, digest)
		assert.NotEqual(t, password, digest)
		assert.True(t, VerifyPassword(password, digest))
	})
	t.Run("success - hashing twice yields different digests", func(t *testing.T) {
		// arrange
		password := "paverbrasil2026"

		// act
		first, err1 := HashPassword(password)
		second, err2 := HashPassword(password)

		// assert
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.NotEqual(t, first, second)
		assert.True(t, VerifyPassword(password, first))
		assert.True(t, VerifyPassword(password, second))
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("failure - wrong password does not verify", func(t *testing.T) {
		// arrange
		digest, err := HashPassword("correctpassword")
		assert.NoError(t, err)

		// act
		ok := VerifyPassword("wrongpassword", digest)

		// assert
		assert.False(t, ok)
	})
	t.Run("failure - malformed digest is a non-match, not a panic", func(t *testing.T) {
		// act
		ok := VerifyPassword("anything", "not-a-bcrypt-digest")

		// assert
		assert.False(t, ok)
	})
	t.Run("failure - empty digest is a non-match", func(t *testing.T) {
		// act
		ok := VerifyPassword("anything", "")

		// assert
		assert.False(t, ok)
	})
}
