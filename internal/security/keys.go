package security

import (
	"log"
	"math/rand"
	"os"
	"time"
)

var charset = "qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM1234567890-_|!/"
var seededRand *rand.Rand = rand.New(
	rand.NewSource(time.Now().UnixNano()))

func stringWithCharset(length int64, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}

// NewKeys returns the securecookie hash/block keys and the session token
// secret. Missing keys are generated and appended to .env so restarts keep
// existing cookies and tokens valid.
func NewKeys() ([]byte, []byte, []byte) {
	hashKey := keyFromEnv("PAVERADMIN_HASH_KEY", 32)
	blockKey := keyFromEnv("PAVERADMIN_BLOCK_KEY", 24)
	tokenSecret := keyFromEnv("PAVERADMIN_TOKEN_SECRET", 32)
	return hashKey, blockKey, tokenSecret
}

func keyFromEnv(name string, length int64) []byte {
	if v, ok := os.LookupEnv(name); ok {
		return []byte(v)
	}
	key := GenerateRandomKey(length)
	writeToDotenv(name, key)
	os.Setenv(name, key)
	return []byte(key)
}

func writeToDotenv(name, value string) {
	f, err := os.OpenFile(".env", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(name + "=" + value + "\n")); err != nil {
		log.Fatal(err)
	}
}

func GenerateRandomKey(length int64) string {
	return stringWithCharset(length, charset)
}
