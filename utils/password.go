package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLen     = 32
	saltLen          = 16
)

// HashPassword derives a PBKDF2-SHA256 hash under a fresh random salt and
// returns both as hex strings.
func HashPassword(plain string) (salt string, hash string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	salt = hex.EncodeToString(raw)
	hash = hashWithSalt(plain, salt)
	return salt, hash, nil
}

// CheckPassword recomputes the hash under the stored salt and compares in
// constant time.
func CheckPassword(plain, salt, storedHash string) bool {
	computed := hashWithSalt(plain, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

func hashWithSalt(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}
