package utils

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxLen is the longest input bcrypt accepts.
const bcryptMaxLen = 72

// bcryptInput returns password unchanged when bcrypt can take it, otherwise
// a fixed-length SHA-256 digest of it.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxLen {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword returns a salted bcrypt hash of password. Passwords of any
// length are accepted.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plaintext password with its bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}
