package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength      = 32
	keyLength       = 32
	hashIterations  = 100_000
	recordRawLength = saltLength + keyLength
)

var errEmptyPassword = errors.New("password must not be empty")

// HashPassword derives a salted credential record for the given password.
// The record is base64(salt || key) with a fresh 32-byte random salt and a
// PBKDF2-HMAC-SHA256 key, so equal passwords never produce equal records.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha256.New)
	record := make([]byte, 0, recordRawLength)
	record = append(record, salt...)
	record = append(record, key...)

	return base64.StdEncoding.EncodeToString(record), nil
}

// VerifyPassword re-derives the key with the salt stored in the record and
// compares it in constant time. Malformed records verify false rather than
// erroring, so callers cannot distinguish them from a wrong password.
func VerifyPassword(record string, password string) bool {
	raw, err := base64.StdEncoding.DecodeString(record)
	if err != nil || len(raw) != recordRawLength {
		return false
	}

	salt := raw[:saltLength]
	storedKey := raw[saltLength:]
	derivedKey := pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(storedKey, derivedKey) == 1
}
