package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters, the recommended minimum configuration:
// 19 MiB of memory, 2 iterations, 1 lane.
const (
	argonMemory      = 19 * 1024
	argonIterations  = 2
	argonParallelism = 1
	argonSaltLength  = 16
	argonKeyLength   = 32
)

// ErrInvalidPasswordHash is returned by VerifyPassword when the stored hash
// is not a well-formed argon2id PHC string.
var ErrInvalidPasswordHash = errors.New("invalid password hash")

// ErrWrongPassword is returned by VerifyPassword when the password does not
// match the stored hash.
var ErrWrongPassword = errors.New("wrong password")

// HashPassword derives an argon2id hash of password with a fresh random salt
// and returns it in PHC string format:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword re-derives the argon2id key of password using the salt and
// parameters stored in encodedHash and compares it in constant time.
//
// Returns nil on match, [ErrWrongPassword] on mismatch, and
// [ErrInvalidPasswordHash] when encodedHash cannot be parsed.
func VerifyPassword(password, encodedHash string) error {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrInvalidPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrInvalidPasswordHash
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return ErrInvalidPasswordHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrInvalidPasswordHash
	}

	wantKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrInvalidPasswordHash
	}

	gotKey := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(wantKey)))

	if subtle.ConstantTimeCompare(gotKey, wantKey) != 1 {
		return ErrWrongPassword
	}

	return nil
}
