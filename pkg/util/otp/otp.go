package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("OTP length must be between 4 and 10")
	ErrMismatch      = errors.New("OTP does not match")
)

const (
	DefaultLength = 6
	MinLength     = 4
	MaxLength     = 10
)

// Generate returns a numeric one-time code of the given length, drawn from
// crypto/rand. Leading zeros are preserved.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	max := new(big.Int)
	max.Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	format := fmt.Sprintf("%%0%dd", length)
	return fmt.Sprintf(format, n), nil
}

// GenerateDefault returns a 6-digit code.
func GenerateDefault() (string, error) {
	return Generate(DefaultLength)
}

// Hash returns the hex-encoded SHA-256 of the code. Only the hash is stored
// server-side, never the code itself.
func Hash(code string) string {
	code = strings.TrimSpace(code)

	h := sha256.New()
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify checks a plaintext code against a stored hash in constant time.
func Verify(hash, code string) error {
	code = strings.TrimSpace(code)

	computedHash := Hash(code)

	if subtle.ConstantTimeCompare([]byte(hash), []byte(computedHash)) != 1 {
		return ErrMismatch
	}

	return nil
}
