package pasetotoken

import "fmt"

// ErrConfig signals a misconfigured key set or manager option.
type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return "paseto config error: " + e.Msg }

// ErrInvalidToken wraps any parse or verification failure. Callers treat all
// of them the same, as an unauthenticated request.
type ErrInvalidToken struct{ Err error }

func (e ErrInvalidToken) Error() string { return fmt.Sprintf("invalid token: %v", e.Err) }
func (e ErrInvalidToken) Unwrap() error { return e.Err }
