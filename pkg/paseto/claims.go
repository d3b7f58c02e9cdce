package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the decoded token payload the application works with. The
// getters below satisfy reqctx.AuthClaims so claims can travel through
// contexts without importing this package.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
