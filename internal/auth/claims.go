package auth

import (
	"time"

	"github.com/yoofibh/webtech-dlc/internal/domain"
)

// Claims are the decoded contents of a session token.
// Tokens are v4.local, so claims are encrypted on the wire and only
// readable with the server key.
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`

	// Standard PASETO claims
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}

// IsAdmin returns true if the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}
