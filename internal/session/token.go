package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read out of a bearer token without verifying it.
// Taskzilla tokens are opaque to the client by contract, but deployments that
// issue JWTs get their claims surfaced in `auth status`.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// InspectToken best-effort parses the current token as a JWT.
// Returns false for opaque (non-JWT) tokens. The signature is NOT verified;
// this is display metadata only, never an authorization decision.
func (s *Store) InspectToken() (TokenInfo, bool) {
	token := s.Token()
	if token == "" {
		return TokenInfo{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, false
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, true
}
