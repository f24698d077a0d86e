package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims decodes the stored bearer token without verifying its
// signature. The claims are display-only (whoami); nothing here grants or
// denies access; the server remains the authority on token validity.
func (s *Session) TokenClaims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.Token, claims)
	if err != nil {
		return nil, fmt.Errorf("cannot decode token: %w", err)
	}
	return claims, nil
}

// TokenExpiry returns the token's exp claim if present and well-formed.
func (s *Session) TokenExpiry() (expiry string, ok bool) {
	claims, err := s.TokenClaims()
	if err != nil {
		return "", false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", false
	}
	return exp.Time.Format("2006-01-02 15:04:05 MST"), true
}
