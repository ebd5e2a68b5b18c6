package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinbook/clinbook/internal/errors"
)

// TokenInfo is display metadata extracted from the access token
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
// A token without an expiry claim is never considered expired here.
func (ti TokenInfo) Expired(now time.Time) bool {
	return !ti.ExpiresAt.IsZero() && ti.ExpiresAt.Before(now)
}

// InspectToken parses the access token without verifying its signature.
//
// The client holds no signing key; this is for status display only
// ("session expires in 12m"). Authorization decisions stay with the
// server: an expired-looking token is still sent, and the resulting 401
// drives the actual invalidation.
func InspectToken(token string) (TokenInfo, error) {
	if token == "" {
		return TokenInfo{}, errors.New(errors.ErrCodeAuthTokenMalformed, "empty token")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, errors.Wrap(errors.ErrCodeAuthTokenMalformed, "failed to parse access token", err)
	}

	var info TokenInfo
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
