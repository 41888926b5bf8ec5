package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of an administrator session token.
//
// Besides the registered claims (iss, sub, iat, exp) it carries the
// session version of the administrator at issuance time, which lets the
// server reject tokens minted before the last credential rotation.
type SessionClaims struct {
	jwt.RegisteredClaims

	// SessionVersion mirrors [Admin.SessionVersion] at issuance time.
	SessionVersion int64 `json:"ver"`
}

// Token wraps a signed session JWT with convenience accessors.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// AdminID is the identifier extracted from the "sub" claim.
	AdminID int64 `json:"-"`

	// SessionVersion is the "ver" claim of the token.
	SessionVersion int64 `json:"-"`
}

// GetAdminID extracts the administrator identifier from the "sub" claim
// of the parsed token.
func (t *Token) GetAdminID() (int64, error) {
	if t.Token == nil {
		return 0, fmt.Errorf("error extracting AdminID from token: token is not parsed")
	}

	subject, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AdminID from token: %w", err)
	}

	adminID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AdminID from token to int64: %w", err)
	}

	return adminID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
