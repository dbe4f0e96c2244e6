// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by access tokens.
//
// Only the registered claims are used: "sub" holds the authenticated
// username, "iss" the configured issuer, "iat" and "exp" the validity window.
type Claims struct {
	jwt.RegisteredClaims
}

// Token is the server-side view of an issued or verified access token.
//
// It is never persisted: the server keeps no session state and every
// request is re-verified from SignedString alone.
type Token struct {
	// Subject is the username the token was issued for.
	Subject string `json:"-"`

	// IssuedAt is the moment the token was signed.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the end of the validity window. Verification fails at or
	// after this instant.
	ExpiresAt time.Time `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
