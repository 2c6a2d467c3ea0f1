package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenClaims holds the claims the client reads from a bearer token.
type TokenClaims struct {
	// Subject is the "sub" claim, the backend user identifier.
	Subject string
	// ExpiresAt is the "exp" claim; zero if the token carries none.
	ExpiresAt time.Time
}

// ParseBearerToken extracts the token from an Authorization header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseTokenClaims reads subject and expiry from a JWT without verifying its
// signature. The client never holds the signing key; the backend verifies
// every request, and the claims are only used to decide whether a persisted
// session is worth restoring.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	var result TokenClaims
	result.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
