// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access tokens from refresh tokens.
//
// # Why an explicit kind claim?
//
// Access and refresh tokens are structurally identical signed claim sets
// differing only by TTL. Without a kind claim, nothing stops a long-lived
// refresh token being presented where an access token is expected. The
// verifier rejects mismatched kinds.
type TokenKind string

const (
	// TokenKindAccess marks a short-lived token used on API requests.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh marks a long-lived token exchanged for new access tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// ErrInvalidToken is the single, uniform verification failure.
//
// # Uniform Failure
//
// Malformed encoding, signature mismatch, expiry, a missing subject, and a
// kind mismatch are all indistinguishable to callers. Exposing which check
// failed would hand an attacker a verification oracle.
var ErrInvalidToken = errors.New("sec: invalid token")

// Claims represents the payload embedded inside a signed token.
//
// Custom application claims use abbreviated JSON keys to keep the token
// payload small. The Subject registered claim carries the username.
type Claims struct {
	jwt.RegisteredClaims

	Role string    `json:"rol"`
	Kind TokenKind `json:"knd"`
}

// TokenService issues and verifies HMAC-signed JWTs.
//
// # Concurrency
//
// The service is immutable after construction: signing and verification are
// pure functions over the secret and are safely callable from any number of
// goroutines without locks.
type TokenService struct {
	secret     []byte
	method     jwt.SigningMethod
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService constructs a TokenService from configuration.
//
// A missing secret or an unknown/non-HMAC algorithm is a fatal
// misconfiguration and fails construction — it is never a per-request error.
func NewTokenService(secret, algorithm, issuer string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret is required")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("sec: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("sec: algorithm %q is not a symmetric HMAC method", algorithm)
	}

	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("sec: token TTLs must be positive")
	}

	return &TokenService{
		secret:     []byte(secret),
		method:     method,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTTL returns the configured access-token lifetime.
func (service *TokenService) AccessTTL() time.Duration {
	return service.accessTTL
}

// IssueAccess creates a signed short-lived access token for the subject.
func (service *TokenService) IssueAccess(username, role string) (string, error) {
	return service.issue(username, role, TokenKindAccess, service.accessTTL)
}

// IssueRefresh creates a signed long-lived refresh token for the subject.
func (service *TokenService) IssueRefresh(username, role string) (string, error) {
	return service.issue(username, role, TokenKindRefresh, service.refreshTTL)
}

// issue signs a claim set of the given kind and lifetime.
func (service *TokenService) issue(username, role string, kind TokenKind, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Role: role,
		Kind: kind,
	}

	token := jwt.NewWithClaims(service.method, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks signature, expiry, subject, and kind of a token string.
//
// Every failure mode collapses into [ErrInvalidToken]; an expired or
// tampered token is indistinguishable from an absent one.
func (service *TokenService) Verify(tokenString string, expectedKind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return service.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	if claims.Kind != expectedKind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// VerifyAccess verifies an access token.
func (service *TokenService) VerifyAccess(tokenString string) (*Claims, error) {
	return service.Verify(tokenString, TokenKindAccess)
}

// VerifyRefresh verifies a refresh token.
func (service *TokenService) VerifyRefresh(tokenString string) (*Claims, error) {
	return service.Verify(tokenString, TokenKindRefresh)
}
