// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package identity

import (
	"context"
	"fmt"

	"github.com/smartval/identity/internal/platform/apperr"
	"github.com/smartval/identity/internal/platform/constants"
	"github.com/smartval/identity/internal/platform/sec"
	"github.com/smartval/identity/pkg/normalize"
	"github.com/smartval/identity/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying security tokens.
type TokenProvider interface {
	// IssueAccess creates a signed short-lived access token for the subject.
	IssueAccess(username, role string) (string, error)

	// IssueRefresh creates a signed long-lived refresh token for the subject.
	IssueRefresh(username, role string) (string, error)

	// VerifyAccess validates an access token, returning one uniform error
	// for every failure mode.
	VerifyAccess(tokenString string) (*sec.Claims, error)

	// VerifyRefresh validates a refresh token, returning one uniform error
	// for every failure mode.
	VerifyRefresh(tokenString string) (*sec.Claims, error)
}

// Uniform client-facing failure messages.
//
// The same string is returned whether the username does not exist, the
// password mismatched, or a token was tampered/expired — the response never
// reveals which check failed.
const (
	msgBadCredentials = "Incorrect username or password"
	msgInvalidToken   = "Could not validate credentials"
)

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	users  UserRepository
	hasher sec.Hasher
	policy sec.PasswordPolicy
	tokens TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
//
// All collaborators are injected: there is no package-level configuration
// and no hidden global state.
func NewService(users UserRepository, hasher sec.Hasher, policy sec.PasswordPolicy, tokens TokenProvider) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		policy: policy,
		tokens: tokens,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enforces the password policy, canonicalizes the username,
checks uniqueness, and persists the account with the default role. The
plain-text password never leaves this call path and the hash never leaves
the entity's storage boundary.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (no password material)
  - error: Validation, Conflict (if the username exists), or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Enforce the password policy before any hashing work is spent.
	if !service.policy.Validate(input.Password) {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldPassword,
			Message: service.policy.Describe(),
		})
	}

	// bcrypt refuses inputs over its byte ceiling. Rejecting here keeps that
	// a validation failure for every caller, never an internal error.
	if len(input.Password) > sec.MaxPasswordBytes {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldPassword,
			Message: fmt.Sprintf("Password must be at most %d bytes", sec.MaxPasswordBytes),
		})
	}

	username := normalize.Username(input.Username)

	// Pre-check uniqueness for a friendly Conflict. The storage unique
	// constraint remains the authority if two registrations race past this.
	existing, err := service.lookup(context, username)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Username already registered")
	}

	// Prevent storing plain-text passwords. The cost factor is injected via
	// the hasher, tuned so hashing takes on the order of 100ms.
	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Username:     username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        normalize.Email(input.Email),
		PasswordHash: hashedPassword,
		Role:         sec.RoleDefault,
	}

	// Persist the user. A concurrent duplicate surfaces here as Conflict
	// via the unique-violation mapping.
	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

/*
Login validates user credentials and issues a token pair.

Description: Verifies identity with a constant-time password comparison and
returns a fresh access/refresh token pair. Unknown usernames and wrong
passwords produce byte-identical failures to prevent account enumeration.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *TokenPair: Transport-ready token pair
  - err: Unauthorized, Unavailable, or internal failures
*/
func (service *Service) Login(context context.Context, username, password string) (*TokenPair, error) {
	user, err := service.lookup(context, normalize.Username(username))
	if err != nil {
		// Generic message when the user does not exist; storage outages
		// propagate as-is so the caller can retry.
		if isNotFound(err) {
			return nil, apperr.Unauthorized(msgBadCredentials)
		}
		return nil, err
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !service.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}

	return service.issuePair(user)
}

/*
Refresh exchanges a valid refresh token for a new access token.

Description: Verifies the presented refresh token (signature, expiry, kind)
and issues a fresh access token. The refresh token itself is echoed back
unchanged — this API does not rotate refresh tokens.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *TokenPair: New access token with the original refresh token
  - err: Unauthorized on any invalid token
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := service.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized(msgInvalidToken)
	}

	accessToken, err := service.tokens.IssueAccess(claims.Subject, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_generation_failed: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    TokenTypeBearer,
	}, nil
}

/*
Introspect reports whether a presented token (access or refresh) is valid.

Description: Pure validity check — no claims leak to the caller beyond the
boolean outcome, and the reason for invalidity is never exposed.

Parameters:
  - tokenString: string

Returns:
  - bool: true only if the signature verifies and the expiry has not elapsed
*/
func (service *Service) Introspect(tokenString string) bool {
	if _, err := service.tokens.VerifyAccess(tokenString); err == nil {
		return true
	}
	if _, err := service.tokens.VerifyRefresh(tokenString); err == nil {
		return true
	}
	return false
}

/*
WhoAmI resolves an already-verified subject into its account record.

Description: The access token is verified upstream (middleware); this loads
the principal it names. A subject whose account has vanished is
indistinguishable from an invalid token.

Parameters:
  - context: context.Context
  - username: string (the verified token subject)

Returns:
  - *User: Hydrated account entity
  - err: Unauthorized or storage failures
*/
func (service *Service) WhoAmI(context context.Context, username string) (*User, error) {
	user, err := service.lookup(context, username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Unauthorized(msgInvalidToken)
		}
		return nil, err
	}
	return user, nil
}

// # Internals

// issuePair signs a fresh access/refresh token pair for the user.
func (service *Service) issuePair(user *User) (*TokenPair, error) {
	accessToken, err := service.tokens.IssueAccess(user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_generation_failed: %w", err)
	}

	refreshToken, err := service.tokens.IssueRefresh(user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("identity_service_refresh_token_failed: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    TokenTypeBearer,
	}, nil
}

// lookup fetches a user by canonical username under a bounded deadline.
//
// A repository slower than [constants.RepositoryTimeout] surfaces as
// UNAVAILABLE (retryable), never as bad credentials.
func (service *Service) lookup(parent context.Context, username string) (*User, error) {
	lookupCtx, cancel := context.WithTimeout(parent, constants.RepositoryTimeout)
	defer cancel()
	return service.users.FindByUsername(lookupCtx, username)
}

// isNotFound reports whether err is the repository's missing-row outcome.
func isNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}
