// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package identity

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartval/identity/internal/platform/apperr"
	"github.com/smartval/identity/internal/platform/middleware"
	"github.com/smartval/identity/internal/platform/sec"
	requestutil "github.com/smartval/identity/internal/platform/request"
	"github.com/smartval/identity/internal/platform/respond"
	"github.com/smartval/identity/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration,
// login, token refresh, introspection, whoami). It is strictly responsible
// for transport concerns (status codes, headers, JSON).
type Handler struct {
	authService      *Service
	introspectionKey string
}

// NewHandler constructs a new [Handler] with its service dependency.
//
// introspectionKey optionally guards the token introspection endpoint for
// service-to-service callers; empty disables the guard.
func NewHandler(service *Service, introspectionKey string) *Handler {
	return &Handler{authService: service, introspectionKey: introspectionKey}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register      : Creates a new account.
//   - POST /token         : Authenticates and returns a token pair.
//   - POST /token/refresh : Exchanges a refresh token for a new access token.
//   - POST /token/verify  : Token introspection (optionally API-key guarded).
//   - GET  /users/me      : Returns the authenticated principal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/token", handler.login)
	router.Post("/token/refresh", handler.refresh)

	// Service-to-service introspection
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(handler.introspectionKey))
		r.Post("/token/verify", handler.verify)
	})

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/users/me", handler.whoAmI)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Description: Validates input shape, then delegates to the service which
enforces the password policy, checks for identity conflicts, and persists
the new account.

Request:
  - Body: registerRequest (Username, FirstName, LastName, Email, Password)

Response:
  - 201: User: Created profile (never includes password material)
  - 400: ErrInvalidJSON: Bad input, or password policy failure
  - 409: Conflict: Username already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 50).
		Required(FieldFirstName, input.FirstName).
		Required(FieldLastName, input.LastName).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		// bcrypt's ceiling is in bytes, so rune-based MaxLen would let a
		// multibyte password through only to fail at hash time.
		Custom(FieldPassword, len(input.Password) > sec.MaxPasswordBytes,
			fmt.Sprintf("Maximum %d bytes", sec.MaxPasswordBytes))

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and issues a token pair.

POST /api/v1/auth/token

Description: Verifies credentials and returns the access/refresh pair under
the standard bearer convention.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: TokenPair: access_token, refresh_token, token_type
  - 401: Unauthorized: Uniform failure for unknown user or wrong password
  - 503: Unavailable: Account storage unreachable (safe to retry)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.authService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

/*
Refresh issues a new access token using a valid refresh token.

POST /api/v1/auth/token/refresh

Description: Validates the refresh token and returns a fresh access token.
The refresh token is echoed back unchanged (no rotation).

Request:
  - Body: refreshRequest (RefreshToken)

Response:
  - 200: TokenPair: New access token plus the original refresh token
  - 401: Unauthorized: Missing, invalid, expired, or wrong-kind token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.RefreshToken == "" {
		respond.Error(writer, request, validate.RequiredError("refresh_token", "This field is required"))
		return
	}

	pair, err := handler.authService.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

/*
Verify reports whether a presented token is currently valid.

POST /api/v1/auth/token/verify

Description: Token introspection for clients and downstream services.
Returns only a boolean — no claims, and no hint of why an invalid token
failed.

Request:
  - Body: verifyRequest (Token)

Response:
  - 200: {token_valid: true}
  - 401: Unauthorized: The token is invalid (uniform, reason withheld)
*/
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	var input verifyRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldToken, "This field is required"))
		return
	}

	if !handler.authService.Introspect(input.Token) {
		respond.Error(writer, request, apperr.Unauthorized(msgInvalidToken))
		return
	}

	respond.OK(writer, map[string]bool{
		FieldTokenValid: true,
	})
}

/*
WhoAmI returns the profile of the authenticated caller.

GET /api/v1/auth/users/me

Description: The access token was verified by the authentication middleware;
this resolves its subject to the stored account record.

Response:
  - 200: User: Caller's profile
  - 401: Unauthorized: Token subject no longer resolves to an account
*/
func (handler *Handler) whoAmI(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.WhoAmI(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
