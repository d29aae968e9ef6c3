// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartval/identity/internal/identity"
	"github.com/smartval/identity/internal/platform/middleware"
	requestutil "github.com/smartval/identity/internal/platform/request"
	"github.com/smartval/identity/internal/platform/respond"
	"github.com/smartval/identity/internal/platform/sec"
	"github.com/smartval/identity/internal/platform/validate"
	"github.com/smartval/identity/pkg/pagination"
)

// Handler implements account and profile HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with account-specific routes.
//
// # Endpoints
//   - GET /me : Returns the caller's profile.
//   - PUT /me : Updates the caller's profile fields.
//   - GET /   : Lists all accounts (admin only, paginated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.profile)
		r.Put("/me", handler.updateProfile)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.listUsers)
	})

	return router
}

type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

/*
Profile returns the authenticated caller's account record.

GET /api/v1/users/me

Response:
  - 200: identity.User: Caller's profile
  - 404: NotFound: Token subject no longer resolves to an account
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Profile(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
UpdateProfile replaces the caller's mutable profile fields.

PUT /api/v1/users/me

Request:
  - Body: updateProfileRequest (FirstName, LastName, Email)

Response:
  - 200: identity.User: Updated profile
  - 400: ErrInvalidJSON: Bad input
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(identity.FieldFirstName, input.FirstName).
		Required(identity.FieldLastName, input.LastName).
		Required(identity.FieldEmail, input.Email).
		Email(identity.FieldEmail, input.Email)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), username, UpdateProfileInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
ListUsers returns a page of all accounts.

GET /api/v1/users?page=N&limit=M

Description: Admin only. The exact "admin" role is required; there is no
role hierarchy.

Response:
  - 200: []identity.User with pagination metadata
  - 403: Forbidden: Caller lacks the admin role
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, meta, err := handler.accountService.ListUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, *meta)
}
