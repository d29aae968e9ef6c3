// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/smartval/identity/internal/platform/middleware"
	"github.com/smartval/identity/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns fixed claims.
type fakeVerifier struct {
	validToken string
	claims     *sec.Claims
}

func (f *fakeVerifier) VerifyAccess(tokenString string) (*sec.Claims, error) {
	if tokenString == f.validToken {
		return f.claims, nil
	}
	return nil, sec.ErrInvalidToken
}

func testClaims(subject string, role sec.Role) *sec.Claims {
	return &sec.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		Role:             string(role),
		Kind:             sec.TokenKindAccess,
	}
}

// echoSubject writes the authenticated subject, or "anonymous".
func echoSubject(writer http.ResponseWriter, request *http.Request) {
	claims := middleware.GetUser(request.Context())
	if claims == nil {
		_, _ = writer.Write([]byte("anonymous"))
		return
	}
	_, _ = writer.Write([]byte(claims.Subject))
}

/*
TestAuthenticate covers the three header states: absent (anonymous),
well-formed with a valid token, and anything else (uniform 401).
*/
func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", claims: testClaims("ada", sec.RoleUser)}
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(echoSubject))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"no_header_is_anonymous", "", http.StatusOK, "anonymous"},
		{"valid_bearer", "Bearer good-token", http.StatusOK, "ada"},
		{"case_insensitive_scheme", "bearer good-token", http.StatusOK, "ada"},
		{"invalid_token", "Bearer bad-token", http.StatusUnauthorized, ""},
		{"malformed_header", "good-token", http.StatusUnauthorized, ""},
		{"wrong_scheme", "Basic good-token", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

/*
TestAuthenticate_UniformMessage verifies that an invalid token and a
malformed header produce the same client-facing message.
*/
func TestAuthenticate_UniformMessage(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", claims: testClaims("ada", sec.RoleUser)}
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(echoSubject))

	bodies := make([]string, 0, 2)
	for _, header := range []string{"Bearer bad-token", "not-even-bearer"} {
		request := httptest.NewRequest("GET", "/", nil)
		request.Header.Set("Authorization", header)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		bodies = append(bodies, recorder.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}

func TestRequireAuth(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", claims: testClaims("ada", sec.RoleUser)}
	handler := middleware.Authenticate(verifier)(
		middleware.RequireAuth(http.HandlerFunc(echoSubject)),
	)

	// Anonymous is blocked.
	request := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated passes.
	request = httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies exact-match role gating at the HTTP boundary,
including the denial message format.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		heldRole   sec.Role
		required   sec.Role
		wantStatus int
	}{
		{"admin_allowed", sec.RoleAdmin, sec.RoleAdmin, http.StatusOK},
		{"user_denied_admin", sec.RoleUser, sec.RoleAdmin, http.StatusForbidden},
		{"admin_denied_user_route", sec.RoleAdmin, sec.RoleUser, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{validToken: "good-token", claims: testClaims("ada", tt.heldRole)}
			handler := middleware.Authenticate(verifier)(
				middleware.RequireRole(tt.required)(http.HandlerFunc(echoSubject)),
			)

			request := httptest.NewRequest("GET", "/", nil)
			request.Header.Set("Authorization", "Bearer good-token")
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, recorder.Body.String(),
					"You need '"+string(tt.required)+"' role to access this resource.")
			}
		})
	}
}

func TestRequireRole_AnonymousGets401(t *testing.T) {
	handler := middleware.RequireRole(sec.RoleAdmin)(http.HandlerFunc(echoSubject))

	request := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequireAPIKey verifies the introspection guard: disabled when no key is
configured, constant-time match when one is.
*/
func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name        string
		expectedKey string
		sentKey     string
		wantStatus  int
	}{
		{"guard_disabled", "", "", http.StatusOK},
		{"guard_disabled_ignores_header", "", "anything", http.StatusOK},
		{"correct_key", "s3cret", "s3cret", http.StatusOK},
		{"wrong_key", "s3cret", "nope", http.StatusUnauthorized},
		{"missing_key", "s3cret", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireAPIKey(tt.expectedKey)(http.HandlerFunc(echoSubject))

			request := httptest.NewRequest("POST", "/", nil)
			if tt.sentKey != "" {
				request.Header.Set("X-API-Key", tt.sentKey)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
