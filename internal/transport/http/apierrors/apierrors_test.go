package apierrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DuongAty/workout-planner/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil is programming error", nil, http.StatusInternalServerError, "internal"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated"},
		{"expired token", service.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated"},
		{"revoked token", service.ErrTokenRevoked, http.StatusUnauthorized, "unauthenticated"},
		{"reused refresh token", service.ErrTokenReused, http.StatusUnauthorized, "unauthenticated"},
		{"no active session", service.ErrAccessDenied, http.StatusUnauthorized, "unauthenticated"},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict, "already_exists"},
		{"email taken", service.ErrEmailTaken, http.StatusConflict, "already_exists"},
		{"invalid email", service.ErrInvalidEmail, http.StatusBadRequest, "invalid_argument"},
		{"weak password", service.ErrWeakPassword, http.StatusBadRequest, "invalid_argument"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"bad request", ErrBadRequest, http.StatusBadRequest, "invalid_argument"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"dependency failure", service.ErrDependency, http.StatusBadGateway, "dependency_failure"},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"unknown error stays opaque", errors.New("pq: column does not exist"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedSentinel(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service.auth.SignIn: %w", service.ErrInvalidCredentials)
	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthenticated", resp.Error.Code)
	// Внутренние детали не утекают в message.
	require.NotContains(t, resp.Error.Message, "SignIn")
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-123")

	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "not_found", env.Error.Code)
	require.Equal(t, "rid-123", env.Error.RequestID)
}
