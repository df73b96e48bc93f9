// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nikki/internal/platform/ctxutil"
	"github.com/taibuivan/nikki/internal/platform/middleware"
	"github.com/taibuivan/nikki/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns fixed claims.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (f *fakeVerifier) Verify(tokenString string) (*sec.AuthClaims, error) {
	if tokenString == f.validToken {
		return f.claims, nil
	}
	return nil, sec.ErrInvalidToken
}

func newAuthTestStack(t *testing.T) (http.Handler, *fakeVerifier) {
	t.Helper()

	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-123"},
	}

	// Terminal handler reports the authenticated user, if any.
	terminal := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			writer.Write([]byte("anonymous"))
			return
		}
		writer.Write([]byte(claims.UserID))
	})

	return middleware.Authenticate(verifier)(terminal), verifier
}

/*
TestAuthenticate_ValidToken verifies claims are injected for a valid bearer token.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	handler, _ := newAuthTestStack(t)

	request := httptest.NewRequest("GET", "/api/diaries", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-123", recorder.Body.String())
}

/*
TestAuthenticate_NoHeader verifies anonymous requests pass through unauthenticated.
*/
func TestAuthenticate_NoHeader(t *testing.T) {
	handler, _ := newAuthTestStack(t)

	request := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())
}

/*
TestAuthenticate_Rejections verifies malformed and invalid tokens return 401.
*/
func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"missing_token", "Bearer"},
		{"too_many_parts", "Bearer one two"},
		{"invalid_token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newAuthTestStack(t)

			request := httptest.NewRequest("GET", "/api/diaries", nil)
			request.Header.Set("Authorization", tt.header)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"error":"無効なトークンです"}`, recorder.Body.String())
		})
	}
}

/*
TestRequireAuth verifies that unauthenticated requests are blocked with 401.
*/
func TestRequireAuth(t *testing.T) {
	terminal := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})
	guarded := middleware.RequireAuth(terminal)

	// Anonymous request is rejected.
	request := httptest.NewRequest("GET", "/api/diaries", nil)
	recorder := httptest.NewRecorder()
	guarded.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"認証が必要です"}`, recorder.Body.String())

	// Authenticated request passes.
	claims := &sec.AuthClaims{UserID: "user-123"}
	request = httptest.NewRequest("GET", "/api/diaries", nil)
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	recorder = httptest.NewRecorder()
	guarded.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
