// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nikki/internal/platform/sec"
)

const testIssuer = "nikki.test"

/*
TestTokenService_IssueVerify tests a full issue/verify round trip.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	tokenString, err := service.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

/*
TestTokenService_EmptySecret verifies that construction fails without a secret.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer, time.Hour)
	assert.Error(t, err)
}

/*
TestTokenService_Expired verifies that an expired token is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	// A negative TTL produces a token that is already expired.
	service, err := sec.NewTokenService("test-secret", testIssuer, -time.Minute)
	require.NoError(t, err)

	tokenString, err := service.Issue("user-123")
	require.NoError(t, err)

	_, err = service.Verify(tokenString)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_WrongSecret verifies that a token signed with another key fails.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuerService, err := sec.NewTokenService("secret-a", testIssuer, time.Hour)
	require.NoError(t, err)

	verifierService, err := sec.NewTokenService("secret-b", testIssuer, time.Hour)
	require.NoError(t, err)

	tokenString, err := issuerService.Issue("user-123")
	require.NoError(t, err)

	_, err = verifierService.Verify(tokenString)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Malformed verifies that garbage input is rejected uniformly.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := service.Verify(input)
		assert.ErrorIs(t, err, sec.ErrInvalidToken, "input=%q", input)
	}
}

/*
TestGenerateSecureToken verifies random token generation and hashing.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 bytes hex-encoded is 64 characters.
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	// Hashing is deterministic and never returns the input.
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
	assert.NotEqual(t, first, sec.HashToken(first))
}
