// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nikki/internal/platform/sec"
)

/*
TestHashPassword verifies that hashing produces a verifiable, non-plaintext hash.
*/
func TestHashPassword(t *testing.T) {
	password := "s3cret-passw0rd"

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	// The hash must never equal the input.
	assert.NotEqual(t, password, hash)
	assert.NotEmpty(t, hash)

	// Round-trip verification succeeds.
	assert.True(t, sec.CheckPasswordHash(password, hash))
}

/*
TestHashPassword_UniqueSalt verifies that two hashes of the same password differ.
*/
func TestHashPassword_UniqueSalt(t *testing.T) {
	password := "same-password"

	first, err := sec.HashPassword(password)
	require.NoError(t, err)

	second, err := sec.HashPassword(password)
	require.NoError(t, err)

	// bcrypt embeds a random salt, so identical inputs yield distinct hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash(password, first))
	assert.True(t, sec.CheckPasswordHash(password, second))
}

/*
TestCheckPasswordHash_Mismatch verifies that a wrong password is rejected.
*/
func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := sec.HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
	assert.False(t, sec.CheckPasswordHash("correct-password", "not-a-bcrypt-hash"))
}
