// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Implementations classify failures through the dberr sentinels: a missing
// row surfaces as [dberr.ErrNotFound] and a duplicate email on Create as
// [dberr.ErrUniqueViolation].
type UserRepository interface {
	// FindByID returns the account with the given ID.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email. The match is
	// case-sensitive, mirroring the uniqueness constraint.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a brand-new user account.
	Create(ctx context.Context, user *User) error

	// UpdatePassword replaces only the user's password hash.
	UpdatePassword(ctx context.Context, userID, newHash string) error
}

// # Volatile Data Access

// ResetTokenRepository defines the contract for storing volatile
// password-reset tokens. Keys are token hashes, never raw tokens.
type ResetTokenRepository interface {
	// Set stores a reset token hash associated with a userID for a limited duration.
	Set(ctx context.Context, tokenHash string, userID string, ttl time.Duration) error

	// Get retrieves the userID associated with a given reset token hash.
	Get(ctx context.Context, tokenHash string) (string, error)

	// Delete removes a reset token after successful use.
	Delete(ctx context.Context, tokenHash string) error
}
