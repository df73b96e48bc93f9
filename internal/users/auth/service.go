// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/nikki/internal/platform/apperr"
	"github.com/taibuivan/nikki/internal/platform/constants"
	"github.com/taibuivan/nikki/internal/platform/dberr"
	"github.com/taibuivan/nikki/internal/platform/sec"
	"github.com/taibuivan/nikki/pkg/uuidv7"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting session tokens.
type TokenIssuer interface {
	// Issue creates a signed session token embedding the user ID.
	Issue(userID string) (string, error)
}

// Service implements the account use cases: sign-up, sign-in, and password
// recovery.
//
// Sessions are stateless JWTs, so the service holds no session state; its
// only collaborators are the user store, the volatile reset-token store, and
// the token issuer.
type Service struct {
	users       UserRepository
	resetTokens ResetTokenRepository
	tokens      TokenIssuer
	logger      *slog.Logger
}

// NewService constructs a new account [Service] with its dependencies.
func NewService(users UserRepository, resetTokens ResetTokenRepository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		users:       users,
		resetTokens: resetTokens,
		tokens:      tokens,
		logger:      logger,
	}
}

// # Registration Flow

// SignUpInput holds the data required to register a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// Session is the result of a successful sign-up or sign-in: the account's
// public fields plus a freshly minted token.
type Session struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// SignUp validates, hashes, and persists a brand new user account, then
// issues its first session token.
//
// The duplicate pre-check keeps the original product's behavior (and its
// friendly error) for the common case; the unique constraint on the email
// column catches the race the pre-check cannot, and maps to the same
// client-facing duplicate error.
func (service *Service) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {

	// Email uniqueness pre-check. Only a clean "not found" may proceed.
	_, err := service.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict(msgDuplicateEmail)
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.Internal(msgSignUpFailed, err)
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU load during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(msgSignUpFailed, err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.users.Create(ctx, user); err != nil {
		if errors.Is(err, dberr.ErrUniqueViolation) {
			return nil, apperr.Conflict(msgDuplicateEmail)
		}
		return nil, apperr.Internal(msgSignUpFailed, err)
	}

	// No token is issued unless the row was persisted.
	token, err := service.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(msgSignUpFailed, err)
	}

	return &Session{User: user.Public(), Token: token}, nil
}

// # Authentication Flow

// SignIn validates credentials and issues a session token.
//
// An unknown email and a wrong password both return the same generic
// credentials error to prevent account enumeration.
func (service *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.Unauthorized(msgInvalidCredentials)
		}
		return nil, apperr.Internal(msgSignInFailed, err)
	}

	// bcrypt comparison is constant-time.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := service.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(msgSignInFailed, err)
	}

	return &Session{User: user.Public(), Token: token}, nil
}

// Me returns the public profile of the authenticated caller.
func (service *Service) Me(ctx context.Context, userID string) (PublicUser, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return PublicUser{}, apperr.NotFound(msgUserNotFound)
		}
		return PublicUser{}, apperr.Internal(msgUserFetchFailed, err)
	}

	return user.Public(), nil
}

// # Password Recovery

// RequestPasswordReset initiates the forgot-password flow.
//
// It returns the raw reset token on success. An unknown email succeeds
// silently with an empty token so responses cannot be used for enumeration.
func (service *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", nil
		}
		return "", apperr.Internal(msgResetFailed, err)
	}

	token, err := sec.GenerateSecureToken(constants.ResetTokenLength)
	if err != nil {
		return "", apperr.Internal(msgResetFailed, err)
	}

	// Only the hash is stored; the raw token exists solely in the reset link.
	if err := service.resetTokens.Set(ctx, sec.HashToken(token), user.ID, constants.ResetTokenTTL); err != nil {
		return "", apperr.Internal(msgResetFailed, err)
	}

	// TODO: deliver the reset link by email once the mailer service lands.
	service.logger.InfoContext(ctx, "password_reset_requested", slog.String("user_id", user.ID))

	return token, nil
}

// ResetPassword completes the forgot-password flow.
//
// The presented token is hashed, resolved to a user, and consumed. A token
// that is absent, expired, or already used yields the same invalid-token
// error.
func (service *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	tokenHash := sec.HashToken(token)

	userID, err := service.resetTokens.Get(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.Unauthorized(msgResetTokenInvalid)
		}
		return apperr.Internal(msgResetFailed, err)
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(msgResetFailed, err)
	}

	if err := service.users.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return apperr.Internal(msgResetFailed, fmt.Errorf("reset_password_update: %w", err))
	}

	// Best effort: an undeleted hash expires on its own TTL.
	_ = service.resetTokens.Delete(ctx, tokenHash)

	return nil
}
