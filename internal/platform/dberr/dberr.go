// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// domain-level outcomes.
//
// Repositories run every failed query through [Wrap] so that services only
// ever see the two sentinels they care about (row missing, unique key taken)
// or an opaque wrapped error for everything else.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = errors.New("dberr: row not found")

	// ErrUniqueViolation is returned when an insert or update breaks a
	// unique constraint (SQLSTATE 23505). The account service maps this to
	// the duplicate-email response, which closes the sign-up race window:
	// even if two concurrent registrations pass the pre-check, only one
	// insert can succeed.
	ErrUniqueViolation = errors.New("dberr: unique constraint violation")
)

// Wrap classifies a database error into one of the package sentinels, or
// wraps it with the failing action for server-side logs. SQL details never
// reach clients; services translate sentinels into user-facing errors.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUniqueViolation
	}

	return fmt.Errorf("%s: %w", action, err)
}
