package services

import (
	"errors"
	"time"
)

var (
	// Report creation
	ErrTargetNotFound = errors.New("target not found")
	ErrSelfReport     = errors.New("cannot report your own content")

	// Report lifecycle
	ErrReportNotFound        = errors.New("report not found")
	ErrReportAlreadyResolved = errors.New("report already resolved or dismissed")

	// Users
	ErrUserNotFound    = errors.New("user not found")
	ErrCannotLockAdmin = errors.New("cannot lock an admin account")

	// Auth
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrAccountLocked      = errors.New("account is locked")
)

// AccountLockedError carries the ban details for the login response.
// errors.Is(err, ErrAccountLocked) still matches.
type AccountLockedError struct {
	Reason    *string
	ExpiresAt *time.Time
}

func (e *AccountLockedError) Error() string { return ErrAccountLocked.Error() }

func (e *AccountLockedError) Is(target error) bool { return target == ErrAccountLocked }
