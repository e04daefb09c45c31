package domain

import "errors"

// Authentication and authorization.
var (
	ErrNotAuthenticated    = errors.New("authentication required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("user account is disabled")
	ErrForbidden           = errors.New("access forbidden")
	ErrRoleChangeForbidden = errors.New("cannot change own role")
)

// Not found. Post lookups deliberately return ErrPostNotFound for unpublished
// posts the requester may not see, so hidden content is indistinguishable
// from absent content.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")
)

// Validation.
var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrPasswordMismatch  = errors.New("passwords don't match")
	ErrInvalidRole       = errors.New("invalid role")
	ErrSelfDeactivation  = errors.New("cannot deactivate own account")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
