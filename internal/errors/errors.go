// Package errors provides custom error types for the application.
package errors

import "errors"

// Request errors
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidBody   = errors.New("invalid request body")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Listing errors
var (
	// ErrListingNotFound covers both a missing listing and one owned by someone else.
	ErrListingNotFound = errors.New("listing not found or not owned by you")
)

// Messaging errors
var (
	ErrConversationNotFound = errors.New("conversation not found")
)

// Collaborator errors
var (
	ErrAIUnavailable       = errors.New("ai content generation is unavailable")
	ErrUnsupportedMedia    = errors.New("unsupported content type, must be image/jpeg, image/png or image/webp")
	ErrUploadsNotAvailable = errors.New("photo uploads are not configured")
)
