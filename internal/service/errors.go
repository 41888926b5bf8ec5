package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them
// (or none, for internal failures), so transports can map them to a status.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("access denied")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("bad request")
	ErrUpstreamFailure    = errors.New("upstream failure")
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)
	ErrSessionRevoked          = fmt.Errorf("%w: session was revoked", ErrUnauthorized)

	ErrAdminSeedingFailed    = errors.New("admin seeding failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoFileUploaded       = fmt.Errorf("%w: no file uploaded", ErrBadRequest)
	ErrImageTooLarge        = errors.New("image is too large")
	ErrUnsupportedImageType = errors.New("file is not an image")
)
