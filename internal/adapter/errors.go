package adapter

import "errors"

var (
	ErrImageHostNotConfigured = errors.New("image host is not configured")
	ErrImageHostRejected      = errors.New("image host rejected the upload")
	ErrImageHostUnavailable   = errors.New("image host is unavailable")
)
