package session

import "codeberg.org/mutker/switchhealth/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig      = errors.ErrorCode("session_invalid_config")
	ErrMissingCredentials = errors.ErrorCode("session_missing_credentials")

	// Connection errors
	ErrDialFailed  = errors.ErrorCode("session_dial_failed")
	ErrCloseFailed = errors.ErrorCode("session_close_failed")

	// Collection errors
	ErrCollectCanceled = errors.ErrorCode("session_collect_canceled")
)
