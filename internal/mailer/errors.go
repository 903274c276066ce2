package mailer

import "codeberg.org/mutker/switchhealth/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig = errors.ErrorCode("mailer_invalid_config")

	// Delivery errors
	ErrComposeFailed  = errors.ErrorCode("mailer_compose_failed")
	ErrDeliveryFailed = errors.ErrorCode("mailer_delivery_failed")
)
