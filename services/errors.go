package services

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrCategoryNotFound   = errors.New("menu category not found")
	ErrQrCodeNotFound     = errors.New("qr code not found")
	ErrOrderAlreadyPaid   = errors.New("order already paid")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operator-actionable: no enabled gateway row for the provider type.
	ErrNoActiveGateway = errors.New("no active payment gateway configured")

	// Required credential material absent from a gateway config blob.
	ErrMissingCredentials = errors.New("gateway credentials missing")
)

// ValidationError carries field-level detail for 400 responses. It is raised
// before any persistence happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
