package reservation

import "errors"

// Error kinds. Every error returned by Service wraps exactly one of them.
var (
	ErrValidation   = errors.New("invalid reservation")
	ErrStorage      = errors.New("storage failure")
	ErrNotification = errors.New("notification failure")
	ErrNotFound     = errors.New("reservation not found")
)
