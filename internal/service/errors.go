package service

import "errors"

// Sentinel errors for service layer
var (
	ErrValidation         = errors.New("validation error")
	ErrAttachmentRejected = errors.New("attachment type not allowed")
	ErrAttachmentTooLarge = errors.New("attachment too large")
	ErrTransport          = errors.New("mail transport error")
)
