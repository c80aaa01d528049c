package common

// APIResponse is the standard wrapper for form endpoint responses
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Standard client-facing messages
const (
	MsgValidationError     = "Validation Error"
	MsgInternalServerError = "Internal Server Error"
	MsgInvalidFileType     = "Invalid file type. Only JPG, PNG, and WebP images are allowed."
	MsgFileTooLargeFormat  = "File too large. Maximum size is %dMB."
	MsgInvalidForm         = "Invalid form data"
	MsgTooManyRequests     = "Too many requests, please try again later."
	MsgBookingProcessed    = "Booking processed successfully"
	MsgMessageSent         = "Message sent successfully"
)

// NewSuccessResponse creates a successful response with a message
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates an error response with a single message
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// NewValidationErrorResponse lists every violated constraint
func NewValidationErrorResponse(errors []string) APIResponse {
	return APIResponse{
		Success: false,
		Message: MsgValidationError,
		Errors:  errors,
	}
}
