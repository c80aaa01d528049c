package constants

// ContextKeyRequestID is the gin context key holding the request id
const ContextKeyRequestID = "RequestID"

// Multipart file fields per endpoint
const (
	FormFieldScreenshot = "screenshot"
	FormFieldImage      = "image"
)

// Fallback attachment names when the client sends none usable
const (
	DefaultScreenshotName = "screenshot.jpg"
	DefaultImageName      = "image.jpg"
)

// Endpoint names written to the diagnostic record
const (
	EndpointBooking = "booking"
	EndpointContact = "contact"
)
