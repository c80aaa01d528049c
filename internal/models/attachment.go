package models

// Attachment is an uploaded file that passed content inspection. It lives
// only for the duration of one request.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// PaymentConfig is the payee shown by the frontend payment step
type PaymentConfig struct {
	UPIID        string
	MerchantName string
}
