package payment

// PaymentConfigResponse is served to the frontend payment step
type PaymentConfigResponse struct {
	UPIID        string `json:"upiId"`
	MerchantName string `json:"merchantName"`
}
