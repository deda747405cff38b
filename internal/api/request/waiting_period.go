package request

type InitializeReturnRequest struct {
	InvestorID string  `json:"investorId"`
	Amount     float64 `json:"amount"`
	// InitializedDate is optional; when omitted the 60-day window starts now.
	InitializedDate string `json:"initializedDate,omitempty"`
	Notes           string `json:"notes,omitempty"`
}
