package request

type CreateInvestmentRequest struct {
	InvestorID     string   `json:"investorId"`
	Amount         float64  `json:"amount"`
	InvestedDate   string   `json:"investedDate"`
	PromisedReturn *float64 `json:"promisedReturn,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}
