package request

type CreateReturnRequest struct {
	InvestorID    string  `json:"investorId"`
	Month         string  `json:"month"`
	ReturnPercent float64 `json:"returnPercent"`
}

type UpdateReturnStatusRequest struct {
	Status string `json:"status"`
}
