package request

type CreateAgreementRequest struct {
	InvestorID string `json:"investorId"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
	// Version is optional; when omitted the next version for the investor
	// is assigned.
	Version *int `json:"version,omitempty"`
}
