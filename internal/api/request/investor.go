package request

type CreateInvestorRequest struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	PromisedReturn float64 `json:"promisedReturn"`
	JoiningDate    string  `json:"joiningDate"`
}

type UpdateInvestorRequest struct {
	FullName       *string  `json:"fullName,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Address        *string  `json:"address,omitempty"`
	PromisedReturn *float64 `json:"promisedReturn,omitempty"`
}

type UpdateInvestorStatusRequest struct {
	Status             string  `json:"status"`
	WaitingPeriodStart *string `json:"waitingPeriodStart,omitempty"`
}
