package request

type CreateAccountRequest struct {
	Name             string  `json:"name"`
	Broker           string  `json:"broker,omitempty"`
	CapitalAllocated float64 `json:"capitalAllocated"`
	Status           string  `json:"status,omitempty"`
}

type UpdateAccountRequest struct {
	Name             *string  `json:"name,omitempty"`
	Broker           *string  `json:"broker,omitempty"`
	CapitalAllocated *float64 `json:"capitalAllocated,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

type CreatePnLRequest struct {
	AccountID   string  `json:"accountId"`
	Date        string  `json:"date"`
	IndexName   string  `json:"indexName"`
	PnLAmount   float64 `json:"pnlAmount"`
	CapitalUsed float64 `json:"capitalUsed,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type UpdatePnLRequest struct {
	Date        *string  `json:"date,omitempty"`
	IndexName   *string  `json:"indexName,omitempty"`
	PnLAmount   *float64 `json:"pnlAmount,omitempty"`
	CapitalUsed *float64 `json:"capitalUsed,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}
