package request

type CreateExpenseRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

type UpdateExpenseRequest struct {
	Amount *float64 `json:"amount,omitempty"`
	Date   *string  `json:"date,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}
