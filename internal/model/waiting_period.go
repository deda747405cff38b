package model

import "time"

// WaitingPeriodEntry represents a capital portion entering return.
//
// An entry is matured (capital has left the "still invested" bucket) when
// Delivered is set by manual override, or when 60 days have elapsed since
// InitializedDate. The predicate lives in the service layer and is the only
// place that arithmetic exists.
type WaitingPeriodEntry struct {
	ID              string     `json:"id"`
	InvestorID      string     `json:"investor_id"`
	Amount          float64    `json:"amount"`
	InitializedDate time.Time  `json:"initialized_date"`
	Delivered       bool       `json:"delivered"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// WaitingPeriodClassification partitions entries into pending and delivered
// groups. Every entry of the input appears in exactly one of the two.
type WaitingPeriodClassification struct {
	Pending   []WaitingPeriodEntry `json:"pending"`
	Delivered []WaitingPeriodEntry `json:"delivered"`
}
