package model

import "time"

// AgreementRecord represents agreement file metadata. The file itself is
// stored outside this system; only name, path and version are recorded.
// Version is unique per investor.
type AgreementRecord struct {
	ID         string    `json:"id"`
	InvestorID string    `json:"investor_id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	Version    int       `json:"version"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AgreementWithInvestor is an agreement joined with investor display fields.
type AgreementWithInvestor struct {
	AgreementRecord
	InvestorName     string `json:"investor_name"`
	InvestorClientID string `json:"investor_client_id"`
}
