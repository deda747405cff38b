package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/apperrors"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/model"
)

// AgreementRepository provides data access methods for the agreement table.
type AgreementRepository struct {
	db *sql.DB
}

// NewAgreementRepository creates a new AgreementRepository with the provided database connection.
func NewAgreementRepository(db *sql.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

// CreateAgreement inserts a new agreement record. The (investor, version)
// unique constraint maps to ErrDuplicateAgreementVersion.
func (s *AgreementRepository) CreateAgreement(agreement model.AgreementRecord) (model.AgreementRecord, error) {
	query := `
		INSERT INTO agreement (id, investor_id, file_name, file_path, version)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		agreement.ID,
		agreement.InvestorID,
		agreement.FileName,
		agreement.FilePath,
		agreement.Version,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.AgreementRecord{}, apperrors.ErrDuplicateAgreementVersion
		}
		return model.AgreementRecord{}, fmt.Errorf("failed to insert agreement: %w", err)
	}

	return s.GetAgreementOnID(agreement.ID)
}

// GetAgreementOnID retrieves a single agreement by ID.
func (s *AgreementRepository) GetAgreementOnID(agreementID string) (model.AgreementRecord, error) {
	query := `
		SELECT id, investor_id, file_name, file_path, version, uploaded_at
		FROM agreement
		WHERE id = ?
	`

	agreement, err := scanAgreement(s.db.QueryRow(query, agreementID).Scan)
	if err == sql.ErrNoRows {
		return model.AgreementRecord{}, apperrors.ErrAgreementNotFound
	}
	if err != nil {
		return model.AgreementRecord{}, fmt.Errorf("failed to query agreement: %w", err)
	}

	return agreement, nil
}

// GetAgreementsOnInvestorID retrieves all agreements for an investor,
// highest version first.
func (s *AgreementRepository) GetAgreementsOnInvestorID(investorID string) ([]model.AgreementRecord, error) {
	query := `
		SELECT id, investor_id, file_name, file_path, version, uploaded_at
		FROM agreement
		WHERE investor_id = ?
		ORDER BY version DESC
	`

	rows, err := s.db.Query(query, investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreement table: %w", err)
	}
	defer rows.Close()

	agreements := []model.AgreementRecord{}

	for rows.Next() {
		agreement, err := scanAgreement(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agreement table results: %w", err)
		}
		agreements = append(agreements, agreement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agreement table: %w", err)
	}

	return agreements, nil
}

// GetAgreementsWithInvestor retrieves every agreement joined with the
// investor's display fields, newest upload first.
func (s *AgreementRepository) GetAgreementsWithInvestor() ([]model.AgreementWithInvestor, error) {
	query := `
		SELECT a.id, a.investor_id, a.file_name, a.file_path, a.version, a.uploaded_at,
		       i.full_name, i.client_id
		FROM agreement a
		JOIN investor i ON i.id = a.investor_id
		ORDER BY a.uploaded_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreement or investor table: %w", err)
	}
	defer rows.Close()

	agreements := []model.AgreementWithInvestor{}

	for rows.Next() {
		var a model.AgreementWithInvestor
		var uploadedAt string
		var clientID sql.NullString

		err := rows.Scan(
			&a.ID,
			&a.InvestorID,
			&a.FileName,
			&a.FilePath,
			&a.Version,
			&uploadedAt,
			&a.InvestorName,
			&clientID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agreement join results: %w", err)
		}

		a.InvestorClientID = clientID.String

		if a.UploadedAt, err = ParseTime(uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to parse uploaded_at: %w", err)
		}

		agreements = append(agreements, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agreement join: %w", err)
	}

	return agreements, nil
}

// GetLatestVersionOnInvestorID returns the highest stored agreement version
// for an investor, or 0 when none exist.
func (s *AgreementRepository) GetLatestVersionOnInvestorID(investorID string) (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM agreement WHERE investor_id = ?`

	var version int
	if err := s.db.QueryRow(query, investorID).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to query latest agreement version: %w", err)
	}

	return version, nil
}

// DeleteAgreement removes an agreement record.
func (s *AgreementRepository) DeleteAgreement(agreementID string) error {
	result, err := s.db.Exec(`DELETE FROM agreement WHERE id = ?`, agreementID)
	if err != nil {
		return fmt.Errorf("failed to delete agreement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAgreementNotFound
	}

	return nil
}

func scanAgreement(scan func(dest ...any) error) (model.AgreementRecord, error) {
	var agreement model.AgreementRecord
	var uploadedAt string

	err := scan(
		&agreement.ID,
		&agreement.InvestorID,
		&agreement.FileName,
		&agreement.FilePath,
		&agreement.Version,
		&uploadedAt,
	)
	if err != nil {
		return model.AgreementRecord{}, err
	}

	if agreement.UploadedAt, err = ParseTime(uploadedAt); err != nil {
		return model.AgreementRecord{}, fmt.Errorf("failed to parse uploaded_at: %w", err)
	}

	return agreement, nil
}
