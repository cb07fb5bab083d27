package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FirmRepository defines the interface for firm-related database
// operations, including the brand-page mapping used to pick the issuing
// firm for a shoot.
type FirmRepository interface {
	CreateFirm(executor SQLExecutor, firm *models.Firm) (string, error)
	GetFirmByID(id string) (*models.Firm, error)
	GetFirms() ([]models.Firm, error)
	GetFirmByPage(page string) (*models.Firm, error)
	UpdateFirm(executor SQLExecutor, firm *models.Firm) error
	DeleteFirm(executor SQLExecutor, id string) error
	GetPageMappings() ([]models.FirmPageMapping, error)
	SetPageMapping(executor SQLExecutor, mapping models.FirmPageMapping) error
}

type firmRepository struct {
	db *sql.DB
}

// NewFirmRepository creates a new instance of FirmRepository.
func NewFirmRepository(db *sql.DB) FirmRepository {
	return &firmRepository{db: db}
}

const firmColumns = `id, name, store_name, address, phone, email, logo_url, gstin, created_at, updated_at`

func scanFirmRow(row scanner) (*models.Firm, error) {
	var f models.Firm
	err := row.Scan(&f.ID, &f.Name, &f.StoreName, &f.Address, &f.Phone, &f.Email, &f.LogoURL, &f.GSTIN,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning firm: %v", ErrDatabaseError, err)
	}
	return &f, nil
}

// CreateFirm inserts a new firm.
func (r *firmRepository) CreateFirm(executor SQLExecutor, firm *models.Firm) (string, error) {
	query := `INSERT INTO firms (` + firmColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if firm.ID == "" {
		firm.ID = uuid.NewString()
	}
	currentTime := time.Now()
	firm.CreatedAt = currentTime
	firm.UpdatedAt = currentTime

	_, err := executor.Exec(query,
		firm.ID, firm.Name, firm.StoreName, firm.Address, firm.Phone, firm.Email, firm.LogoURL, firm.GSTIN,
		firm.CreatedAt, firm.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", fmt.Errorf("%w: firm name '%s' already exists", ErrDuplicateKey, firm.Name)
		}
		return "", fmt.Errorf("%w: creating firm: %v", ErrDatabaseError, err)
	}
	return firm.ID, nil
}

// GetFirmByID retrieves a single firm by its ID.
func (r *firmRepository) GetFirmByID(id string) (*models.Firm, error) {
	query := `SELECT ` + firmColumns + ` FROM firms WHERE id = $1`
	return scanFirmRow(r.db.QueryRow(query, id))
}

// GetFirms retrieves all firms. The roster is small enough that the
// listing is not paginated.
func (r *firmRepository) GetFirms() ([]models.Firm, error) {
	firms := []models.Firm{}
	query := `SELECT ` + firmColumns + ` FROM firms ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying firms: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		firm, scanErr := scanFirmRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		firms = append(firms, *firm)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating firm rows: %v", ErrDatabaseError, err)
	}
	return firms, nil
}

// GetFirmByPage resolves a shoot's brand page to its issuing firm.
func (r *firmRepository) GetFirmByPage(page string) (*models.Firm, error) {
	query := `SELECT f.id, f.name, f.store_name, f.address, f.phone, f.email, f.logo_url, f.gstin,
	            f.created_at, f.updated_at
	          FROM firms f JOIN firm_page_mappings m ON m.firm_id = f.id
	          WHERE m.page = $1`
	return scanFirmRow(r.db.QueryRow(query, page))
}

// UpdateFirm updates an existing firm's details.
func (r *firmRepository) UpdateFirm(executor SQLExecutor, firm *models.Firm) error {
	query := `UPDATE firms SET
	            name = $2, store_name = $3, address = $4, phone = $5, email = $6, logo_url = $7,
	            gstin = $8, updated_at = $9
	          WHERE id = $1`

	firm.UpdatedAt = time.Now()
	result, err := executor.Exec(query,
		firm.ID, firm.Name, firm.StoreName, firm.Address, firm.Phone, firm.Email, firm.LogoURL,
		firm.GSTIN, firm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: updating firm %s: %v", ErrDatabaseError, firm.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFirm removes a firm together with its page mappings. Documents
// already issued under the firm are kept.
func (r *firmRepository) DeleteFirm(executor SQLExecutor, id string) error {
	if _, err := executor.Exec(`DELETE FROM firm_page_mappings WHERE firm_id = $1`, id); err != nil {
		return fmt.Errorf("%w: deleting page mappings for firm %s: %v", ErrDatabaseError, id, err)
	}
	result, err := executor.Exec(`DELETE FROM firms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting firm %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPageMappings retrieves the full page-to-firm mapping.
func (r *firmRepository) GetPageMappings() ([]models.FirmPageMapping, error) {
	mappings := []models.FirmPageMapping{}
	rows, err := r.db.Query(`SELECT page, firm_id FROM firm_page_mappings ORDER BY page ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying page mappings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.FirmPageMapping
		if err := rows.Scan(&m.Page, &m.FirmID); err != nil {
			return nil, fmt.Errorf("%w: scanning page mapping: %v", ErrDatabaseError, err)
		}
		mappings = append(mappings, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating page mapping rows: %v", ErrDatabaseError, err)
	}
	return mappings, nil
}

// SetPageMapping points a brand page at a firm, replacing any previous
// assignment for the page.
func (r *firmRepository) SetPageMapping(executor SQLExecutor, mapping models.FirmPageMapping) error {
	query := `INSERT INTO firm_page_mappings (page, firm_id) VALUES ($1, $2)
	          ON CONFLICT (page) DO UPDATE SET firm_id = EXCLUDED.firm_id`
	if _, err := executor.Exec(query, mapping.Page, mapping.FirmID); err != nil {
		return fmt.Errorf("%w: setting page mapping for '%s': %v", ErrDatabaseError, mapping.Page, err)
	}
	return nil
}
