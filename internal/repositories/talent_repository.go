package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error and array support
)

// TalentRepository defines the interface for talent-related database operations.
type TalentRepository interface {
	CreateTalent(executor SQLExecutor, talent *models.TalentMember) (string, error)
	GetTalentByID(id string) (*models.TalentMember, error)
	GetTalent(page, pageSize int, searchTerm *string) ([]models.TalentMember, int, error) // Talent, total count, error
	GetTalentByIDs(ids []string) ([]models.TalentMember, error)
	UpdateTalent(executor SQLExecutor, talent *models.TalentMember) error
	DeleteTalent(executor SQLExecutor, id string) error
}

type talentRepository struct {
	db *sql.DB
}

// NewTalentRepository creates a new instance of TalentRepository.
func NewTalentRepository(db *sql.DB) TalentRepository {
	return &talentRepository{db: db}
}

const talentColumns = `id, name, billing_name, phone_number, email, address, instagram,
	profile_types, connection_type, measurements,
	rate_indoor_reels, rate_outdoor_reels, rate_store_reels, rate_live, rate_advt,
	rate_youtube_influencer, rate_youtube_video, rate_youtube_shorts, rate_custom,
	travel_charges, remarks, join_date, pan, gstin,
	bank_name, account_number, ifsc_code, branch_name, created_at, updated_at`

// scanTalentRow scans one talent row, including the rate card and the
// optional bank details block.
func scanTalentRow(row scanner, isList bool) (*models.TalentMember, int, error) {
	var t models.TalentMember
	var profileTypes pq.StringArray
	var bankName, accountNumber, ifscCode, branchName sql.NullString
	var totalCount int

	scanDest := []interface{}{
		&t.ID, &t.Name, &t.BillingName, &t.PhoneNumber, &t.Email, &t.Address, &t.Instagram,
		&profileTypes, &t.ConnectionType, &t.Measurements,
		&t.Charges.IndoorReels, &t.Charges.OutdoorReels, &t.Charges.StoreReels, &t.Charges.Live, &t.Charges.Advt,
		&t.Charges.YouTubeInfluencer, &t.Charges.YouTubeVideo, &t.Charges.YouTubeShorts, &t.Charges.Custom,
		&t.TravelCharges, &t.Remarks, &t.JoinDate, &t.PAN, &t.GSTIN,
		&bankName, &accountNumber, &ifscCode, &branchName, &t.CreatedAt, &t.UpdatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning talent member: %v", ErrDatabaseError, err)
	}

	t.ProfileTypes = []string(profileTypes)
	if bankName.Valid && bankName.String != "" {
		t.BankDetails = &models.BankDetails{
			BankName:      bankName.String,
			AccountNumber: accountNumber.String,
			IFSCCode:      ifscCode.String,
		}
		if branchName.Valid {
			t.BankDetails.BranchName = &branchName.String
		}
	}
	return &t, totalCount, nil
}

// bankFields flattens an optional BankDetails block into nullable columns.
func bankFields(b *models.BankDetails) (bankName, accountNumber, ifscCode interface{}, branchName interface{}) {
	if b == nil {
		return nil, nil, nil, nil
	}
	if b.BranchName != nil {
		return b.BankName, b.AccountNumber, b.IFSCCode, *b.BranchName
	}
	return b.BankName, b.AccountNumber, b.IFSCCode, nil
}

// CreateTalent inserts a new talent member. A fresh UUID is assigned when
// the model carries none.
func (r *talentRepository) CreateTalent(executor SQLExecutor, talent *models.TalentMember) (string, error) {
	query := `INSERT INTO talent_members (` + talentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	                  $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`

	if talent.ID == "" {
		talent.ID = uuid.NewString()
	}
	currentTime := time.Now()
	talent.CreatedAt = currentTime
	talent.UpdatedAt = currentTime
	if talent.ProfileTypes == nil {
		talent.ProfileTypes = []string{}
	}
	bankName, accountNumber, ifscCode, branchName := bankFields(talent.BankDetails)

	_, err := executor.Exec(query,
		talent.ID, talent.Name, talent.BillingName, talent.PhoneNumber, talent.Email, talent.Address, talent.Instagram,
		pq.Array(talent.ProfileTypes), talent.ConnectionType, talent.Measurements,
		talent.Charges.IndoorReels, talent.Charges.OutdoorReels, talent.Charges.StoreReels, talent.Charges.Live, talent.Charges.Advt,
		talent.Charges.YouTubeInfluencer, talent.Charges.YouTubeVideo, talent.Charges.YouTubeShorts, talent.Charges.Custom,
		talent.TravelCharges, talent.Remarks, talent.JoinDate, talent.PAN, talent.GSTIN,
		bankName, accountNumber, ifscCode, branchName, talent.CreatedAt, talent.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return "", fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return "", fmt.Errorf("%w: creating talent member: %v", ErrDatabaseError, err)
	}
	return talent.ID, nil
}

// GetTalentByID retrieves a talent member by their ID.
func (r *talentRepository) GetTalentByID(id string) (*models.TalentMember, error) {
	query := `SELECT ` + talentColumns + ` FROM talent_members WHERE id = $1`
	talent, _, err := scanTalentRow(r.db.QueryRow(query, id), false)
	return talent, err
}

// GetTalent retrieves talent members with pagination and an optional
// name/instagram search.
func (r *talentRepository) GetTalent(page, pageSize int, searchTerm *string) ([]models.TalentMember, int, error) {
	talent := []models.TalentMember{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + talentColumns + `, COUNT(*) OVER() as total_count FROM talent_members`)

	var args []interface{}
	if searchTerm != nil && *searchTerm != "" {
		queryBuilder.WriteString(" WHERE name ILIKE $1 OR COALESCE(instagram, '') ILIKE $1")
		args = append(args, "%"+*searchTerm+"%")
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

	argCount := len(args) + 1
	if pageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, pageSize)
		argCount++
		if page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, (page-1)*pageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying talent members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		member, scannedTotal, scanErr := scanTalentRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		talent = append(talent, *member)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating talent rows: %v", ErrDatabaseError, err)
	}
	if len(talent) == 0 {
		totalCount = 0
	}
	return talent, totalCount, nil
}

// GetTalentByIDs retrieves the talent members whose ids are in the given
// set. Missing ids are silently skipped; the synchronizer treats them as
// unresolvable roster entries.
func (r *talentRepository) GetTalentByIDs(ids []string) ([]models.TalentMember, error) {
	talent := []models.TalentMember{}
	if len(ids) == 0 {
		return talent, nil
	}
	query := `SELECT ` + talentColumns + ` FROM talent_members WHERE id = ANY($1)`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: querying talent members by ids: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		member, _, scanErr := scanTalentRow(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		talent = append(talent, *member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating talent rows: %v", ErrDatabaseError, err)
	}
	return talent, nil
}

// UpdateTalent updates an existing talent member.
func (r *talentRepository) UpdateTalent(executor SQLExecutor, talent *models.TalentMember) error {
	query := `UPDATE talent_members SET
	            name = $2, billing_name = $3, phone_number = $4, email = $5, address = $6, instagram = $7,
	            profile_types = $8, connection_type = $9, measurements = $10,
	            rate_indoor_reels = $11, rate_outdoor_reels = $12, rate_store_reels = $13, rate_live = $14, rate_advt = $15,
	            rate_youtube_influencer = $16, rate_youtube_video = $17, rate_youtube_shorts = $18, rate_custom = $19,
	            travel_charges = $20, remarks = $21, join_date = $22, pan = $23, gstin = $24,
	            bank_name = $25, account_number = $26, ifsc_code = $27, branch_name = $28, updated_at = $29
	          WHERE id = $1`

	talent.UpdatedAt = time.Now()
	if talent.ProfileTypes == nil {
		talent.ProfileTypes = []string{}
	}
	bankName, accountNumber, ifscCode, branchName := bankFields(talent.BankDetails)

	result, err := executor.Exec(query,
		talent.ID, talent.Name, talent.BillingName, talent.PhoneNumber, talent.Email, talent.Address, talent.Instagram,
		pq.Array(talent.ProfileTypes), talent.ConnectionType, talent.Measurements,
		talent.Charges.IndoorReels, talent.Charges.OutdoorReels, talent.Charges.StoreReels, talent.Charges.Live, talent.Charges.Advt,
		talent.Charges.YouTubeInfluencer, talent.Charges.YouTubeVideo, talent.Charges.YouTubeShorts, talent.Charges.Custom,
		talent.TravelCharges, talent.Remarks, talent.JoinDate, talent.PAN, talent.GSTIN,
		bankName, accountNumber, ifscCode, branchName, talent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: updating talent member %s: %v", ErrDatabaseError, talent.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTalent removes a talent member. Issued documents keep their
// frozen recipient name, so history is unaffected.
func (r *talentRepository) DeleteTalent(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM talent_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting talent member %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
