package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// CrewRepository defines the interface for crew-related database operations.
type CrewRepository interface {
	CreateCrewMember(executor SQLExecutor, member *models.CrewMember) (string, error)
	GetCrewMemberByID(id string) (*models.CrewMember, error)
	GetCrewMembers(page, pageSize int, role *string, searchTerm *string) ([]models.CrewMember, int, error)
	GetCrewMembersByIDs(ids []string) ([]models.CrewMember, error)
	UpdateCrewMember(executor SQLExecutor, member *models.CrewMember) error
	DeleteCrewMember(executor SQLExecutor, id string) error
}

type crewRepository struct {
	db *sql.DB
}

// NewCrewRepository creates a new instance of CrewRepository.
func NewCrewRepository(db *sql.DB) CrewRepository {
	return &crewRepository{db: db}
}

const crewColumns = `id, name, phone_number, role, staff_type, rate,
	charge_indoor, charge_outdoor, charge_live, charge_custom,
	travel_charges, address, pan, gstin,
	bank_name, account_number, ifsc_code, branch_name, created_at, updated_at`

// scanCrewRow scans one crew row. The location charge card is optional:
// a row with all four charge columns NULL yields a nil Charges.
func scanCrewRow(row scanner, isList bool) (*models.CrewMember, int, error) {
	var m models.CrewMember
	var chargeIndoor, chargeOutdoor, chargeLive, chargeCustom sql.NullFloat64
	var bankName, accountNumber, ifscCode, branchName sql.NullString
	var totalCount int

	scanDest := []interface{}{
		&m.ID, &m.Name, &m.PhoneNumber, &m.Role, &m.StaffType, &m.Rate,
		&chargeIndoor, &chargeOutdoor, &chargeLive, &chargeCustom,
		&m.TravelCharges, &m.Address, &m.PAN, &m.GSTIN,
		&bankName, &accountNumber, &ifscCode, &branchName, &m.CreatedAt, &m.UpdatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning crew member: %v", ErrDatabaseError, err)
	}

	if chargeIndoor.Valid || chargeOutdoor.Valid || chargeLive.Valid || chargeCustom.Valid {
		m.Charges = &models.CrewCharges{
			Indoor:  chargeIndoor.Float64,
			Outdoor: chargeOutdoor.Float64,
			Live:    chargeLive.Float64,
			Custom:  chargeCustom.Float64,
		}
	}
	if bankName.Valid && bankName.String != "" {
		m.BankDetails = &models.BankDetails{
			BankName:      bankName.String,
			AccountNumber: accountNumber.String,
			IFSCCode:      ifscCode.String,
		}
		if branchName.Valid {
			m.BankDetails.BranchName = &branchName.String
		}
	}
	return &m, totalCount, nil
}

// chargeFields flattens the optional charge card into nullable columns.
func chargeFields(c *models.CrewCharges) (indoor, outdoor, live, custom interface{}) {
	if c == nil {
		return nil, nil, nil, nil
	}
	return c.Indoor, c.Outdoor, c.Live, c.Custom
}

// CreateCrewMember inserts a new crew member.
func (r *crewRepository) CreateCrewMember(executor SQLExecutor, member *models.CrewMember) (string, error) {
	query := `INSERT INTO crew_members (` + crewColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	currentTime := time.Now()
	member.CreatedAt = currentTime
	member.UpdatedAt = currentTime
	indoor, outdoor, live, custom := chargeFields(member.Charges)
	bankName, accountNumber, ifscCode, branchName := bankFields(member.BankDetails)

	_, err := executor.Exec(query,
		member.ID, member.Name, member.PhoneNumber, member.Role, member.StaffType, member.Rate,
		indoor, outdoor, live, custom,
		member.TravelCharges, member.Address, member.PAN, member.GSTIN,
		bankName, accountNumber, ifscCode, branchName, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return "", fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return "", fmt.Errorf("%w: creating crew member: %v", ErrDatabaseError, err)
	}
	return member.ID, nil
}

// GetCrewMemberByID retrieves a crew member by their ID.
func (r *crewRepository) GetCrewMemberByID(id string) (*models.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE id = $1`
	member, _, err := scanCrewRow(r.db.QueryRow(query, id), false)
	return member, err
}

// GetCrewMembers retrieves crew members with pagination, optionally
// filtered by role and a name search.
func (r *crewRepository) GetCrewMembers(page, pageSize int, role *string, searchTerm *string) ([]models.CrewMember, int, error) {
	crew := []models.CrewMember{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + crewColumns + `, COUNT(*) OVER() as total_count FROM crew_members`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if role != nil && *role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argCount))
		args = append(args, *role)
		argCount++
	}
	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argCount))
		args = append(args, "%"+*searchTerm+"%")
		argCount++
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

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
		return nil, 0, fmt.Errorf("%w: querying crew members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		member, scannedTotal, scanErr := scanCrewRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		crew = append(crew, *member)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating crew rows: %v", ErrDatabaseError, err)
	}
	if len(crew) == 0 {
		totalCount = 0
	}
	return crew, totalCount, nil
}

// GetCrewMembersByIDs retrieves the crew members whose ids are in the
// given set. Missing ids are silently skipped.
func (r *crewRepository) GetCrewMembersByIDs(ids []string) ([]models.CrewMember, error) {
	crew := []models.CrewMember{}
	if len(ids) == 0 {
		return crew, nil
	}
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE id = ANY($1)`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: querying crew members by ids: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		member, _, scanErr := scanCrewRow(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		crew = append(crew, *member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating crew rows: %v", ErrDatabaseError, err)
	}
	return crew, nil
}

// UpdateCrewMember updates an existing crew member.
func (r *crewRepository) UpdateCrewMember(executor SQLExecutor, member *models.CrewMember) error {
	query := `UPDATE crew_members SET
	            name = $2, phone_number = $3, role = $4, staff_type = $5, rate = $6,
	            charge_indoor = $7, charge_outdoor = $8, charge_live = $9, charge_custom = $10,
	            travel_charges = $11, address = $12, pan = $13, gstin = $14,
	            bank_name = $15, account_number = $16, ifsc_code = $17, branch_name = $18, updated_at = $19
	          WHERE id = $1`

	member.UpdatedAt = time.Now()
	indoor, outdoor, live, custom := chargeFields(member.Charges)
	bankName, accountNumber, ifscCode, branchName := bankFields(member.BankDetails)

	result, err := executor.Exec(query,
		member.ID, member.Name, member.PhoneNumber, member.Role, member.StaffType, member.Rate,
		indoor, outdoor, live, custom,
		member.TravelCharges, member.Address, member.PAN, member.GSTIN,
		bankName, accountNumber, ifscCode, branchName, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: updating crew member %s: %v", ErrDatabaseError, member.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCrewMember removes a crew member.
func (r *crewRepository) DeleteCrewMember(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM crew_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting crew member %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
