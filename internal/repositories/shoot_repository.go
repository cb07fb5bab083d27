package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShootRepository defines the interface for shoot-related database
// operations. The expense ledger is a child collection persisted by full
// replacement: ReplaceExpenses rewrites every line in one transaction so
// a save is all-or-nothing.
type ShootRepository interface {
	CreateShoot(executor SQLExecutor, shoot *models.Shoot) (string, error)
	GetShootByID(id string) (*models.Shoot, error)
	GetShoots(filters models.ShootFilters) ([]models.Shoot, int, error)
	UpdateShoot(executor SQLExecutor, shoot *models.Shoot) error
	UpdateShootStatus(executor SQLExecutor, id, status string) error
	ReplaceExpenses(executor SQLExecutor, shootID string, expenses []models.ExpenseLine) error
	DeleteShoot(executor SQLExecutor, id string) error
}

type shootRepository struct {
	db *sql.DB
}

// NewShootRepository creates a new instance of ShootRepository.
func NewShootRepository(db *sql.DB) ShootRepository {
	return &shootRepository{db: db}
}

const shootColumns = `id, title, campaign_details, shoot_type, page, shoot_date,
	location_type, location_name, talent_ids, crew_ids, budget, status, product_details,
	created_at, updated_at`

func scanShootRow(row scanner, isList bool) (*models.Shoot, int, error) {
	var s models.Shoot
	var talentIDs, crewIDs pq.StringArray
	var totalCount int

	scanDest := []interface{}{
		&s.ID, &s.Title, &s.CampaignDetails, &s.Type, &s.Page, &s.Date,
		&s.LocationType, &s.LocationName, &talentIDs, &crewIDs, &s.Budget, &s.Status, &s.ProductDetails,
		&s.CreatedAt, &s.UpdatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning shoot: %v", ErrDatabaseError, err)
	}
	s.TalentIDs = []string(talentIDs)
	s.CrewIDs = []string(crewIDs)
	s.Expenses = []models.ExpenseLine{}
	return &s, totalCount, nil
}

// CreateShoot inserts a new shoot with an empty ledger.
func (r *shootRepository) CreateShoot(executor SQLExecutor, shoot *models.Shoot) (string, error) {
	query := `INSERT INTO shoots (` + shootColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	if shoot.ID == "" {
		shoot.ID = uuid.NewString()
	}
	if shoot.Status == "" {
		shoot.Status = models.ShootStatusPlanning
	}
	currentTime := time.Now()
	shoot.CreatedAt = currentTime
	shoot.UpdatedAt = currentTime
	if shoot.TalentIDs == nil {
		shoot.TalentIDs = []string{}
	}
	if shoot.CrewIDs == nil {
		shoot.CrewIDs = []string{}
	}

	_, err := executor.Exec(query,
		shoot.ID, shoot.Title, shoot.CampaignDetails, shoot.Type, shoot.Page, shoot.Date,
		shoot.LocationType, shoot.LocationName, pq.Array(shoot.TalentIDs), pq.Array(shoot.CrewIDs),
		shoot.Budget, shoot.Status, shoot.ProductDetails, shoot.CreatedAt, shoot.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating shoot: %v", ErrDatabaseError, err)
	}
	return shoot.ID, nil
}

// GetShootByID retrieves a shoot together with its expense ledger.
func (r *shootRepository) GetShootByID(id string) (*models.Shoot, error) {
	query := `SELECT ` + shootColumns + ` FROM shoots WHERE id = $1`
	shoot, _, err := scanShootRow(r.db.QueryRow(query, id), false)
	if err != nil {
		return nil, err
	}
	expensesByShoot, err := r.loadExpenses([]string{id})
	if err != nil {
		return nil, err
	}
	if lines, ok := expensesByShoot[id]; ok {
		shoot.Expenses = lines
	}
	return shoot, nil
}

// GetShoots retrieves shoots with pagination and filters, ledgers included.
func (r *shootRepository) GetShoots(filters models.ShootFilters) ([]models.Shoot, int, error) {
	shoots := []models.Shoot{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + shootColumns + `, COUNT(*) OVER() as total_count FROM shoots`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Page != nil && *filters.Page != "" {
		conditions = append(conditions, fmt.Sprintf("page = $%d", argCount))
		args = append(args, *filters.Page)
		argCount++
	}
	if filters.DateFrom != nil && *filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("shoot_date >= $%d", argCount))
		args = append(args, *filters.DateFrom)
		argCount++
	}
	if filters.DateTo != nil && *filters.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("shoot_date <= $%d", argCount))
		args = append(args, *filters.DateTo)
		argCount++
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR location_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY shoot_date DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.PageSize)
		argCount++
		if filters.PageNum > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, (filters.PageNum-1)*filters.PageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying shoots: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	shootIDs := []string{}
	for rows.Next() {
		shoot, scannedTotal, scanErr := scanShootRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		shoots = append(shoots, *shoot)
		shootIDs = append(shootIDs, shoot.ID)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating shoot rows: %v", ErrDatabaseError, err)
	}
	if len(shoots) == 0 {
		return shoots, 0, nil
	}

	expensesByShoot, err := r.loadExpenses(shootIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range shoots {
		if lines, ok := expensesByShoot[shoots[i].ID]; ok {
			shoots[i].Expenses = lines
		}
	}
	return shoots, totalCount, nil
}

// loadExpenses fetches the ledgers for a set of shoots in one pass,
// preserving each ledger's stored position order.
func (r *shootRepository) loadExpenses(shootIDs []string) (map[string][]models.ExpenseLine, error) {
	query := `SELECT shoot_id, id, description, category, expense_date, estimated_amount,
	            actual_amount, payment_status, paid_amount, remark, attachments, linked_id
	          FROM shoot_expenses WHERE shoot_id = ANY($1) ORDER BY shoot_id, position ASC`

	rows, err := r.db.Query(query, pq.Array(shootIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: querying shoot expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	result := map[string][]models.ExpenseLine{}
	for rows.Next() {
		var shootID string
		var line models.ExpenseLine
		var attachments pq.StringArray
		if err := rows.Scan(
			&shootID, &line.ID, &line.Description, &line.Category, &line.Date, &line.EstimatedAmount,
			&line.ActualAmount, &line.PaymentStatus, &line.PaidAmount, &line.Remark, &attachments, &line.LinkedID,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning expense line: %v", ErrDatabaseError, err)
		}
		line.Attachments = []string(attachments)
		result[shootID] = append(result[shootID], line)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return result, nil
}

// UpdateShoot updates a shoot's own fields. The ledger is saved
// separately via ReplaceExpenses.
func (r *shootRepository) UpdateShoot(executor SQLExecutor, shoot *models.Shoot) error {
	query := `UPDATE shoots SET
	            title = $2, campaign_details = $3, shoot_type = $4, page = $5, shoot_date = $6,
	            location_type = $7, location_name = $8, talent_ids = $9, crew_ids = $10,
	            budget = $11, status = $12, product_details = $13, updated_at = $14
	          WHERE id = $1`

	shoot.UpdatedAt = time.Now()
	if shoot.TalentIDs == nil {
		shoot.TalentIDs = []string{}
	}
	if shoot.CrewIDs == nil {
		shoot.CrewIDs = []string{}
	}

	result, err := executor.Exec(query,
		shoot.ID, shoot.Title, shoot.CampaignDetails, shoot.Type, shoot.Page, shoot.Date,
		shoot.LocationType, shoot.LocationName, pq.Array(shoot.TalentIDs), pq.Array(shoot.CrewIDs),
		shoot.Budget, shoot.Status, shoot.ProductDetails, shoot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: updating shoot %s: %v", ErrDatabaseError, shoot.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateShootStatus sets only the status column.
func (r *shootRepository) UpdateShootStatus(executor SQLExecutor, id, status string) error {
	result, err := executor.Exec(`UPDATE shoots SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("%w: updating shoot %s status: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceExpenses rewrites the shoot's full ledger. Callers run it inside
// a transaction together with UpdateShoot so the save is atomic.
func (r *shootRepository) ReplaceExpenses(executor SQLExecutor, shootID string, expenses []models.ExpenseLine) error {
	if _, err := executor.Exec(`DELETE FROM shoot_expenses WHERE shoot_id = $1`, shootID); err != nil {
		return fmt.Errorf("%w: clearing expenses for shoot %s: %v", ErrDatabaseError, shootID, err)
	}

	query := `INSERT INTO shoot_expenses
	            (id, shoot_id, position, description, category, expense_date, estimated_amount,
	             actual_amount, payment_status, paid_amount, remark, attachments, linked_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for i, line := range expenses {
		if line.ID == "" {
			line.ID = uuid.NewString()
		}
		if line.Attachments == nil {
			line.Attachments = []string{}
		}
		if _, err := executor.Exec(query,
			line.ID, shootID, i, line.Description, line.Category, line.Date, line.EstimatedAmount,
			line.ActualAmount, line.PaymentStatus, line.PaidAmount, line.Remark, pq.Array(line.Attachments), line.LinkedID,
		); err != nil {
			return fmt.Errorf("%w: inserting expense line for shoot %s: %v", ErrDatabaseError, shootID, err)
		}
	}
	return nil
}

// DeleteShoot removes a shoot and its ledger. Issued documents that
// reference the shoot are kept.
func (r *shootRepository) DeleteShoot(executor SQLExecutor, id string) error {
	if _, err := executor.Exec(`DELETE FROM shoot_expenses WHERE shoot_id = $1`, id); err != nil {
		return fmt.Errorf("%w: deleting expenses for shoot %s: %v", ErrDatabaseError, id, err)
	}
	result, err := executor.Exec(`DELETE FROM shoots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting shoot %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
