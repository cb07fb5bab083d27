package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studio_ops_backend/internal/finance"
	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Shoot ---
var (
	ErrShootNotFound      = errors.New("shoot not found")
	ErrShootValidation    = errors.New("shoot data validation error")
	ErrInvalidShootStatus = errors.New("invalid shoot status")
)

// --- Shoot DTOs ---
type CreateShootRequest struct {
	Title           string               `json:"title" binding:"required"`
	CampaignDetails *string              `json:"campaign_details"`
	Type            string               `json:"type" binding:"required"`
	Page            *string              `json:"page"`
	Date            string               `json:"date" binding:"required"`
	LocationType    string               `json:"location_type" binding:"required"`
	LocationName    string               `json:"location_name"`
	TalentIDs       []string             `json:"talent_ids"`
	CrewIDs         []string             `json:"crew_ids"`
	Expenses        []models.ExpenseLine `json:"expenses"`
	Budget          float64              `json:"budget"`
	Status          string               `json:"status"`
	ProductDetails  *string              `json:"product_details"`
}

type UpdateShootRequest = CreateShootRequest

type UpdateShootStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- ShootService Interface ---
//
// Every write that touches the roster or the ledger runs the financial
// synchronizer before persisting, so stored ledgers always reflect the
// current roster.
type ShootService interface {
	CreateShoot(req CreateShootRequest) (*models.Shoot, error)
	GetShootByID(id string) (*models.Shoot, error)
	GetShoots(filters models.ShootFilters) ([]models.Shoot, int, error)
	UpdateShoot(id string, req UpdateShootRequest) (*models.Shoot, error)
	UpdateShootStatus(id string, req UpdateShootStatusRequest) (*models.Shoot, error)
	SyncFinancials(id string) (*models.Shoot, error)
	DeleteShoot(id string) error
}

// --- shootService Implementation ---
type shootService struct {
	shootRepo  repositories.ShootRepository
	talentRepo repositories.TalentRepository
	crewRepo   repositories.CrewRepository
	db         *sql.DB // For managing transactions
}

// NewShootService creates a new instance of ShootService.
func NewShootService(
	sr repositories.ShootRepository,
	tr repositories.TalentRepository,
	cr repositories.CrewRepository,
	db *sql.DB,
) ShootService {
	return &shootService{
		shootRepo:  sr,
		talentRepo: tr,
		crewRepo:   cr,
		db:         db,
	}
}

func isValidShootType(shootType string) bool {
	for _, t := range models.ShootTypes {
		if t == shootType {
			return true
		}
	}
	return false
}

func isValidShootStatus(status string) bool {
	for _, s := range models.ShootStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func validateShootData(req CreateShootRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrShootValidation)
	}
	if !isValidShootType(req.Type) {
		return fmt.Errorf("%w: unknown shoot type '%s'", ErrShootValidation, req.Type)
	}
	if req.LocationType != models.LocationStudio &&
		req.LocationType != models.LocationOutdoor &&
		req.LocationType != models.LocationStore {
		return fmt.Errorf("%w: unknown location type '%s'", ErrShootValidation, req.LocationType)
	}
	if req.Status != "" && !isValidShootStatus(req.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidShootStatus, req.Status)
	}
	if req.Budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative", ErrShootValidation)
	}
	return nil
}

func shootFromRequest(req CreateShootRequest) *models.Shoot {
	return &models.Shoot{
		Title:           strings.TrimSpace(req.Title),
		CampaignDetails: req.CampaignDetails,
		Type:            req.Type,
		Page:            req.Page,
		Date:            req.Date,
		LocationType:    req.LocationType,
		LocationName:    req.LocationName,
		TalentIDs:       req.TalentIDs,
		CrewIDs:         req.CrewIDs,
		Expenses:        req.Expenses,
		Budget:          req.Budget,
		Status:          req.Status,
		ProductDetails:  req.ProductDetails,
	}
}

// syncLedger resolves the shoot's roster and recomputes its expense
// ledger. Roster ids that no longer resolve are skipped by the
// synchronizer rather than treated as an error.
func (s *shootService) syncLedger(shoot *models.Shoot) ([]models.ExpenseLine, error) {
	talent, err := s.talentRepo.GetTalentByIDs(shoot.TalentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve talent roster: %w", err)
	}
	crew, err := s.crewRepo.GetCrewMembersByIDs(shoot.CrewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve crew roster: %w", err)
	}
	return finance.SyncExpenses(shoot, talent, crew), nil
}

func (s *shootService) CreateShoot(req CreateShootRequest) (*models.Shoot, error) {
	if err := validateShootData(req); err != nil {
		return nil, err
	}

	shoot := shootFromRequest(req)
	synced, err := s.syncLedger(shoot)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := s.shootRepo.CreateShoot(tx, shoot)
	if err != nil {
		return nil, fmt.Errorf("failed to create shoot: %w", err)
	}
	if err := s.shootRepo.ReplaceExpenses(tx, id, synced); err != nil {
		return nil, fmt.Errorf("failed to save expense ledger: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit shoot transaction: %w", err)
	}
	return s.shootRepo.GetShootByID(id)
}

func (s *shootService) GetShootByID(id string) (*models.Shoot, error) {
	shoot, err := s.shootRepo.GetShootByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShootNotFound
		}
		return nil, err
	}
	return shoot, nil
}

func (s *shootService) GetShoots(filters models.ShootFilters) ([]models.Shoot, int, error) {
	if filters.PageNum <= 0 {
		filters.PageNum = 1
	}
	if filters.PageSize <= 0 || filters.PageSize > 100 {
		filters.PageSize = 20
	}
	return s.shootRepo.GetShoots(filters)
}

// UpdateShoot saves the shoot's fields and its edited ledger. The
// submitted ledger passes through the synchronizer first, so manual
// edits to roster-linked lines are reconciled against the roster and
// the fields and ledger land in one transaction.
func (s *shootService) UpdateShoot(id string, req UpdateShootRequest) (*models.Shoot, error) {
	if err := validateShootData(req); err != nil {
		return nil, err
	}
	if _, err := s.GetShootByID(id); err != nil {
		return nil, err
	}

	shoot := shootFromRequest(req)
	shoot.ID = id
	synced, err := s.syncLedger(shoot)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.shootRepo.UpdateShoot(tx, shoot); err != nil {
		return nil, fmt.Errorf("failed to update shoot %s: %w", id, err)
	}
	if err := s.shootRepo.ReplaceExpenses(tx, id, synced); err != nil {
		return nil, fmt.Errorf("failed to save expense ledger: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit shoot transaction: %w", err)
	}
	return s.shootRepo.GetShootByID(id)
}

func (s *shootService) UpdateShootStatus(id string, req UpdateShootStatusRequest) (*models.Shoot, error) {
	if !isValidShootStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShootStatus, req.Status)
	}
	if err := s.shootRepo.UpdateShootStatus(s.db, id, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShootNotFound
		}
		return nil, fmt.Errorf("failed to update shoot %s status: %w", id, err)
	}
	return s.shootRepo.GetShootByID(id)
}

// SyncFinancials recomputes the stored ledger against the current
// roster without touching the shoot's other fields.
func (s *shootService) SyncFinancials(id string) (*models.Shoot, error) {
	shoot, err := s.GetShootByID(id)
	if err != nil {
		return nil, err
	}

	synced, err := s.syncLedger(shoot)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.shootRepo.ReplaceExpenses(tx, id, synced); err != nil {
		return nil, fmt.Errorf("failed to save expense ledger: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sync transaction: %w", err)
	}
	return s.shootRepo.GetShootByID(id)
}

func (s *shootService) DeleteShoot(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.shootRepo.DeleteShoot(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShootNotFound
		}
		return fmt.Errorf("failed to delete shoot %s: %w", id, err)
	}
	return tx.Commit()
}
