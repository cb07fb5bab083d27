package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Firm ---
var (
	ErrFirmValidation = errors.New("firm data validation error")
	ErrFirmNameExists = errors.New("firm name already exists")
)

// --- Firm DTOs ---
type CreateFirmRequest struct {
	Name      string  `json:"name" binding:"required"`
	StoreName *string `json:"store_name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
	LogoURL   *string `json:"logo_url"`
	GSTIN     *string `json:"gstin"`
}

type UpdateFirmRequest = CreateFirmRequest

type SetPageMappingRequest struct {
	Page   string `json:"page" binding:"required"`
	FirmID string `json:"firm_id" binding:"required"`
}

// --- FirmService Interface ---
type FirmService interface {
	CreateFirm(req CreateFirmRequest) (*models.Firm, error)
	GetFirmByID(id string) (*models.Firm, error)
	GetFirms() ([]models.Firm, error)
	UpdateFirm(id string, req UpdateFirmRequest) (*models.Firm, error)
	DeleteFirm(id string) error
	GetPageMappings() ([]models.FirmPageMapping, error)
	SetPageMapping(req SetPageMappingRequest) error
}

// --- firmService Implementation ---
type firmService struct {
	firmRepo repositories.FirmRepository
	db       *sql.DB
}

// NewFirmService creates a new instance of FirmService.
func NewFirmService(repo repositories.FirmRepository, db *sql.DB) FirmService {
	return &firmService{
		firmRepo: repo,
		db:       db,
	}
}

func firmFromRequest(req CreateFirmRequest) *models.Firm {
	return &models.Firm{
		Name:      strings.TrimSpace(req.Name),
		StoreName: req.StoreName,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		LogoURL:   req.LogoURL,
		GSTIN:     req.GSTIN,
	}
}

func (s *firmService) CreateFirm(req CreateFirmRequest) (*models.Firm, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrFirmValidation)
	}

	firm := firmFromRequest(req)
	id, err := s.firmRepo.CreateFirm(s.db, firm)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrFirmNameExists
		}
		return nil, fmt.Errorf("failed to create firm: %w", err)
	}
	return s.firmRepo.GetFirmByID(id)
}

func (s *firmService) GetFirmByID(id string) (*models.Firm, error) {
	firm, err := s.firmRepo.GetFirmByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFirmNotFound
		}
		return nil, err
	}
	return firm, nil
}

func (s *firmService) GetFirms() ([]models.Firm, error) {
	return s.firmRepo.GetFirms()
}

func (s *firmService) UpdateFirm(id string, req UpdateFirmRequest) (*models.Firm, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrFirmValidation)
	}
	if _, err := s.GetFirmByID(id); err != nil {
		return nil, err
	}

	firm := firmFromRequest(req)
	firm.ID = id
	if err := s.firmRepo.UpdateFirm(s.db, firm); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFirmNotFound
		}
		return nil, fmt.Errorf("failed to update firm %s: %w", id, err)
	}
	return s.firmRepo.GetFirmByID(id)
}

func (s *firmService) DeleteFirm(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.firmRepo.DeleteFirm(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFirmNotFound
		}
		return fmt.Errorf("failed to delete firm %s: %w", id, err)
	}
	return tx.Commit()
}

func (s *firmService) GetPageMappings() ([]models.FirmPageMapping, error) {
	return s.firmRepo.GetPageMappings()
}

func (s *firmService) SetPageMapping(req SetPageMappingRequest) error {
	if _, err := s.GetFirmByID(req.FirmID); err != nil {
		return err
	}
	if err := s.firmRepo.SetPageMapping(s.db, models.FirmPageMapping{Page: req.Page, FirmID: req.FirmID}); err != nil {
		return fmt.Errorf("failed to set page mapping: %w", err)
	}
	return nil
}
