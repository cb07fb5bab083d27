package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Talent ---
var (
	ErrTalentNotFound   = errors.New("talent member not found")
	ErrTalentValidation = errors.New("talent data validation error")
)

// --- Talent DTOs ---
type CreateTalentRequest struct {
	Name           string                `json:"name" binding:"required"`
	BillingName    *string               `json:"billing_name"`
	PhoneNumber    *string               `json:"phone_number"`
	Email          *string               `json:"email"`
	Address        *string               `json:"address"`
	Instagram      *string               `json:"instagram"`
	ProfileTypes   []string              `json:"profile_types"`
	ConnectionType *string               `json:"connection_type"`
	Measurements   *string               `json:"measurements"`
	Charges        models.TalentRateCard `json:"charges"`
	TravelCharges  float64               `json:"travel_charges"`
	Remarks        *string               `json:"remarks"`
	JoinDate       *string               `json:"join_date"`
	PAN            *string               `json:"pan"`
	GSTIN          *string               `json:"gstin"`
	BankDetails    *models.BankDetails   `json:"bank_details"`
}

type UpdateTalentRequest = CreateTalentRequest

// --- TalentService Interface ---
type TalentService interface {
	CreateTalent(req CreateTalentRequest) (*models.TalentMember, error)
	GetTalentByID(id string) (*models.TalentMember, error)
	GetTalent(page, pageSize int, searchTerm *string) ([]models.TalentMember, int, error)
	UpdateTalent(id string, req UpdateTalentRequest) (*models.TalentMember, error)
	DeleteTalent(id string) error
}

// --- talentService Implementation ---
type talentService struct {
	talentRepo repositories.TalentRepository
	db         *sql.DB
}

// NewTalentService creates a new instance of TalentService.
func NewTalentService(repo repositories.TalentRepository, db *sql.DB) TalentService {
	return &talentService{
		talentRepo: repo,
		db:         db,
	}
}

func validateTalentData(req CreateTalentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrTalentValidation)
	}
	rates := []float64{
		req.Charges.IndoorReels, req.Charges.OutdoorReels, req.Charges.StoreReels,
		req.Charges.Live, req.Charges.Advt, req.Charges.YouTubeInfluencer,
		req.Charges.YouTubeVideo, req.Charges.YouTubeShorts, req.Charges.Custom,
		req.TravelCharges,
	}
	for _, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%w: rates cannot be negative", ErrTalentValidation)
		}
	}
	return nil
}

func talentFromRequest(req CreateTalentRequest) *models.TalentMember {
	return &models.TalentMember{
		Name:           strings.TrimSpace(req.Name),
		BillingName:    req.BillingName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		Address:        req.Address,
		Instagram:      req.Instagram,
		ProfileTypes:   req.ProfileTypes,
		ConnectionType: req.ConnectionType,
		Measurements:   req.Measurements,
		Charges:        req.Charges,
		TravelCharges:  req.TravelCharges,
		Remarks:        req.Remarks,
		JoinDate:       req.JoinDate,
		PAN:            req.PAN,
		GSTIN:          req.GSTIN,
		BankDetails:    req.BankDetails,
	}
}

func (s *talentService) CreateTalent(req CreateTalentRequest) (*models.TalentMember, error) {
	if err := validateTalentData(req); err != nil {
		return nil, err
	}

	talent := talentFromRequest(req)
	id, err := s.talentRepo.CreateTalent(s.db, talent)
	if err != nil {
		return nil, fmt.Errorf("failed to create talent member: %w", err)
	}
	return s.talentRepo.GetTalentByID(id)
}

func (s *talentService) GetTalentByID(id string) (*models.TalentMember, error) {
	talent, err := s.talentRepo.GetTalentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, err
	}
	return talent, nil
}

func (s *talentService) GetTalent(page, pageSize int, searchTerm *string) ([]models.TalentMember, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.talentRepo.GetTalent(page, pageSize, searchTerm)
}

func (s *talentService) UpdateTalent(id string, req UpdateTalentRequest) (*models.TalentMember, error) {
	if err := validateTalentData(req); err != nil {
		return nil, err
	}
	if _, err := s.GetTalentByID(id); err != nil {
		return nil, err
	}

	talent := talentFromRequest(req)
	talent.ID = id
	if err := s.talentRepo.UpdateTalent(s.db, talent); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, fmt.Errorf("failed to update talent member %s: %w", id, err)
	}
	return s.talentRepo.GetTalentByID(id)
}

func (s *talentService) DeleteTalent(id string) error {
	err := s.talentRepo.DeleteTalent(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTalentNotFound
		}
		return fmt.Errorf("failed to delete talent member %s: %w", id, err)
	}
	return nil
}
