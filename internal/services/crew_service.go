package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Crew ---
var (
	ErrCrewNotFound   = errors.New("crew member not found")
	ErrCrewValidation = errors.New("crew data validation error")
)

// --- Crew DTOs ---
type CreateCrewRequest struct {
	Name          string              `json:"name" binding:"required"`
	PhoneNumber   *string             `json:"phone_number"`
	Role          string              `json:"role" binding:"required"`
	StaffType     string              `json:"staff_type"`
	Rate          float64             `json:"rate"`
	Charges       *models.CrewCharges `json:"charges"`
	TravelCharges float64             `json:"travel_charges"`
	Address       *string             `json:"address"`
	PAN           *string             `json:"pan"`
	GSTIN         *string             `json:"gstin"`
	BankDetails   *models.BankDetails `json:"bank_details"`
}

type UpdateCrewRequest = CreateCrewRequest

// --- CrewService Interface ---
type CrewService interface {
	CreateCrewMember(req CreateCrewRequest) (*models.CrewMember, error)
	GetCrewMemberByID(id string) (*models.CrewMember, error)
	GetCrewMembers(page, pageSize int, role, searchTerm *string) ([]models.CrewMember, int, error)
	UpdateCrewMember(id string, req UpdateCrewRequest) (*models.CrewMember, error)
	DeleteCrewMember(id string) error
}

// --- crewService Implementation ---
type crewService struct {
	crewRepo repositories.CrewRepository
	db       *sql.DB
}

// NewCrewService creates a new instance of CrewService.
func NewCrewService(repo repositories.CrewRepository, db *sql.DB) CrewService {
	return &crewService{
		crewRepo: repo,
		db:       db,
	}
}

func validateCrewData(req CreateCrewRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCrewValidation)
	}
	if strings.TrimSpace(req.Role) == "" {
		return fmt.Errorf("%w: role cannot be empty", ErrCrewValidation)
	}
	if req.Rate < 0 || req.TravelCharges < 0 {
		return fmt.Errorf("%w: rates cannot be negative", ErrCrewValidation)
	}
	if req.Charges != nil {
		for _, rate := range []float64{req.Charges.Indoor, req.Charges.Outdoor, req.Charges.Live, req.Charges.Custom} {
			if rate < 0 {
				return fmt.Errorf("%w: rates cannot be negative", ErrCrewValidation)
			}
		}
	}
	if req.StaffType != "" &&
		req.StaffType != models.StaffTypeInhouse &&
		req.StaffType != models.StaffTypeOutsource &&
		req.StaffType != models.StaffTypeStore {
		return fmt.Errorf("%w: unknown staff type '%s'", ErrCrewValidation, req.StaffType)
	}
	return nil
}

func crewFromRequest(req CreateCrewRequest) *models.CrewMember {
	staffType := req.StaffType
	if staffType == "" {
		staffType = models.StaffTypeInhouse
	}
	return &models.CrewMember{
		Name:          strings.TrimSpace(req.Name),
		PhoneNumber:   req.PhoneNumber,
		Role:          strings.TrimSpace(req.Role),
		StaffType:     staffType,
		Rate:          req.Rate,
		Charges:       req.Charges,
		TravelCharges: req.TravelCharges,
		Address:       req.Address,
		PAN:           req.PAN,
		GSTIN:         req.GSTIN,
		BankDetails:   req.BankDetails,
	}
}

func (s *crewService) CreateCrewMember(req CreateCrewRequest) (*models.CrewMember, error) {
	if err := validateCrewData(req); err != nil {
		return nil, err
	}

	member := crewFromRequest(req)
	id, err := s.crewRepo.CreateCrewMember(s.db, member)
	if err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}
	return s.crewRepo.GetCrewMemberByID(id)
}

func (s *crewService) GetCrewMemberByID(id string) (*models.CrewMember, error) {
	member, err := s.crewRepo.GetCrewMemberByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCrewNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *crewService) GetCrewMembers(page, pageSize int, role, searchTerm *string) ([]models.CrewMember, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.crewRepo.GetCrewMembers(page, pageSize, role, searchTerm)
}

func (s *crewService) UpdateCrewMember(id string, req UpdateCrewRequest) (*models.CrewMember, error) {
	if err := validateCrewData(req); err != nil {
		return nil, err
	}
	if _, err := s.GetCrewMemberByID(id); err != nil {
		return nil, err
	}

	member := crewFromRequest(req)
	member.ID = id
	if err := s.crewRepo.UpdateCrewMember(s.db, member); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to update crew member %s: %w", id, err)
	}
	return s.crewRepo.GetCrewMemberByID(id)
}

func (s *crewService) DeleteCrewMember(id string) error {
	err := s.crewRepo.DeleteCrewMember(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCrewNotFound
		}
		return fmt.Errorf("failed to delete crew member %s: %w", id, err)
	}
	return nil
}
