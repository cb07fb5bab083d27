package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studio_ops_backend/internal/finance"
	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Finance ---
var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrFirmNotFound      = errors.New("firm not found")
	ErrFirmNotResolved   = errors.New("no issuing firm could be resolved for the shoot")
	ErrRecipientNotFound = errors.New("recipient is not on the shoot roster")
	ErrFinanceValidation = errors.New("document data validation error")
)

// Recipient kinds accepted by the composer endpoints.
const (
	RecipientKindTalent = "talent"
	RecipientKindCrew   = "crew"
)

// --- Finance DTOs ---
type ComposeDraftRequest struct {
	ShootID         string              `json:"shoot_id" binding:"required"`
	RecipientID     string              `json:"recipient_id" binding:"required"`
	RecipientKind   string              `json:"recipient_kind" binding:"required"`
	FirmID          *string             `json:"firm_id"`
	BillingCategory string              `json:"billing_category" binding:"required"`
	DocType         string              `json:"doc_type" binding:"required"`
	TaxRatePercent  float64             `json:"tax_rate_percent"`
	ExtraItems      []finance.ExtraItem `json:"extra_items"`
}

// --- FinanceService Interface ---
//
// ComposeDraft produces a preview; RecordDocument freezes the same
// inputs into the append-only registry. Drafts are never stored, so a
// draft that is not recorded leaves no trace.
type FinanceService interface {
	ComposeDraft(req ComposeDraftRequest) (*finance.DraftDocument, error)
	RecordDocument(req ComposeDraftRequest) (*models.Document, error)
	GetDocumentByID(id string) (*finance.DraftDocument, error)
	GetDocuments(filters models.DocumentFilters) ([]models.Document, int, error)
}

// --- financeService Implementation ---
type financeService struct {
	documentRepo repositories.DocumentRepository
	shootRepo    repositories.ShootRepository
	talentRepo   repositories.TalentRepository
	crewRepo     repositories.CrewRepository
	firmRepo     repositories.FirmRepository
	db           *sql.DB // For managing transactions
}

// NewFinanceService creates a new instance of FinanceService.
func NewFinanceService(
	dr repositories.DocumentRepository,
	sr repositories.ShootRepository,
	tr repositories.TalentRepository,
	cr repositories.CrewRepository,
	fr repositories.FirmRepository,
	db *sql.DB,
) FinanceService {
	return &financeService{
		documentRepo: dr,
		shootRepo:    sr,
		talentRepo:   tr,
		crewRepo:     cr,
		firmRepo:     fr,
		db:           db,
	}
}

func validateComposeRequest(req ComposeDraftRequest) error {
	if req.DocType != models.DocumentTypeInvoice && req.DocType != models.DocumentTypePurchaseOrder {
		return fmt.Errorf("%w: unknown document type '%s'", ErrFinanceValidation, req.DocType)
	}
	if req.BillingCategory != models.BillingCategoryService && req.BillingCategory != models.BillingCategoryTravel {
		return fmt.Errorf("%w: unknown billing category '%s'", ErrFinanceValidation, req.BillingCategory)
	}
	if req.RecipientKind != RecipientKindTalent && req.RecipientKind != RecipientKindCrew {
		return fmt.Errorf("%w: unknown recipient kind '%s'", ErrFinanceValidation, req.RecipientKind)
	}
	if req.TaxRatePercent < 0 || req.TaxRatePercent > 100 {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", ErrFinanceValidation)
	}
	return nil
}

// resolveRecipient loads the recipient and verifies they are actually
// assigned to the shoot. Documents go to roster members only.
func (s *financeService) resolveRecipient(shoot *models.Shoot, kind, recipientID string) (finance.Recipient, error) {
	switch kind {
	case RecipientKindTalent:
		for _, id := range shoot.TalentIDs {
			if id == recipientID {
				member, err := s.talentRepo.GetTalentByID(recipientID)
				if err != nil {
					if errors.Is(err, repositories.ErrNotFound) {
						return nil, ErrRecipientNotFound
					}
					return nil, err
				}
				return finance.TalentRecipient(member), nil
			}
		}
	case RecipientKindCrew:
		for _, id := range shoot.CrewIDs {
			if id == recipientID {
				member, err := s.crewRepo.GetCrewMemberByID(recipientID)
				if err != nil {
					if errors.Is(err, repositories.ErrNotFound) {
						return nil, ErrRecipientNotFound
					}
					return nil, err
				}
				return finance.CrewRecipient(member), nil
			}
		}
	}
	return nil, ErrRecipientNotFound
}

// resolveFirm picks the issuing firm: an explicit firm id wins,
// otherwise the shoot's brand page is looked up in the page mapping.
func (s *financeService) resolveFirm(shoot *models.Shoot, firmID *string) (*models.Firm, error) {
	if firmID != nil && *firmID != "" {
		firm, err := s.firmRepo.GetFirmByID(*firmID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrFirmNotFound
			}
			return nil, err
		}
		return firm, nil
	}
	if shoot.Page != nil && *shoot.Page != "" {
		firm, err := s.firmRepo.GetFirmByPage(*shoot.Page)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrFirmNotResolved
			}
			return nil, err
		}
		return firm, nil
	}
	return nil, ErrFirmNotResolved
}

// composeInput resolves everything the composer needs. The prior
// document count comes from the given executor so RecordDocument can
// count inside its transaction.
func (s *financeService) composeInput(executor repositories.SQLExecutor, req ComposeDraftRequest) (*finance.ComposeInput, error) {
	shoot, err := s.shootRepo.GetShootByID(req.ShootID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShootNotFound
		}
		return nil, err
	}
	recipient, err := s.resolveRecipient(shoot, req.RecipientKind, req.RecipientID)
	if err != nil {
		return nil, err
	}
	firm, err := s.resolveFirm(shoot, req.FirmID)
	if err != nil {
		return nil, err
	}
	priorDocs, err := s.documentRepo.CountByFirm(executor, firm.ID)
	if err != nil {
		return nil, err
	}
	return &finance.ComposeInput{
		Shoot:           shoot,
		Recipient:       recipient,
		Firm:            firm,
		BillingCategory: req.BillingCategory,
		DocType:         req.DocType,
		TaxRatePercent:  req.TaxRatePercent,
		ExtraItems:      req.ExtraItems,
		PriorFirmDocs:   priorDocs,
		Now:             time.Now(),
	}, nil
}

func (s *financeService) ComposeDraft(req ComposeDraftRequest) (*finance.DraftDocument, error) {
	if err := validateComposeRequest(req); err != nil {
		return nil, err
	}
	input, err := s.composeInput(s.db, req)
	if err != nil {
		return nil, err
	}
	return finance.ComposeDraft(*input)
}

// RecordDocument recomputes the draft from current data and appends the
// frozen result to the registry. Composition and the firm's document
// count run in one transaction so the sequence number matches what is
// stored.
func (s *financeService) RecordDocument(req ComposeDraftRequest) (*models.Document, error) {
	if err := validateComposeRequest(req); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	input, err := s.composeInput(tx, req)
	if err != nil {
		return nil, err
	}
	draft, err := finance.ComposeDraft(*input)
	if err != nil {
		return nil, err
	}
	doc, err := finance.BuildDocument(draft, uuid.NewString(), time.Now())
	if err != nil {
		return nil, err
	}
	if _, err := s.documentRepo.CreateDocument(tx, doc); err != nil {
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit document transaction: %w", err)
	}
	return doc, nil
}

// GetDocumentByID returns the reconstructed draft view of an issued
// document. The shoot, firm and recipient are attached best-effort;
// deleted references leave the frozen fields on the document to cover
// display.
func (s *financeService) GetDocumentByID(id string) (*finance.DraftDocument, error) {
	doc, err := s.documentRepo.GetDocumentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	firm, err := s.firmRepo.GetFirmByID(doc.FirmID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	shoot, err := s.shootRepo.GetShootByID(doc.ShootID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	var recipient finance.Recipient
	if doc.RecipientID != nil && *doc.RecipientID != "" {
		if member, err := s.talentRepo.GetTalentByID(*doc.RecipientID); err == nil {
			recipient = finance.TalentRecipient(member)
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		} else if member, err := s.crewRepo.GetCrewMemberByID(*doc.RecipientID); err == nil {
			recipient = finance.CrewRecipient(member)
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	return finance.Reconstruct(doc, firm, shoot, recipient), nil
}

func (s *financeService) GetDocuments(filters models.DocumentFilters) ([]models.Document, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 || filters.PageSize > 100 {
		filters.PageSize = 20
	}
	return s.documentRepo.GetDocuments(filters)
}
