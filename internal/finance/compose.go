package finance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_ops_backend/internal/models"
)

// ErrHistoricalDraft is returned when a reconstructed historical document
// is passed back to be recorded. Issued documents are immutable.
var ErrHistoricalDraft = errors.New("historical documents cannot be recorded again")

// ErrIncompleteInput is returned when the composer is called without a
// resolved shoot, recipient or firm.
var ErrIncompleteInput = errors.New("compose requires a resolved shoot, recipient and firm")

// TravelBaseDescription labels the base line of travel reimbursement
// documents.
const TravelBaseDescription = "Travel Allowance & Conveyance Reimbursement"

// ExtraItem is an ad-hoc document line added on top of the base amount.
type ExtraItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// ComposeInput carries everything the composer needs. The caller resolves
// the shoot, recipient and firm, and supplies the firm's prior document
// count for sequence numbering.
type ComposeInput struct {
	Shoot           *models.Shoot
	Recipient       Recipient
	Firm            *models.Firm
	BillingCategory string
	DocType         string
	TaxRatePercent  float64
	ExtraItems      []ExtraItem
	PriorFirmDocs   int
	Now             time.Time
}

// DraftDocument is a fully computed document preview: the sole contract
// handed to the printable renderer, and the shape historical documents
// are reconstructed into.
type DraftDocument struct {
	Firm            *models.Firm  `json:"firm,omitempty"`
	Shoot           *models.Shoot `json:"shoot"`
	RecipientID     string        `json:"recipient_id,omitempty"`
	RecipientName   string        `json:"recipient_name"`
	BaseDescription string        `json:"base_description"`
	BaseAmount      float64       `json:"base_amount"`
	ExtraItems      []ExtraItem   `json:"extra_items"`
	Subtotal        float64       `json:"subtotal"`
	TaxRatePercent  float64       `json:"tax_rate_percent"`
	TaxAmount       float64       `json:"tax_amount"`
	Total           float64       `json:"total"`
	Date            string        `json:"date"`
	Number          string        `json:"number"`
	BillingCategory string        `json:"billing_category"`
	DocType         string        `json:"doc_type"`
	Historical      bool          `json:"historical"`
}

// DocumentNumber derives the human-readable number for the firm's next
// document: {TYPE}-{MM}/{NNNN}/{CAT}, where NNNN is one past the firm's
// running document count. Two clients composing at the same time can
// draft the same number; append order to the registry is authoritative.
func DocumentNumber(docType, billingCategory string, priorFirmDocs int, now time.Time) string {
	prefix := "PO"
	if docType == models.DocumentTypeInvoice {
		prefix = "INV"
	}
	suffix := "SRV"
	if billingCategory == models.BillingCategoryTravel {
		suffix = "TRV"
	}
	return fmt.Sprintf("%s-%02d/%04d/%s", prefix, int(now.Month()), priorFirmDocs+1, suffix)
}

// ComposeDraft computes a fresh document preview for a shoot recipient.
//
// The Service base amount comes from the recipient's non-travel ledger
// line; a missing or zero line falls back to direct rate resolution so a
// draft can still be produced for shoots saved before synchronization.
// The Travel base amount prefers the travel line's actual over its
// estimate. Travel documents are non-taxable reimbursements: the tax
// rate is forced to zero regardless of input.
func ComposeDraft(in ComposeInput) (*DraftDocument, error) {
	if in.Shoot == nil || in.Recipient == nil || in.Firm == nil {
		return nil, ErrIncompleteInput
	}

	recipientID := in.Recipient.RecipientID()
	var baseAmount float64
	var baseDescription string

	if in.BillingCategory == models.BillingCategoryTravel {
		travelID := models.TravelLinkID(recipientID)
		line := findLine(in.Shoot.Expenses, func(e *models.ExpenseLine) bool {
			if e.LinkedID == nil {
				return false
			}
			return *e.LinkedID == travelID ||
				(*e.LinkedID == recipientID && e.Category == models.ExpenseCategoryTravelling)
		})
		if line != nil {
			if line.ActualAmount > 0 {
				baseAmount = line.ActualAmount
			} else {
				baseAmount = line.EstimatedAmount
			}
		}
		baseDescription = TravelBaseDescription
	} else {
		line := findLine(in.Shoot.Expenses, func(e *models.ExpenseLine) bool {
			return e.LinkedID != nil && *e.LinkedID == recipientID && e.Category != models.ExpenseCategoryTravelling
		})
		if line != nil {
			baseAmount = line.EstimatedAmount
		}
		if baseAmount == 0 {
			// Safety net for drafts composed before the ledger was synchronized.
			baseAmount = in.Recipient.RateFor(in.Shoot.Type, in.Shoot.LocationType)
		}
		baseDescription = in.Shoot.Type
	}

	extras := make([]ExtraItem, 0, len(in.ExtraItems))
	extraTotal := 0.0
	for _, item := range in.ExtraItems {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		extras = append(extras, item)
		extraTotal += item.Quantity * item.Rate
	}

	subtotal := baseAmount + extraTotal
	effectiveRate := in.TaxRatePercent
	if in.BillingCategory == models.BillingCategoryTravel {
		effectiveRate = 0
	}
	taxAmount := subtotal * effectiveRate / 100

	return &DraftDocument{
		Firm:            in.Firm,
		Shoot:           in.Shoot,
		RecipientID:     recipientID,
		RecipientName:   in.Recipient.DisplayName(),
		BaseDescription: baseDescription,
		BaseAmount:      baseAmount,
		ExtraItems:      extras,
		Subtotal:        subtotal,
		TaxRatePercent:  effectiveRate,
		TaxAmount:       taxAmount,
		Total:           subtotal - taxAmount,
		Date:            in.Now.Format("02-01-2006"),
		Number:          DocumentNumber(in.DocType, in.BillingCategory, in.PriorFirmDocs, in.Now),
		BillingCategory: in.BillingCategory,
		DocType:         in.DocType,
		Historical:      false,
	}, nil
}

// BuildDocument freezes a draft into the immutable record appended to the
// registry. The base line is stored first so reconstruction can read it
// back positionally.
func BuildDocument(draft *DraftDocument, id string, now time.Time) (*models.Document, error) {
	if draft.Historical {
		return nil, ErrHistoricalDraft
	}
	items := make([]models.DocumentItem, 0, 1+len(draft.ExtraItems))
	items = append(items, models.DocumentItem{
		Description: draft.BaseDescription,
		Quantity:    1,
		Rate:        draft.BaseAmount,
		Amount:      draft.BaseAmount,
	})
	for _, item := range draft.ExtraItems {
		items = append(items, models.DocumentItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Quantity * item.Rate,
		})
	}
	recipientID := draft.RecipientID
	recipientName := draft.RecipientName
	return &models.Document{
		ID:              id,
		Number:          draft.Number,
		Date:            now.Format("2006-01-02"),
		ShootID:         draft.Shoot.ID,
		FirmID:          draft.Firm.ID,
		RecipientID:     &recipientID,
		RecipientName:   &recipientName,
		BillingCategory: draft.BillingCategory,
		Items:           items,
		Total:           draft.Total,
		Type:            draft.DocType,
	}, nil
}

// Reconstruct rebuilds the draft view of an issued document purely from
// its persisted fields. Amounts are never re-derived from current rates:
// the first stored item is the base line, the rest are extras, and the
// display tax rate is back-computed from the stored totals. This keeps a
// historical document byte-for-byte equal to what was issued even after
// rate cards or tax policy change. Firm and recipient may be nil when the
// referenced records were since deleted; the frozen recipient name on the
// document covers display.
func Reconstruct(doc *models.Document, firm *models.Firm, shoot *models.Shoot, recipient Recipient) *DraftDocument {
	var baseAmount float64
	var baseDescription string
	extras := []ExtraItem{}
	subtotal := 0.0
	for _, item := range doc.Items {
		subtotal += item.Amount
	}
	if len(doc.Items) > 0 {
		baseAmount = doc.Items[0].Rate
		baseDescription = doc.Items[0].Description
		for _, item := range doc.Items[1:] {
			extras = append(extras, ExtraItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
			})
		}
	}
	taxAmount := subtotal - doc.Total

	taxRate := 0.0
	if doc.BillingCategory != models.BillingCategoryTravel && subtotal > 0 {
		taxRate = taxAmount / subtotal * 100
	}

	recipientID := ""
	recipientName := ""
	if doc.RecipientName != nil {
		recipientName = *doc.RecipientName
	}
	if recipient != nil {
		recipientID = recipient.RecipientID()
		recipientName = recipient.DisplayName()
	} else if doc.RecipientID != nil {
		recipientID = *doc.RecipientID
	}
	if recipientName == "" {
		recipientName = "Unknown"
	}

	return &DraftDocument{
		Firm:            firm,
		Shoot:           shoot,
		RecipientID:     recipientID,
		RecipientName:   recipientName,
		BaseDescription: baseDescription,
		BaseAmount:      baseAmount,
		ExtraItems:      extras,
		Subtotal:        subtotal,
		TaxRatePercent:  taxRate,
		TaxAmount:       taxAmount,
		Total:           doc.Total,
		Date:            doc.Date,
		Number:          doc.Number,
		BillingCategory: doc.BillingCategory,
		DocType:         doc.Type,
		Historical:      true,
	}
}
