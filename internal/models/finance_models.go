package models

import "time"

// Document types.
const (
	DocumentTypeInvoice       = "INVOICE"
	DocumentTypePurchaseOrder = "PO"
)

// Billing categories. Travel documents are non-taxable reimbursements.
const (
	BillingCategoryService = "Service"
	BillingCategoryTravel  = "Travel"
)

// DocumentItem is one line of an issued document. Amount is persisted
// alongside quantity and rate so historical documents can be redisplayed
// without recomputation.
type DocumentItem struct {
	Description string  `json:"description" db:"description"`
	Quantity    float64 `json:"quantity" db:"quantity"`
	Rate        float64 `json:"rate" db:"rate"`
	Amount      float64 `json:"amount" db:"amount"`
}

// Document is an issued invoice or purchase order. Once recorded it is
// immutable; RecipientName freezes the roster member's display name at
// issue time so history survives roster edits and deletions.
type Document struct {
	ID              string         `json:"id" db:"id"`
	Number          string         `json:"number" db:"doc_number"`
	Date            string         `json:"date" db:"issue_date"`
	ShootID         string         `json:"shoot_id" db:"shoot_id"`
	FirmID          string         `json:"firm_id" db:"firm_id"`
	RecipientID     *string        `json:"recipient_id,omitempty" db:"recipient_id"`
	RecipientName   *string        `json:"recipient_name,omitempty" db:"recipient_name"`
	BillingCategory string         `json:"billing_category" db:"billing_category"`
	Items           []DocumentItem `json:"items"`
	Total           float64        `json:"total" db:"total"`
	Type            string         `json:"type" db:"doc_type"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

// DocumentFilters narrow document listings.
type DocumentFilters struct {
	FirmID   *string
	DocType  *string
	Search   *string
	Page     int
	PageSize int
}
