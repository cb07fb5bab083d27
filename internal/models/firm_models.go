package models

import "time"

// Firm is a legal billing entity that issues invoices and purchase orders.
type Firm struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StoreName *string   `json:"store_name,omitempty" db:"store_name"`
	Address   string    `json:"address" db:"address"`
	Phone     string    `json:"phone" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	LogoURL   *string   `json:"logo_url,omitempty" db:"logo_url"`
	GSTIN     *string   `json:"gstin,omitempty" db:"gstin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FirmPageMapping links a shoot's brand page to the firm that issues
// documents for shoots on that page.
type FirmPageMapping struct {
	Page   string `json:"page" db:"page"`
	FirmID string `json:"firm_id" db:"firm_id"`
}
