package models

import "time"

// TalentRateCard holds the per-engagement rates for a talent member.
// A zero value means "no explicit rate set, use the fallback chain".
type TalentRateCard struct {
	IndoorReels       float64 `json:"indoor_reels" db:"rate_indoor_reels"`
	OutdoorReels      float64 `json:"outdoor_reels" db:"rate_outdoor_reels"`
	StoreReels        float64 `json:"store_reels" db:"rate_store_reels"`
	Live              float64 `json:"live" db:"rate_live"`
	Advt              float64 `json:"advt" db:"rate_advt"`
	YouTubeInfluencer float64 `json:"youtube_influencer" db:"rate_youtube_influencer"`
	YouTubeVideo      float64 `json:"youtube_video" db:"rate_youtube_video"`
	YouTubeShorts     float64 `json:"youtube_shorts" db:"rate_youtube_shorts"`
	Custom            float64 `json:"custom" db:"rate_custom"`
}

// BankDetails are payout details shown on issued documents.
type BankDetails struct {
	BankName      string  `json:"bank_name" db:"bank_name"`
	AccountNumber string  `json:"account_number" db:"account_number"`
	IFSCCode      string  `json:"ifsc_code" db:"ifsc_code"`
	BranchName    *string `json:"branch_name,omitempty" db:"branch_name"`
}

// TalentMember represents a model who can be booked for a shoot.
type TalentMember struct {
	ID             string         `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	BillingName    *string        `json:"billing_name,omitempty" db:"billing_name"` // Invoicing on behalf of a represented party
	PhoneNumber    *string        `json:"phone_number,omitempty" db:"phone_number"`
	Email          *string        `json:"email,omitempty" db:"email"`
	Address        *string        `json:"address,omitempty" db:"address"`
	Instagram      *string        `json:"instagram,omitempty" db:"instagram"`
	ProfileTypes   []string       `json:"profile_types" db:"profile_types"`
	ConnectionType *string        `json:"connection_type,omitempty" db:"connection_type"` // "Model Agency" or "Freelance"
	Measurements   *string        `json:"measurements,omitempty" db:"measurements"`
	Charges        TalentRateCard `json:"charges"`
	TravelCharges  float64        `json:"travel_charges" db:"travel_charges"`
	Remarks        *string        `json:"remarks,omitempty" db:"remarks"`
	JoinDate       *string        `json:"join_date,omitempty" db:"join_date"` // Store as string, parse to time.Time when needed
	PAN            *string        `json:"pan,omitempty" db:"pan"`
	GSTIN          *string        `json:"gstin,omitempty" db:"gstin"`
	BankDetails    *BankDetails   `json:"bank_details,omitempty"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}
