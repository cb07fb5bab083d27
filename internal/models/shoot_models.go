package models

import "time"

// Shoot types (production formats). The type determines which talent
// rate-card field applies when the ledger is synchronized.
const (
	ShootTypeStudioReels       = "Studio Reels"
	ShootTypeOutdoorReels      = "Outdoor Reels"
	ShootTypeStoreReels        = "Store Reels"
	ShootTypeLive              = "Live"
	ShootTypeAdvt              = "Advt."
	ShootTypeYouTubeInfluencer = "YouTube Influencer"
	ShootTypeYouTubeVideo      = "YouTube Video"
	ShootTypeYouTubeShorts     = "YouTube Shorts"
	ShootTypeOther             = "Other"
)

// ShootTypes lists every valid shoot type.
var ShootTypes = []string{
	ShootTypeStudioReels,
	ShootTypeOutdoorReels,
	ShootTypeStoreReels,
	ShootTypeLive,
	ShootTypeAdvt,
	ShootTypeYouTubeInfluencer,
	ShootTypeYouTubeVideo,
	ShootTypeYouTubeShorts,
	ShootTypeOther,
}

// Location environments.
const (
	LocationStudio  = "Studio"
	LocationOutdoor = "Outdoor"
	LocationStore   = "Store"
)

// Shoot statuses.
const (
	ShootStatusPlanning   = "Planning"
	ShootStatusScheduled  = "Scheduled"
	ShootStatusInProgress = "In Progress"
	ShootStatusCompleted  = "Completed"
	ShootStatusPostponed  = "Postponed"
	ShootStatusCancelled  = "Cancelled"
)

// ShootStatuses lists every valid shoot status.
var ShootStatuses = []string{
	ShootStatusPlanning,
	ShootStatusScheduled,
	ShootStatusInProgress,
	ShootStatusCompleted,
	ShootStatusPostponed,
	ShootStatusCancelled,
}

// Payment statuses for an expense line.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusAdvance = "Advance"
	PaymentStatusCash    = "Cash"
	PaymentStatusPart    = "Part"
	PaymentStatusFull    = "Full"
)

// Expense-line categories with fixed meaning. Crew-linked lines use the
// crew member's role name as the category instead.
const (
	ExpenseCategoryTalent     = "Talent"
	ExpenseCategoryTravelling = "Travelling"
	ExpenseCategoryCustom     = "Custom"
)

// TravelLinkSuffix is appended to a roster member's id to form the
// linked id of their travel-allowance line.
const TravelLinkSuffix = "_travel"

// ExpenseLine is one row of a shoot's expense ledger. A non-empty
// LinkedID ties the line to a roster member; lines without one are
// user-authored and survive every resynchronization.
type ExpenseLine struct {
	ID              string   `json:"id" db:"id"`
	Description     string   `json:"description" db:"description"`
	Category        string   `json:"category" db:"category"`
	Date            string   `json:"date" db:"expense_date"`
	EstimatedAmount float64  `json:"estimated_amount" db:"estimated_amount"`
	ActualAmount    float64  `json:"actual_amount" db:"actual_amount"`
	PaymentStatus   string   `json:"payment_status" db:"payment_status"`
	PaidAmount      float64  `json:"paid_amount" db:"paid_amount"`
	Remark          *string  `json:"remark,omitempty" db:"remark"`
	Attachments     []string `json:"attachments" db:"attachments"`
	LinkedID        *string  `json:"linked_id,omitempty" db:"linked_id"`
}

// TravelLinkID returns the linked id for a roster member's travel line.
func TravelLinkID(memberID string) string {
	return memberID + TravelLinkSuffix
}

// Shoot is a production project with its assigned roster and expense ledger.
type Shoot struct {
	ID              string        `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	CampaignDetails *string       `json:"campaign_details,omitempty" db:"campaign_details"`
	Type            string        `json:"type" db:"shoot_type"`
	Page            *string       `json:"page,omitempty" db:"page"` // Brand page, maps to the issuing firm
	Date            string        `json:"date" db:"shoot_date"`
	LocationType    string        `json:"location_type" db:"location_type"`
	LocationName    string        `json:"location_name" db:"location_name"`
	TalentIDs       []string      `json:"talent_ids"`
	CrewIDs         []string      `json:"crew_ids"`
	Expenses        []ExpenseLine `json:"expenses"`
	Budget          float64       `json:"budget" db:"budget"` // Informational ceiling, not enforced
	Status          string        `json:"status" db:"status"`
	ProductDetails  *string       `json:"product_details,omitempty" db:"product_details"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// ShootFilters narrow shoot listings.
type ShootFilters struct {
	Status   *string
	Page     *string // Brand page
	DateFrom *string
	DateTo   *string
	Search   *string
	PageNum  int
	PageSize int
}
