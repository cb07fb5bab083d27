package models

import "time"

// Staff classification values for crew members. Informational only;
// no billing rule keys off these.
const (
	StaffTypeInhouse   = "Inhouse"
	StaffTypeOutsource = "Outsource"
	StaffTypeStore     = "Store"
)

// Crew role names. The role is also used as the expense-line category
// for crew-linked ledger lines.
var CrewRoles = []string{
	"Floor Manager",
	"Makeup Artist",
	"Hair Stylist",
	"Helper",
	"DOP",
	"Videographer",
	"Photographer",
	"Light Boy",
	"Stylist",
	"Editor",
	"Creative Director",
	"Assistant",
}

// PerTalentRoles are crew roles whose engagement cost scales with the
// number of talent assigned to the same shoot (billed per model).
var PerTalentRoles = []string{
	"Makeup Artist",
	"Stylist",
	"Hair Stylist",
}

// IsPerTalentRole reports whether the role is billed per assigned talent.
func IsPerTalentRole(role string) bool {
	for _, r := range PerTalentRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CrewCharges is the optional location-keyed rate card for a crew member.
// Zero values fall through to the member's flat base rate.
type CrewCharges struct {
	Indoor  float64 `json:"indoor" db:"charge_indoor"`
	Outdoor float64 `json:"outdoor" db:"charge_outdoor"`
	Live    float64 `json:"live" db:"charge_live"`
	Custom  float64 `json:"custom" db:"charge_custom"`
}

// CrewMember represents a production staff member (floor manager, stylist, etc.).
type CrewMember struct {
	ID            string       `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	PhoneNumber   *string      `json:"phone_number,omitempty" db:"phone_number"`
	Role          string       `json:"role" db:"role"`
	StaffType     string       `json:"staff_type" db:"staff_type"`
	Rate          float64      `json:"rate" db:"rate"` // Flat base rate, the last fallback
	Charges       *CrewCharges `json:"charges,omitempty"`
	TravelCharges float64      `json:"travel_charges" db:"travel_charges"`
	Address       *string      `json:"address,omitempty" db:"address"`
	PAN           *string      `json:"pan,omitempty" db:"pan"`
	GSTIN         *string      `json:"gstin,omitempty" db:"gstin"`
	BankDetails   *BankDetails `json:"bank_details,omitempty"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}
