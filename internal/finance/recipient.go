// Package finance implements the studio's derived-financials core: rate
// resolution, expense-ledger synchronization, and invoice/PO composition.
// Everything here is pure; persistence and roster lookups are supplied by
// the service layer.
package finance

import (
	"studio_ops_backend/internal/models"
)

// Recipient is the billing-side view of a roster member. Talent and crew
// resolve rates differently, so callers dispatch through this interface
// instead of duck-typing optional fields.
type Recipient interface {
	RecipientID() string
	DisplayName() string
	// BillingName is the name printed on documents. Talent may invoice
	// under a billing alias; crew always bill under their own name.
	BillingName() string
	TravelCharges() float64
	// RateFor resolves the member's per-engagement rate for the given
	// shoot type and location. It always returns a number >= 0.
	RateFor(shootType, locationType string) float64
}

type talentRecipient struct {
	m *models.TalentMember
}

// TalentRecipient wraps a talent member as a billing recipient.
func TalentRecipient(m *models.TalentMember) Recipient {
	return talentRecipient{m: m}
}

func (r talentRecipient) RecipientID() string { return r.m.ID }

func (r talentRecipient) DisplayName() string { return r.m.Name }

func (r talentRecipient) BillingName() string {
	if r.m.BillingName != nil && *r.m.BillingName != "" {
		return *r.m.BillingName
	}
	return r.m.Name
}

func (r talentRecipient) TravelCharges() float64 { return r.m.TravelCharges }

func (r talentRecipient) RateFor(shootType, locationType string) float64 {
	return TalentRate(r.m.Charges, shootType, locationType)
}

type crewRecipient struct {
	m *models.CrewMember
}

// CrewRecipient wraps a crew member as a billing recipient.
func CrewRecipient(m *models.CrewMember) Recipient {
	return crewRecipient{m: m}
}

func (r crewRecipient) RecipientID() string { return r.m.ID }

func (r crewRecipient) DisplayName() string { return r.m.Name }

func (r crewRecipient) BillingName() string { return r.m.Name }

func (r crewRecipient) TravelCharges() float64 { return r.m.TravelCharges }

func (r crewRecipient) RateFor(shootType, locationType string) float64 {
	return CrewRate(r.m, shootType, locationType)
}
