package finance

import (
	"fmt"
	"strings"

	"studio_ops_backend/internal/models"

	"github.com/google/uuid"
)

// SyncExpenses derives a shoot's expense ledger from its assigned roster.
// Roster-linked lines are regenerated from the given talent/crew
// snapshots; a non-zero existing estimate is treated as a user override
// and survives regeneration, as do actuals, paid amounts, payment status,
// remarks and attachments. Lines whose linked member left the roster drop
// out; lines without a linked id are user-authored and always carried
// through. Result order is talent lines, crew lines, then preserved
// manual lines.
func SyncExpenses(shoot *models.Shoot, talent []models.TalentMember, crew []models.CrewMember) []models.ExpenseLine {
	talentByID := make(map[string]*models.TalentMember, len(talent))
	for i := range talent {
		talentByID[talent[i].ID] = &talent[i]
	}
	crewByID := make(map[string]*models.CrewMember, len(crew))
	for i := range crew {
		crewByID[crew[i].ID] = &crew[i]
	}

	talentCount := len(shoot.TalentIDs)
	generated := make([]models.ExpenseLine, 0, 2*(len(shoot.TalentIDs)+len(shoot.CrewIDs)))

	for _, id := range shoot.TalentIDs {
		m := talentByID[id]
		if m == nil {
			continue
		}
		rate := TalentRate(m.Charges, shoot.Type, shoot.LocationType)
		existing := findLine(shoot.Expenses, func(e *models.ExpenseLine) bool {
			return e.LinkedID != nil && *e.LinkedID == m.ID && e.Category == models.ExpenseCategoryTalent
		})
		generated = append(generated, rosterLine(existing,
			"MODEL: "+m.Name, models.ExpenseCategoryTalent, shoot.Date, rate, m.ID))

		if m.TravelCharges > 0 {
			travelID := models.TravelLinkID(m.ID)
			existingTravel := findLine(shoot.Expenses, func(e *models.ExpenseLine) bool {
				return e.LinkedID != nil && *e.LinkedID == travelID
			})
			generated = append(generated, rosterLine(existingTravel,
				"Travel: "+m.Name, models.ExpenseCategoryTravelling, shoot.Date, m.TravelCharges, travelID))
		}
	}

	for _, id := range shoot.CrewIDs {
		m := crewByID[id]
		if m == nil {
			continue
		}
		baseRate := CrewRate(m, shoot.Type, shoot.LocationType)
		multiplier := 1
		desc := strings.ToUpper(m.Role) + ": " + m.Name
		if models.IsPerTalentRole(m.Role) {
			if talentCount > 1 {
				multiplier = talentCount
			}
			desc = fmt.Sprintf("%s (%d Models)", desc, talentCount)
		}
		existing := findLine(shoot.Expenses, func(e *models.ExpenseLine) bool {
			return e.LinkedID != nil && *e.LinkedID == m.ID && e.Category != models.ExpenseCategoryTravelling
		})
		generated = append(generated, rosterLine(existing,
			desc, m.Role, shoot.Date, baseRate*float64(multiplier), m.ID))

		if m.TravelCharges > 0 {
			travelID := models.TravelLinkID(m.ID)
			existingTravel := findLine(shoot.Expenses, func(e *models.ExpenseLine) bool {
				return e.LinkedID != nil && *e.LinkedID == travelID
			})
			generated = append(generated, rosterLine(existingTravel,
				"Travel: "+m.Name, models.ExpenseCategoryTravelling, shoot.Date, m.TravelCharges, travelID))
		}
	}

	// Roster-linked lines not regenerated above are orphans (their member
	// was unassigned or deleted) and drop out of the ledger. Lines with
	// no linked id are user-authored and always survive.
	result := generated
	for _, e := range shoot.Expenses {
		if e.LinkedID == nil || *e.LinkedID == "" {
			result = append(result, e)
		}
	}
	return result
}

// rosterLine builds a roster-linked ledger line, refreshing from the
// previous line when one exists. A non-zero previous estimate is kept as
// a manual override; actuals, paid amounts, status, remark and
// attachments are never roster-derived and carry over unconditionally.
func rosterLine(existing *models.ExpenseLine, description, category, date string, estimate float64, linkedID string) models.ExpenseLine {
	line := models.ExpenseLine{
		ID:              uuid.NewString(),
		Description:     description,
		Category:        category,
		Date:            date,
		EstimatedAmount: estimate,
		PaymentStatus:   models.PaymentStatusPending,
		Attachments:     []string{},
		LinkedID:        &linkedID,
	}
	if existing == nil {
		return line
	}
	line.ID = existing.ID
	if existing.Description != "" {
		line.Description = existing.Description
	}
	if existing.EstimatedAmount > 0 {
		line.EstimatedAmount = existing.EstimatedAmount
	}
	line.ActualAmount = existing.ActualAmount
	if existing.PaymentStatus != "" {
		line.PaymentStatus = existing.PaymentStatus
	}
	line.PaidAmount = existing.PaidAmount
	line.Remark = existing.Remark
	if existing.Attachments != nil {
		line.Attachments = existing.Attachments
	}
	return line
}

func findLine(lines []models.ExpenseLine, match func(*models.ExpenseLine) bool) *models.ExpenseLine {
	for i := range lines {
		if match(&lines[i]) {
			return &lines[i]
		}
	}
	return nil
}
