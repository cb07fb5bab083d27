package services

import (
	"testing"

	"studio_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShootRequest() CreateShootRequest {
	return CreateShootRequest{
		Title:        "Summer Collection",
		Type:         models.ShootTypeStudioReels,
		Date:         "2026-03-15",
		LocationType: models.LocationStudio,
		Status:       models.ShootStatusPlanning,
	}
}

func TestValidateShootData(t *testing.T) {
	assert.NoError(t, validateShootData(validShootRequest()))

	blank := validShootRequest()
	blank.Title = " "
	assert.ErrorIs(t, validateShootData(blank), ErrShootValidation)

	badType := validShootRequest()
	badType.Type = "Documentary"
	assert.ErrorIs(t, validateShootData(badType), ErrShootValidation)

	badLocation := validShootRequest()
	badLocation.LocationType = "Rooftop"
	assert.ErrorIs(t, validateShootData(badLocation), ErrShootValidation)

	badStatus := validShootRequest()
	badStatus.Status = "Paused"
	assert.ErrorIs(t, validateShootData(badStatus), ErrInvalidShootStatus)

	noStatus := validShootRequest()
	noStatus.Status = ""
	assert.NoError(t, validateShootData(noStatus))

	negativeBudget := validShootRequest()
	negativeBudget.Budget = -1
	assert.ErrorIs(t, validateShootData(negativeBudget), ErrShootValidation)
}

func TestGetShootByIDNotFound(t *testing.T) {
	svc := NewShootService(newMockShootRepo(), newMockTalentRepo(), newMockCrewRepo(), nil)

	_, err := svc.GetShootByID("missing")
	assert.ErrorIs(t, err, ErrShootNotFound)
}

func TestGetShootsClampsPagination(t *testing.T) {
	repo := newMockShootRepo()
	svc := NewShootService(repo, newMockTalentRepo(), newMockCrewRepo(), nil)

	_, _, err := svc.GetShoots(models.ShootFilters{PageNum: -2, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastFilters.PageNum)
	assert.Equal(t, 20, repo.lastFilters.PageSize)
}

func TestSyncLedgerSkipsUnresolvedRosterIDs(t *testing.T) {
	talentRepo := newMockTalentRepo()
	member := &models.TalentMember{
		Name:          "Asha Verma",
		Charges:       models.TalentRateCard{IndoorReels: 1000},
		TravelCharges: 150,
	}
	id, err := talentRepo.CreateTalent(nil, member)
	require.NoError(t, err)

	svc := NewShootService(newMockShootRepo(), talentRepo, newMockCrewRepo(), nil).(*shootService)

	shoot := &models.Shoot{
		Title:        "Summer Collection",
		Type:         models.ShootTypeStudioReels,
		LocationType: models.LocationStudio,
		TalentIDs:    []string{id, "ghost-id"},
	}
	synced, err := svc.syncLedger(shoot)
	require.NoError(t, err)

	linked := 0
	for _, line := range synced {
		if line.LinkedID != nil {
			linked++
		}
	}
	// One service line plus one travel line for the resolvable member,
	// nothing for the ghost id.
	assert.Equal(t, 2, linked)
}
