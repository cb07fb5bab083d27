package services

import (
	"testing"

	"studio_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTalentData(t *testing.T) {
	valid := CreateTalentRequest{
		Name:    "Asha Verma",
		Charges: models.TalentRateCard{IndoorReels: 1000, Custom: 500},
	}
	assert.NoError(t, validateTalentData(valid))

	blank := valid
	blank.Name = "   "
	assert.ErrorIs(t, validateTalentData(blank), ErrTalentValidation)

	negative := valid
	negative.Charges.Live = -1
	assert.ErrorIs(t, validateTalentData(negative), ErrTalentValidation)

	negativeTravel := valid
	negativeTravel.TravelCharges = -50
	assert.ErrorIs(t, validateTalentData(negativeTravel), ErrTalentValidation)
}

func TestCreateTalentAssignsIDAndTrimsName(t *testing.T) {
	repo := newMockTalentRepo()
	svc := NewTalentService(repo, nil)

	created, err := svc.CreateTalent(CreateTalentRequest{
		Name:    "  Asha Verma  ",
		Charges: models.TalentRateCard{IndoorReels: 1000},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Asha Verma", created.Name)
}

func TestCreateTalentRejectsInvalidData(t *testing.T) {
	repo := newMockTalentRepo()
	svc := NewTalentService(repo, nil)

	_, err := svc.CreateTalent(CreateTalentRequest{Name: ""})
	assert.ErrorIs(t, err, ErrTalentValidation)
	assert.Empty(t, repo.members)
}

func TestGetTalentByIDNotFound(t *testing.T) {
	svc := NewTalentService(newMockTalentRepo(), nil)

	_, err := svc.GetTalentByID("missing")
	assert.ErrorIs(t, err, ErrTalentNotFound)
}

func TestGetTalentClampsPagination(t *testing.T) {
	repo := newMockTalentRepo()
	svc := NewTalentService(repo, nil)

	_, _, err := svc.GetTalent(0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastPage)
	assert.Equal(t, 20, repo.lastPageSize)

	_, _, err = svc.GetTalent(3, 500, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastPage)
	assert.Equal(t, 20, repo.lastPageSize)
}

func TestUpdateTalentUnknownID(t *testing.T) {
	svc := NewTalentService(newMockTalentRepo(), nil)

	_, err := svc.UpdateTalent("missing", CreateTalentRequest{Name: "Asha"})
	assert.ErrorIs(t, err, ErrTalentNotFound)
}
