package services

import (
	"testing"

	"studio_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCrewData(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCrewRequest
		wantErr bool
	}{
		{
			name: "valid inhouse member",
			req:  CreateCrewRequest{Name: "Ravi", Role: "Editor", StaffType: models.StaffTypeInhouse, Rate: 800},
		},
		{
			name: "empty staff type allowed, defaulted on create",
			req:  CreateCrewRequest{Name: "Ravi", Role: "Editor"},
		},
		{
			name:    "blank name",
			req:     CreateCrewRequest{Name: "  ", Role: "Editor"},
			wantErr: true,
		},
		{
			name:    "blank role",
			req:     CreateCrewRequest{Name: "Ravi", Role: ""},
			wantErr: true,
		},
		{
			name:    "unknown staff type",
			req:     CreateCrewRequest{Name: "Ravi", Role: "Editor", StaffType: "Freelance"},
			wantErr: true,
		},
		{
			name:    "negative rate",
			req:     CreateCrewRequest{Name: "Ravi", Role: "Editor", Rate: -10},
			wantErr: true,
		},
		{
			name: "negative location charge",
			req: CreateCrewRequest{
				Name: "Ravi", Role: "Editor",
				Charges: &models.CrewCharges{Indoor: -1},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCrewData(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCrewValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCrewMemberDefaultsStaffType(t *testing.T) {
	repo := newMockCrewRepo()
	svc := NewCrewService(repo, nil)

	created, err := svc.CreateCrewMember(CreateCrewRequest{Name: "Ravi", Role: "Editor"})
	require.NoError(t, err)
	assert.Equal(t, models.StaffTypeInhouse, created.StaffType)
}

func TestCrewMemberNotFoundMapping(t *testing.T) {
	svc := NewCrewService(newMockCrewRepo(), nil)

	_, err := svc.GetCrewMemberByID("missing")
	assert.ErrorIs(t, err, ErrCrewNotFound)

	_, err = svc.UpdateCrewMember("missing", CreateCrewRequest{Name: "Ravi", Role: "Editor"})
	assert.ErrorIs(t, err, ErrCrewNotFound)

	assert.ErrorIs(t, svc.DeleteCrewMember("missing"), ErrCrewNotFound)
}
