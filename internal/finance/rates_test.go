package finance

import (
	"testing"

	"studio_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func fullRateCard() models.TalentRateCard {
	return models.TalentRateCard{
		IndoorReels:       1000,
		OutdoorReels:      1200,
		StoreReels:        900,
		Live:              1500,
		Advt:              2000,
		YouTubeInfluencer: 2500,
		YouTubeVideo:      1800,
		YouTubeShorts:     800,
		Custom:            700,
	}
}

func TestTalentRateMappingIsTotal(t *testing.T) {
	charges := fullRateCard()
	want := map[string]float64{
		models.ShootTypeStudioReels:       1000,
		models.ShootTypeOutdoorReels:      1200,
		models.ShootTypeStoreReels:        900,
		models.ShootTypeLive:              1500,
		models.ShootTypeAdvt:              2000,
		models.ShootTypeYouTubeInfluencer: 2500,
		models.ShootTypeYouTubeVideo:      1800,
		models.ShootTypeYouTubeShorts:     800,
		models.ShootTypeOther:             700, // No field of its own, straight to custom
	}
	for _, shootType := range models.ShootTypes {
		got := TalentRate(charges, shootType, models.LocationStore)
		assert.Equal(t, want[shootType], got, "shoot type %q", shootType)
	}
}

func TestTalentRateFallback(t *testing.T) {
	tests := []struct {
		name         string
		charges      models.TalentRateCard
		shootType    string
		locationType string
		want         float64
	}{
		{
			name:         "zero entry falls back to custom at store location",
			charges:      models.TalentRateCard{Custom: 450},
			shootType:    models.ShootTypeLive,
			locationType: models.LocationStore,
			want:         450,
		},
		{
			name:         "zero entry prefers outdoor reel rate outdoors",
			charges:      models.TalentRateCard{OutdoorReels: 600, Custom: 450},
			shootType:    models.ShootTypeAdvt,
			locationType: models.LocationOutdoor,
			want:         600,
		},
		{
			name:         "zero entry prefers indoor reel rate in studio",
			charges:      models.TalentRateCard{IndoorReels: 550, Custom: 450},
			shootType:    models.ShootTypeYouTubeVideo,
			locationType: models.LocationStudio,
			want:         550,
		},
		{
			name:         "zero location rate still falls back to custom",
			charges:      models.TalentRateCard{Custom: 450},
			shootType:    models.ShootTypeOther,
			locationType: models.LocationStudio,
			want:         450,
		},
		{
			name:         "everything zero resolves to zero, never fails",
			charges:      models.TalentRateCard{},
			shootType:    models.ShootTypeOther,
			locationType: models.LocationOutdoor,
			want:         0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TalentRate(tt.charges, tt.shootType, tt.locationType))
		})
	}
}

func TestTalentRateNeverNegative(t *testing.T) {
	for _, shootType := range models.ShootTypes {
		for _, loc := range []string{models.LocationStudio, models.LocationOutdoor, models.LocationStore} {
			got := TalentRate(models.TalentRateCard{}, shootType, loc)
			assert.GreaterOrEqual(t, got, 0.0)
		}
	}
}

func TestCrewRate(t *testing.T) {
	charges := &models.CrewCharges{Indoor: 300, Outdoor: 400, Live: 500}
	tests := []struct {
		name         string
		member       models.CrewMember
		shootType    string
		locationType string
		want         float64
	}{
		{
			name:         "live shoot uses live charge",
			member:       models.CrewMember{Rate: 250, Charges: charges},
			shootType:    models.ShootTypeLive,
			locationType: models.LocationStudio,
			want:         500,
		},
		{
			name:         "outdoor location uses outdoor charge",
			member:       models.CrewMember{Rate: 250, Charges: charges},
			shootType:    models.ShootTypeOutdoorReels,
			locationType: models.LocationOutdoor,
			want:         400,
		},
		{
			name:         "studio location uses indoor charge",
			member:       models.CrewMember{Rate: 250, Charges: charges},
			shootType:    models.ShootTypeStudioReels,
			locationType: models.LocationStudio,
			want:         300,
		},
		{
			name:         "store location falls back to base rate",
			member:       models.CrewMember{Rate: 250, Charges: charges},
			shootType:    models.ShootTypeStoreReels,
			locationType: models.LocationStore,
			want:         250,
		},
		{
			name:         "unset live charge falls back to base rate",
			member:       models.CrewMember{Rate: 250, Charges: &models.CrewCharges{Indoor: 300}},
			shootType:    models.ShootTypeLive,
			locationType: models.LocationStore,
			want:         250,
		},
		{
			name:         "no charge card at all uses base rate",
			member:       models.CrewMember{Rate: 250},
			shootType:    models.ShootTypeLive,
			locationType: models.LocationOutdoor,
			want:         250,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CrewRate(&tt.member, tt.shootType, tt.locationType))
		})
	}
}

func TestRecipientBillingName(t *testing.T) {
	alias := "Guardian of Minor"
	talent := models.TalentMember{ID: "t1", Name: "Asha", BillingName: &alias}
	assert.Equal(t, "Asha", TalentRecipient(&talent).DisplayName())
	assert.Equal(t, "Guardian of Minor", TalentRecipient(&talent).BillingName())

	plain := models.TalentMember{ID: "t2", Name: "Rhea"}
	assert.Equal(t, "Rhea", TalentRecipient(&plain).BillingName())

	crew := models.CrewMember{ID: "c1", Name: "Vikram", Role: "DOP"}
	assert.Equal(t, "Vikram", CrewRecipient(&crew).BillingName())
}
