package finance

import (
	"studio_ops_backend/internal/models"
)

// TalentRate resolves a talent member's rate for a shoot. The shoot type
// maps to its rate-card field; a zero entry falls through to the
// location's reel rate and finally to the custom rate. Resolution never
// fails: every chain bottoms out at a numeric amount, possibly zero.
func TalentRate(charges models.TalentRateCard, shootType, locationType string) float64 {
	var rate float64
	switch shootType {
	case models.ShootTypeLive:
		rate = charges.Live
	case models.ShootTypeStudioReels:
		rate = charges.IndoorReels
	case models.ShootTypeOutdoorReels:
		rate = charges.OutdoorReels
	case models.ShootTypeStoreReels:
		rate = charges.StoreReels
	case models.ShootTypeAdvt:
		rate = charges.Advt
	case models.ShootTypeYouTubeInfluencer:
		rate = charges.YouTubeInfluencer
	case models.ShootTypeYouTubeVideo:
		rate = charges.YouTubeVideo
	case models.ShootTypeYouTubeShorts:
		rate = charges.YouTubeShorts
	}
	// "Other" and unmapped types land here with rate 0.
	if rate == 0 {
		switch locationType {
		case models.LocationOutdoor:
			rate = charges.OutdoorReels
			if rate == 0 {
				rate = charges.Custom
			}
		case models.LocationStudio:
			rate = charges.IndoorReels
			if rate == 0 {
				rate = charges.Custom
			}
		default:
			rate = charges.Custom
		}
	}
	return rate
}

// CrewRate resolves a crew member's per-engagement rate. The optional
// location-keyed charges take precedence; the flat base rate is the
// final fallback.
func CrewRate(m *models.CrewMember, shootType, locationType string) float64 {
	if m.Charges != nil {
		if shootType == models.ShootTypeLive && m.Charges.Live > 0 {
			return m.Charges.Live
		}
		if locationType == models.LocationOutdoor && m.Charges.Outdoor > 0 {
			return m.Charges.Outdoor
		}
		if locationType == models.LocationStudio && m.Charges.Indoor > 0 {
			return m.Charges.Indoor
		}
	}
	return m.Rate
}
