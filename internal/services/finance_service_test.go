package services

import (
	"fmt"
	"testing"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type financeFixture struct {
	svc      FinanceService
	shoots   *mockShootRepo
	talent   *mockTalentRepo
	crew     *mockCrewRepo
	firms    *mockFirmRepo
	docs     *mockDocumentRepo
	shootID  string
	talentID string
	firmID   string
}

// newFinanceFixture seeds one firm mapped to the "glowbrand" page, one
// talent member and one shoot with that member on the roster and a
// synced service line of 1200.
func newFinanceFixture(t *testing.T) *financeFixture {
	t.Helper()

	f := &financeFixture{
		shoots: newMockShootRepo(),
		talent: newMockTalentRepo(),
		crew:   newMockCrewRepo(),
		firms:  newMockFirmRepo(),
		docs:   newMockDocumentRepo(),
	}
	f.svc = NewFinanceService(f.docs, f.shoots, f.talent, f.crew, f.firms, nil)

	firmID, err := f.firms.CreateFirm(nil, &models.Firm{Name: "Glow Media LLP"})
	require.NoError(t, err)
	f.firmID = firmID
	require.NoError(t, f.firms.SetPageMapping(nil, models.FirmPageMapping{Page: "glowbrand", FirmID: firmID}))

	talentID, err := f.talent.CreateTalent(nil, &models.TalentMember{
		Name:          "Asha Verma",
		Charges:       models.TalentRateCard{IndoorReels: 1000},
		TravelCharges: 150,
	})
	require.NoError(t, err)
	f.talentID = talentID

	page := "glowbrand"
	serviceLink := talentID
	travelLink := models.TravelLinkID(talentID)
	shootID, err := f.shoots.CreateShoot(nil, &models.Shoot{
		Title:        "Summer Collection",
		Type:         models.ShootTypeStudioReels,
		Page:         &page,
		Date:         "2026-03-15",
		LocationType: models.LocationStudio,
		TalentIDs:    []string{talentID},
		Status:       models.ShootStatusScheduled,
		Expenses: []models.ExpenseLine{
			{
				ID: "line-1", Description: "MODEL: Asha Verma", Category: models.ExpenseCategoryTalent,
				EstimatedAmount: 1200, LinkedID: &serviceLink,
			},
			{
				ID: "line-2", Description: "Travel: Asha Verma", Category: models.ExpenseCategoryTravelling,
				EstimatedAmount: 150, ActualAmount: 180, LinkedID: &travelLink,
			},
		},
	})
	require.NoError(t, err)
	f.shootID = shootID
	return f
}

func TestComposeDraftServiceInvoice(t *testing.T) {
	f := newFinanceFixture(t)

	draft, err := f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
		TaxRatePercent:  10,
	})
	require.NoError(t, err)

	// Base amount comes from the synced service line, not the rate card.
	assert.Equal(t, 1200.0, draft.BaseAmount)
	assert.Equal(t, 1200.0, draft.Subtotal)
	assert.Equal(t, 120.0, draft.TaxAmount)
	assert.Equal(t, 1080.0, draft.Total)
	assert.Equal(t, "Asha Verma", draft.RecipientName)
	assert.False(t, draft.Historical)

	wantNumber := "INV-" + time.Now().Format("01") + "/0001/SRV"
	assert.Equal(t, wantNumber, draft.Number)
}

func TestComposeDraftTravelPrefersActualAndZeroTax(t *testing.T) {
	f := newFinanceFixture(t)

	draft, err := f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryTravel,
		DocType:         models.DocumentTypePurchaseOrder,
		TaxRatePercent:  18,
	})
	require.NoError(t, err)

	assert.Equal(t, 180.0, draft.BaseAmount)
	assert.Equal(t, 0.0, draft.TaxRatePercent)
	assert.Equal(t, 180.0, draft.Total)
	assert.Contains(t, draft.Number, "PO-")
	assert.Contains(t, draft.Number, "/TRV")
}

func TestComposeDraftFirmResolution(t *testing.T) {
	f := newFinanceFixture(t)

	// Explicit firm id wins over the page mapping.
	otherID, err := f.firms.CreateFirm(nil, &models.Firm{Name: "Second Firm"})
	require.NoError(t, err)

	draft, err := f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		FirmID:          &otherID,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	})
	require.NoError(t, err)
	assert.Equal(t, otherID, draft.Firm.ID)

	// Without an explicit firm the shoot's page mapping decides.
	draft, err = f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	})
	require.NoError(t, err)
	assert.Equal(t, f.firmID, draft.Firm.ID)
}

func TestComposeDraftCountsPriorDocsPerFirm(t *testing.T) {
	f := newFinanceFixture(t)

	otherID, err := f.firms.CreateFirm(nil, &models.Firm{Name: "Second Firm"})
	require.NoError(t, err)

	// Three documents already issued by the second firm must not
	// advance the first firm's sequence.
	for i := 0; i < 3; i++ {
		_, err := f.docs.CreateDocument(nil, &models.Document{
			ID:     fmt.Sprintf("other-doc-%d", i),
			FirmID: otherID,
			Type:   models.DocumentTypeInvoice,
		})
		require.NoError(t, err)
	}

	req := ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	}
	draft, err := f.svc.ComposeDraft(req)
	require.NoError(t, err)
	assert.Contains(t, draft.Number, "/0001/", "page-mapped firm has no prior documents")

	withOther := req
	withOther.FirmID = &otherID
	otherDraft, err := f.svc.ComposeDraft(withOther)
	require.NoError(t, err)
	assert.Contains(t, otherDraft.Number, "/0004/")
}

func TestComposeDraftUnmappedPage(t *testing.T) {
	f := newFinanceFixture(t)

	shoot, err := f.shoots.GetShootByID(f.shootID)
	require.NoError(t, err)
	unmapped := "unmapped-page"
	shoot.Page = &unmapped

	_, err = f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	})
	assert.ErrorIs(t, err, ErrFirmNotResolved)
}

func TestComposeDraftRecipientOffRoster(t *testing.T) {
	f := newFinanceFixture(t)

	strayID, err := f.talent.CreateTalent(nil, &models.TalentMember{Name: "Not On Shoot"})
	require.NoError(t, err)

	_, err = f.svc.ComposeDraft(ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     strayID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	})
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestComposeDraftValidation(t *testing.T) {
	f := newFinanceFixture(t)

	base := ComposeDraftRequest{
		ShootID:         f.shootID,
		RecipientID:     f.talentID,
		RecipientKind:   RecipientKindTalent,
		BillingCategory: models.BillingCategoryService,
		DocType:         models.DocumentTypeInvoice,
	}

	badType := base
	badType.DocType = "QUOTE"
	_, err := f.svc.ComposeDraft(badType)
	assert.ErrorIs(t, err, ErrFinanceValidation)

	badCategory := base
	badCategory.BillingCategory = "Equipment"
	_, err = f.svc.ComposeDraft(badCategory)
	assert.ErrorIs(t, err, ErrFinanceValidation)

	badKind := base
	badKind.RecipientKind = "vendor"
	_, err = f.svc.ComposeDraft(badKind)
	assert.ErrorIs(t, err, ErrFinanceValidation)

	badTax := base
	badTax.TaxRatePercent = 101
	_, err = f.svc.ComposeDraft(badTax)
	assert.ErrorIs(t, err, ErrFinanceValidation)
}

func TestGetDocumentByIDReconstructsHistorical(t *testing.T) {
	f := newFinanceFixture(t)

	recipientID := f.talentID
	recipientName := "Asha Verma"
	doc := &models.Document{
		ID:              "doc-1",
		Number:          "INV-03/0001/SRV",
		Date:            "2026-03-20",
		ShootID:         f.shootID,
		FirmID:          f.firmID,
		RecipientID:     &recipientID,
		RecipientName:   &recipientName,
		BillingCategory: models.BillingCategoryService,
		Items: []models.DocumentItem{
			{Description: models.ShootTypeStudioReels, Quantity: 1, Rate: 1200, Amount: 1200},
		},
		Total: 1080,
		Type:  models.DocumentTypeInvoice,
	}
	_, err := f.docs.CreateDocument(nil, doc)
	require.NoError(t, err)

	draft, err := f.svc.GetDocumentByID("doc-1")
	require.NoError(t, err)

	assert.True(t, draft.Historical)
	assert.Equal(t, 1200.0, draft.BaseAmount)
	assert.Equal(t, 1080.0, draft.Total)
	assert.InDelta(t, 10.0, draft.TaxRatePercent, 0.0001)
	assert.Equal(t, "INV-03/0001/SRV", draft.Number)
}

func TestGetDocumentByIDNotFound(t *testing.T) {
	f := newFinanceFixture(t)

	_, err := f.svc.GetDocumentByID("missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
