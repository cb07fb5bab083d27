package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTalentService struct {
	members map[string]*models.TalentMember
}

func newStubTalentService() *stubTalentService {
	return &stubTalentService{members: map[string]*models.TalentMember{}}
}

func (s *stubTalentService) CreateTalent(req services.CreateTalentRequest) (*models.TalentMember, error) {
	if req.Name == "" {
		return nil, services.ErrTalentValidation
	}
	member := &models.TalentMember{ID: "talent-1", Name: req.Name, Charges: req.Charges}
	s.members[member.ID] = member
	return member, nil
}

func (s *stubTalentService) GetTalentByID(id string) (*models.TalentMember, error) {
	member, ok := s.members[id]
	if !ok {
		return nil, services.ErrTalentNotFound
	}
	return member, nil
}

func (s *stubTalentService) GetTalent(page, pageSize int, _ *string) ([]models.TalentMember, int, error) {
	out := make([]models.TalentMember, 0, len(s.members))
	for _, member := range s.members {
		out = append(out, *member)
	}
	return out, len(out), nil
}

func (s *stubTalentService) UpdateTalent(id string, req services.UpdateTalentRequest) (*models.TalentMember, error) {
	if _, ok := s.members[id]; !ok {
		return nil, services.ErrTalentNotFound
	}
	member := &models.TalentMember{ID: id, Name: req.Name, Charges: req.Charges}
	s.members[id] = member
	return member, nil
}

func (s *stubTalentService) DeleteTalent(id string) error {
	if _, ok := s.members[id]; !ok {
		return services.ErrTalentNotFound
	}
	delete(s.members, id)
	return nil
}

func setupTalentRouter(svc services.TalentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewTalentHandler(svc)
	engine.POST("/talent", h.CreateTalent)
	engine.GET("/talent", h.GetTalent)
	engine.GET("/talent/:id", h.GetTalentByID)
	engine.PUT("/talent/:id", h.UpdateTalent)
	engine.DELETE("/talent/:id", h.DeleteTalent)
	return engine
}

func TestCreateTalentHandler(t *testing.T) {
	engine := setupTalentRouter(newStubTalentService())

	body, err := json.Marshal(gin.H{
		"name":    "Asha Verma",
		"charges": gin.H{"indoor_reels": 1000},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/talent", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created models.TalentMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Asha Verma", created.Name)
	assert.NotEmpty(t, created.ID)
}

func TestCreateTalentHandlerRejectsMissingName(t *testing.T) {
	engine := setupTalentRouter(newStubTalentService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/talent", bytes.NewReader([]byte(`{"charges":{}}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTalentByIDHandlerNotFound(t *testing.T) {
	engine := setupTalentRouter(newStubTalentService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/talent/missing", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTalentHandlerListEnvelope(t *testing.T) {
	svc := newStubTalentService()
	svc.members["talent-1"] = &models.TalentMember{ID: "talent-1", Name: "Asha Verma"}
	engine := setupTalentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/talent?page=1&page_size=10", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data     []models.TalentMember `json:"data"`
		Total    int                   `json:"total"`
		Page     int                   `json:"page"`
		PageSize int                   `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, 1, envelope.Total)
	assert.Equal(t, 10, envelope.PageSize)
}

func TestDeleteTalentHandler(t *testing.T) {
	svc := newStubTalentService()
	svc.members["talent-1"] = &models.TalentMember{ID: "talent-1", Name: "Asha Verma"}
	engine := setupTalentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/talent/talent-1", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.members)
}
