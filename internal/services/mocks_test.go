package services

import (
	"fmt"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/repositories"
)

// In-memory repository fakes. They ignore the SQLExecutor argument, so
// service methods that pass s.db straight through can run without a
// database. Methods that open real transactions are covered elsewhere.

type mockTalentRepo struct {
	members map[string]*models.TalentMember
	nextID  int

	lastPage     int
	lastPageSize int

	createErr error
	getErr    error
}

func newMockTalentRepo() *mockTalentRepo {
	return &mockTalentRepo{members: map[string]*models.TalentMember{}, nextID: 1}
}

func (m *mockTalentRepo) CreateTalent(_ repositories.SQLExecutor, talent *models.TalentMember) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	id := fmt.Sprintf("talent-%d", m.nextID)
	m.nextID++
	talent.ID = id
	copied := *talent
	m.members[id] = &copied
	return id, nil
}

func (m *mockTalentRepo) GetTalentByID(id string) (*models.TalentMember, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	member, ok := m.members[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return member, nil
}

func (m *mockTalentRepo) GetTalent(page, pageSize int, _ *string) ([]models.TalentMember, int, error) {
	m.lastPage = page
	m.lastPageSize = pageSize
	out := make([]models.TalentMember, 0, len(m.members))
	for _, member := range m.members {
		out = append(out, *member)
	}
	return out, len(out), nil
}

func (m *mockTalentRepo) GetTalentByIDs(ids []string) ([]models.TalentMember, error) {
	out := []models.TalentMember{}
	for _, id := range ids {
		if member, ok := m.members[id]; ok {
			out = append(out, *member)
		}
	}
	return out, nil
}

func (m *mockTalentRepo) UpdateTalent(_ repositories.SQLExecutor, talent *models.TalentMember) error {
	if _, ok := m.members[talent.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *talent
	m.members[talent.ID] = &copied
	return nil
}

func (m *mockTalentRepo) DeleteTalent(_ repositories.SQLExecutor, id string) error {
	if _, ok := m.members[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.members, id)
	return nil
}

type mockCrewRepo struct {
	members map[string]*models.CrewMember
	nextID  int
}

func newMockCrewRepo() *mockCrewRepo {
	return &mockCrewRepo{members: map[string]*models.CrewMember{}, nextID: 1}
}

func (m *mockCrewRepo) CreateCrewMember(_ repositories.SQLExecutor, member *models.CrewMember) (string, error) {
	id := fmt.Sprintf("crew-%d", m.nextID)
	m.nextID++
	member.ID = id
	copied := *member
	m.members[id] = &copied
	return id, nil
}

func (m *mockCrewRepo) GetCrewMemberByID(id string) (*models.CrewMember, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return member, nil
}

func (m *mockCrewRepo) GetCrewMembers(page, pageSize int, _ *string, _ *string) ([]models.CrewMember, int, error) {
	out := make([]models.CrewMember, 0, len(m.members))
	for _, member := range m.members {
		out = append(out, *member)
	}
	return out, len(out), nil
}

func (m *mockCrewRepo) GetCrewMembersByIDs(ids []string) ([]models.CrewMember, error) {
	out := []models.CrewMember{}
	for _, id := range ids {
		if member, ok := m.members[id]; ok {
			out = append(out, *member)
		}
	}
	return out, nil
}

func (m *mockCrewRepo) UpdateCrewMember(_ repositories.SQLExecutor, member *models.CrewMember) error {
	if _, ok := m.members[member.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *member
	m.members[member.ID] = &copied
	return nil
}

func (m *mockCrewRepo) DeleteCrewMember(_ repositories.SQLExecutor, id string) error {
	if _, ok := m.members[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.members, id)
	return nil
}

type mockShootRepo struct {
	shoots map[string]*models.Shoot

	lastFilters models.ShootFilters
}

func newMockShootRepo() *mockShootRepo {
	return &mockShootRepo{shoots: map[string]*models.Shoot{}}
}

func (m *mockShootRepo) CreateShoot(_ repositories.SQLExecutor, shoot *models.Shoot) (string, error) {
	id := fmt.Sprintf("shoot-%d", len(m.shoots)+1)
	shoot.ID = id
	copied := *shoot
	m.shoots[id] = &copied
	return id, nil
}

func (m *mockShootRepo) GetShootByID(id string) (*models.Shoot, error) {
	shoot, ok := m.shoots[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return shoot, nil
}

func (m *mockShootRepo) GetShoots(filters models.ShootFilters) ([]models.Shoot, int, error) {
	m.lastFilters = filters
	out := make([]models.Shoot, 0, len(m.shoots))
	for _, shoot := range m.shoots {
		out = append(out, *shoot)
	}
	return out, len(out), nil
}

func (m *mockShootRepo) UpdateShoot(_ repositories.SQLExecutor, shoot *models.Shoot) error {
	if _, ok := m.shoots[shoot.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *shoot
	m.shoots[shoot.ID] = &copied
	return nil
}

func (m *mockShootRepo) UpdateShootStatus(_ repositories.SQLExecutor, id, status string) error {
	shoot, ok := m.shoots[id]
	if !ok {
		return repositories.ErrNotFound
	}
	shoot.Status = status
	return nil
}

func (m *mockShootRepo) ReplaceExpenses(_ repositories.SQLExecutor, shootID string, expenses []models.ExpenseLine) error {
	shoot, ok := m.shoots[shootID]
	if !ok {
		return repositories.ErrNotFound
	}
	shoot.Expenses = expenses
	return nil
}

func (m *mockShootRepo) DeleteShoot(_ repositories.SQLExecutor, id string) error {
	if _, ok := m.shoots[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.shoots, id)
	return nil
}

type mockFirmRepo struct {
	firms  map[string]*models.Firm
	byPage map[string]string
}

func newMockFirmRepo() *mockFirmRepo {
	return &mockFirmRepo{firms: map[string]*models.Firm{}, byPage: map[string]string{}}
}

func (m *mockFirmRepo) CreateFirm(_ repositories.SQLExecutor, firm *models.Firm) (string, error) {
	id := fmt.Sprintf("firm-%d", len(m.firms)+1)
	firm.ID = id
	copied := *firm
	m.firms[id] = &copied
	return id, nil
}

func (m *mockFirmRepo) GetFirmByID(id string) (*models.Firm, error) {
	firm, ok := m.firms[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return firm, nil
}

func (m *mockFirmRepo) GetFirms() ([]models.Firm, error) {
	out := make([]models.Firm, 0, len(m.firms))
	for _, firm := range m.firms {
		out = append(out, *firm)
	}
	return out, nil
}

func (m *mockFirmRepo) GetFirmByPage(page string) (*models.Firm, error) {
	firmID, ok := m.byPage[page]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return m.GetFirmByID(firmID)
}

func (m *mockFirmRepo) UpdateFirm(_ repositories.SQLExecutor, firm *models.Firm) error {
	if _, ok := m.firms[firm.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *firm
	m.firms[firm.ID] = &copied
	return nil
}

func (m *mockFirmRepo) DeleteFirm(_ repositories.SQLExecutor, id string) error {
	if _, ok := m.firms[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.firms, id)
	return nil
}

func (m *mockFirmRepo) GetPageMappings() ([]models.FirmPageMapping, error) {
	out := []models.FirmPageMapping{}
	for page, firmID := range m.byPage {
		out = append(out, models.FirmPageMapping{Page: page, FirmID: firmID})
	}
	return out, nil
}

func (m *mockFirmRepo) SetPageMapping(_ repositories.SQLExecutor, mapping models.FirmPageMapping) error {
	m.byPage[mapping.Page] = mapping.FirmID
	return nil
}

type mockDocumentRepo struct {
	docs map[string]*models.Document
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: map[string]*models.Document{}}
}

// CreateDocument appends unconditionally. The registry never rejects a
// duplicate number; numbers restart per firm.
func (m *mockDocumentRepo) CreateDocument(_ repositories.SQLExecutor, doc *models.Document) (string, error) {
	copied := *doc
	m.docs[doc.ID] = &copied
	return doc.ID, nil
}

func (m *mockDocumentRepo) GetDocumentByID(id string) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return doc, nil
}

func (m *mockDocumentRepo) GetDocuments(filters models.DocumentFilters) ([]models.Document, int, error) {
	out := []models.Document{}
	for _, doc := range m.docs {
		if filters.FirmID != nil && doc.FirmID != *filters.FirmID {
			continue
		}
		if filters.DocType != nil && doc.Type != *filters.DocType {
			continue
		}
		out = append(out, *doc)
	}
	return out, len(out), nil
}

func (m *mockDocumentRepo) CountByFirm(_ repositories.SQLExecutor, firmID string) (int, error) {
	count := 0
	for _, doc := range m.docs {
		if doc.FirmID == firmID {
			count++
		}
	}
	return count, nil
}

type mockAuthRepo struct {
	users  map[string]*models.User
	nextID int
}

func newMockAuthRepo() *mockAuthRepo {
	return &mockAuthRepo{users: map[string]*models.User{}}
}

func (m *mockAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) (string, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return "", repositories.ErrDuplicateKey
		}
	}
	if user.ID == "" {
		m.nextID++
		user.ID = fmt.Sprintf("user-%d", m.nextID)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.IsActive = true
	copied := *user
	m.users[user.ID] = &copied
	return user.ID, nil
}

func (m *mockAuthRepo) FindUserByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockAuthRepo) FindUserByID(userID string) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockAuthRepo) GetUsers() ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockAuthRepo) DeleteUser(_ repositories.SQLExecutor, userID string) error {
	if _, ok := m.users[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.users, userID)
	return nil
}
