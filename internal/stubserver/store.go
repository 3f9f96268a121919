package stubserver

import (
	"strings"
	"sync"
	"time"

	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	user         models.User
	passwordHash []byte
}

// store is the in-memory state behind the stub backend. It exists for local
// development and end-to-end tests only; restarting the server resets it.
type store struct {
	mu       sync.RWMutex
	accounts map[string]*account // keyed by email
	assets   map[string]*models.Asset
	loans    map[string]*models.Loan
	reports  map[string]*models.DamageReport
}

func newStore() *store {
	s := &store{
		accounts: make(map[string]*account),
		assets:   make(map[string]*models.Asset),
		loans:    make(map[string]*models.Loan),
		reports:  make(map[string]*models.DamageReport),
	}
	s.seed()
	return s
}

func (s *store) seed() {
	seedUsers := []struct {
		name, email string
		role        roles.Role
	}{
		{"Budi Santoso", "budi@kampus.ac.id", roles.Mahasiswa},
		{"Rina Wijaya", "rina@kampus.ac.id", roles.Dosen},
		{"Agus Pratama", "agus@kampus.ac.id", roles.Staf},
		{"Sari Lestari", "sari@kampus.ac.id", roles.StafBUF},
		{"Admin BUF", "admin@kampus.ac.id", roles.AdminBUF},
		{"Kepala BUF", "kepala@kampus.ac.id", roles.KepalaBUF},
	}
	// Shared dev password for every seeded account.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	for _, u := range seedUsers {
		s.accounts[u.email] = &account{
			user: models.User{
				ID:    uuid.NewString(),
				Name:  u.name,
				Email: u.email,
				Role:  u.role.String(),
			},
			passwordHash: hash,
		}
	}

	seedAssets := []models.Asset{
		{
			ID: "a1", Name: "Ruang Seminar Lt. 2", Category: models.CategoryRuangan,
			Location: "Gedung A", TotalStock: 1, AvailableStock: 1,
			Conditions: []models.ConditionCount{{Condition: models.CondBaik, Quantity: 1}},
		},
		{
			ID: "a2", Name: "Proyektor Epson", Category: models.CategoryFasilitas,
			Location: "Gudang BUF", TotalStock: 10, AvailableStock: 8,
			Conditions: []models.ConditionCount{
				{Condition: models.CondBaik, Quantity: 9},
				{Condition: models.CondRusakRingan, Quantity: 1},
			},
		},
		{
			ID: "a3", Name: "Kursi Lipat", Category: models.CategoryFasilitas,
			Location: "Gudang BUF", TotalStock: 200, AvailableStock: 150,
			Conditions: []models.ConditionCount{
				{Condition: models.CondBaik, Quantity: 190},
				{Condition: models.CondRusakBerat, Quantity: 5},
			},
		},
	}
	for i := range seedAssets {
		asset := seedAssets[i]
		s.assets[asset.ID] = &asset
	}
}

func (s *store) authenticate(email, password string) (*models.User, bool) {
	s.mu.RLock()
	acc, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	user := acc.user
	return &user, true
}

func (s *store) userByID(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.user.ID == id {
			user := acc.user
			return &user, true
		}
	}
	return nil, false
}

func (s *store) listAssets(search, category string) []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Asset
	for _, asset := range s.assets {
		if category != "" && asset.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(asset.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *asset)
	}
	return out
}

func (s *store) getAsset(id string) (*models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[id]
	if !ok {
		return nil, false
	}
	copied := *asset
	return &copied, true
}

func (s *store) putAsset(asset *models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	copied := *asset
	s.assets[asset.ID] = &copied
}

func (s *store) deleteAsset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[id]; !ok {
		return false
	}
	delete(s.assets, id)
	return true
}

func (s *store) insertLoan(loan *models.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loan.ID = uuid.NewString()
	loan.CreatedAt = time.Now()
	loan.UpdatedAt = loan.CreatedAt
	copied := *loan
	s.loans[loan.ID] = &copied
}

func (s *store) getLoan(id string) (*models.Loan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loan, ok := s.loans[id]
	if !ok {
		return nil, false
	}
	copied := *loan
	return &copied, true
}

func (s *store) updateLoan(loan *models.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loan.UpdatedAt = time.Now()
	copied := *loan
	s.loans[loan.ID] = &copied
}

func (s *store) deleteLoan(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loans[id]; !ok {
		return false
	}
	delete(s.loans, id)
	return true
}

func (s *store) listLoans(filter func(*models.Loan) bool) []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Loan
	for _, loan := range s.loans {
		if filter == nil || filter(loan) {
			out = append(out, *loan)
		}
	}
	return out
}

func (s *store) insertReport(report *models.DamageReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.ID = uuid.NewString()
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	copied := *report
	s.reports[report.ID] = &copied
}

func (s *store) getReport(id string) (*models.DamageReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, false
	}
	copied := *report
	return &copied, true
}

func (s *store) updateReport(report *models.DamageReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.UpdatedAt = time.Now()
	copied := *report
	s.reports[report.ID] = &copied
}

func (s *store) deleteReport(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return false
	}
	delete(s.reports, id)
	return true
}

func (s *store) listReports(filter func(*models.DamageReport) bool) []models.DamageReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DamageReport
	for _, report := range s.reports {
		if filter == nil || filter(report) {
			out = append(out, *report)
		}
	}
	return out
}
