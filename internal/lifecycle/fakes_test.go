package lifecycle_test

import (
	"context"
	"sync"
	"time"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
)

// In-memory stand-ins for the gorm stores. They reproduce the store
// contracts, including the uniqueness constraint and the serialized accept
// primitive, so the engine can be exercised without a database.

type postingKey struct {
	kind lifecycle.PostingKind
	id   uint
}

type fakeResolver struct {
	mu       sync.Mutex
	postings map[postingKey]*lifecycle.PostingRef
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{postings: make(map[postingKey]*lifecycle.PostingRef)}
}

func (r *fakeResolver) add(ref *lifecycle.PostingRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postings[postingKey{ref.Kind, ref.ID}] = ref
}

func (r *fakeResolver) remove(kind lifecycle.PostingKind, id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.postings, postingKey{kind, id})
}

func (r *fakeResolver) ResolvePosting(ctx context.Context, kind lifecycle.PostingKind, id uint) (*lifecycle.PostingRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref, ok := r.postings[postingKey{kind, id}]
	if !ok {
		return nil, apperrors.NotFound("posting not found")
	}
	copied := *ref
	return &copied, nil
}

type memCandidacies struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*models.Application
}

func newMemCandidacies() *memCandidacies {
	return &memCandidacies{nextID: 1, rows: make(map[uint]*models.Application)}
}

func (s *memCandidacies) Create(ctx context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.UserID == app.UserID && row.PostingKind == app.PostingKind && row.PostingID == app.PostingID {
			return apperrors.Duplicate("already applied to this posting")
		}
	}
	app.ID = s.nextID
	s.nextID++
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	stored := *app
	s.rows[app.ID] = &stored
	return nil
}

func (s *memCandidacies) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NotFound("application not found")
	}
	copied := *row
	return &copied, nil
}

func (s *memCandidacies) UpdateStatus(ctx context.Context, id uint, status lifecycle.Status) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NotFound("application not found")
	}
	row.Status = string(status)
	row.UpdatedAt = time.Now()
	if lifecycle.IsDecided(status) {
		row.SeenByApplicant = false
	}
	copied := *row
	return &copied, nil
}

func (s *memCandidacies) AcceptExclusive(ctx context.Context, id uint) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NotFound("application not found")
	}
	status, err := lifecycle.ParseStatus(target.Status)
	if err != nil || !lifecycle.IsReviewable(status) {
		return nil, apperrors.Conflict("application is no longer reviewable")
	}
	for _, row := range s.rows {
		if row.ID == id || row.PostingKind != target.PostingKind || row.PostingID != target.PostingID {
			continue
		}
		if row.Status != string(lifecycle.StatusAccepted) {
			row.Status = string(lifecycle.StatusRejected)
			row.SeenByApplicant = false
			row.UpdatedAt = time.Now()
		}
	}
	target.Status = string(lifecycle.StatusAccepted)
	target.SeenByApplicant = false
	target.UpdatedAt = time.Now()
	copied := *target
	return &copied, nil
}

func (s *memCandidacies) ListByApplicant(ctx context.Context, userID uint) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var apps []models.Application
	for _, row := range s.rows {
		if row.UserID == userID {
			apps = append(apps, *row)
		}
	}
	return apps, nil
}

func (s *memCandidacies) ListByOwner(ctx context.Context, companyID uint) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var apps []models.Application
	for _, row := range s.rows {
		if row.CompanyID == companyID {
			apps = append(apps, *row)
		}
	}
	return apps, nil
}

func (s *memCandidacies) CountUnread(ctx context.Context, accountID uint, role lifecycle.Role) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, row := range s.rows {
		if s.unread(row, accountID, role) {
			count++
		}
	}
	return count, nil
}

func (s *memCandidacies) MarkRead(ctx context.Context, accountID uint, role lifecycle.Role, ids []uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idSet := make(map[uint]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var updated int64
	for _, row := range s.rows {
		if len(ids) > 0 {
			owned := (role == lifecycle.RoleApplicant && row.UserID == accountID) ||
				(role == lifecycle.RoleOwner && row.CompanyID == accountID)
			if !owned || !idSet[row.ID] {
				continue
			}
		} else if !s.unread(row, accountID, role) {
			continue
		}
		if role == lifecycle.RoleApplicant && !row.SeenByApplicant {
			row.SeenByApplicant = true
			updated++
		}
		if role == lifecycle.RoleOwner && !row.SeenByOwner {
			row.SeenByOwner = true
			updated++
		}
	}
	return updated, nil
}

func (s *memCandidacies) unread(row *models.Application, accountID uint, role lifecycle.Role) bool {
	status := lifecycle.Status(row.Status)
	switch role {
	case lifecycle.RoleApplicant:
		return row.UserID == accountID && lifecycle.IsDecided(status) && !row.SeenByApplicant
	case lifecycle.RoleOwner:
		return row.CompanyID == accountID && lifecycle.IsReviewable(status) && !row.SeenByOwner
	}
	return false
}

type memCompleted struct {
	mu      sync.Mutex
	nextID  uint
	rows    map[uint]*models.CompletedProject
	failing bool // when set, every mutation fails
}

func newMemCompleted() *memCompleted {
	return &memCompleted{nextID: 1, rows: make(map[uint]*models.CompletedProject)}
}

func (s *memCompleted) Create(ctx context.Context, cw *models.CompletedProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return apperrors.Internal("storage unavailable", nil)
	}
	for _, row := range s.rows {
		if row.UserID == cw.UserID && row.PostingKind == cw.PostingKind && row.PostingID == cw.PostingID {
			return nil
		}
	}
	cw.ID = s.nextID
	s.nextID++
	stored := *cw
	s.rows[cw.ID] = &stored
	return nil
}

func (s *memCompleted) DeleteForPosting(ctx context.Context, userID uint, kind lifecycle.PostingKind, postingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return apperrors.Internal("storage unavailable", nil)
	}
	for id, row := range s.rows {
		if row.UserID == userID && row.PostingKind == string(kind) && row.PostingID == postingID {
			delete(s.rows, id)
		}
	}
	return nil
}

func (s *memCompleted) ListByApplicant(ctx context.Context, userID uint) ([]models.CompletedProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var projects []models.CompletedProject
	for _, row := range s.rows {
		if row.UserID == userID {
			projects = append(projects, *row)
		}
	}
	return projects, nil
}

func (s *memCompleted) DeleteByID(ctx context.Context, userID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return apperrors.NotFound("completed project not found")
	}
	delete(s.rows, id)
	return nil
}

func (s *memCompleted) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type fakeAccount struct {
	Name  string
	Email string
}

type fakeAccounts struct {
	mu    sync.Mutex
	users map[uint]*fakeAccount
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{users: make(map[uint]*fakeAccount)}
}

func (s *fakeAccounts) add(id uint, name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &fakeAccount{Name: name, Email: email}
}

func (s *fakeAccounts) get(id uint) fakeAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return *u
	}
	return fakeAccount{}
}

func (s *fakeAccounts) BackfillUserContact(ctx context.Context, userID uint, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	if name != "" && user.Name == "" {
		user.Name = name
	}
	if email != "" && user.Email == "" {
		user.Email = email
	}
	return nil
}
