package core

import (
	"context"
	"fmt"
	"sync"

	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/models"
)

// fakeUserRepository is an in-memory db.UserRepository. Error fields, when
// set, are returned by the corresponding method before touching state.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.UserProfile

	getErr       error
	createErr    error
	updateErr    error
	updateSubErr error
	setWardErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*models.UserProfile{}}
}

func (r *fakeUserRepository) put(user *models.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *fakeUserRepository) GetByID(_ context.Context, userID string) (*models.UserProfile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *user
	cp.Wardrobe = append([]models.Garment(nil), user.Wardrobe...)
	return &cp, nil
}

func (r *fakeUserRepository) Create(_ context.Context, user *models.UserProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("user '%s' already exists", user.ID)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *models.UserProfile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.put(user)
	return nil
}

func (r *fakeUserRepository) UpdateSubscription(_ context.Context, userID string, sub *models.Subscription) error {
	if r.updateSubErr != nil {
		return r.updateSubErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		user = &models.UserProfile{ID: userID}
		r.users[userID] = user
	}
	user.Subscription = sub
	return nil
}

func (r *fakeUserRepository) SetWardrobe(_ context.Context, userID string, wardrobe []models.Garment) error {
	if r.setWardErr != nil {
		return r.setWardErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		user = &models.UserProfile{ID: userID}
		r.users[userID] = user
	}
	user.Wardrobe = wardrobe
	return nil
}

// fakeOverrideRepository is an in-memory db.OverrideRepository.
type fakeOverrideRepository struct {
	mu        sync.Mutex
	overrides map[string]map[string]models.CalendarSuggestion

	getErr error
	setErr error
}

func newFakeOverrideRepository() *fakeOverrideRepository {
	return &fakeOverrideRepository{overrides: map[string]map[string]models.CalendarSuggestion{}}
}

func (r *fakeOverrideRepository) Get(_ context.Context, userID string) (map[string]models.CalendarSuggestion, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]models.CalendarSuggestion{}
	for k, v := range r.overrides[userID] {
		out[k] = v
	}
	return out, nil
}

func (r *fakeOverrideRepository) Set(_ context.Context, userID string, overrides map[string]models.CalendarSuggestion) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[userID] = overrides
	return nil
}

// fakeAuditService records every entry it is given.
type fakeAuditService struct {
	mu      sync.Mutex
	entries []models.AuditLog
	err     error
}

func (s *fakeAuditService) CreateAuditLog(_ context.Context, logEntry models.AuditLog) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, logEntry)
	return nil
}

func (s *fakeAuditService) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Action
	}
	return out
}
