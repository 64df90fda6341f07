package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// ProfileService manages child profiles and tracks which one is active.
// Profiles are stored as a bare array; the active profile id is a separate
// document.
type ProfileService struct {
	mu       sync.Mutex
	store    prefs.Store
	now      Clock
	profiles []models.ChildProfile
	activeID string
}

// NewProfileService creates the service and loads stored profiles and the
// active profile id
func NewProfileService(store prefs.Store, now Clock) *ProfileService {
	s := &ProfileService{store: store, now: now}
	prefs.Load(store, childProfilesKey, &s.profiles)
	prefs.Load(store, activeProfileKey, &s.activeID)
	return s
}

// Profiles returns a snapshot of every profile
func (s *ProfileService) Profiles() []models.ChildProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChildProfile(nil), s.profiles...)
}

// ActiveProfile returns the currently active profile, if any
func (s *ProfileService) ActiveProfile() (models.ChildProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.ID == s.activeID {
			return p, true
		}
	}
	return models.ChildProfile{}, false
}

// AddProfile creates and stores a new profile. The first profile added
// becomes active automatically.
func (s *ProfileService) AddProfile(name, nickname string, birthDate time.Time) (models.ChildProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.NewChildProfile(uuid.New().String(), name, nickname, birthDate, s.now())
	p.IsActive = len(s.profiles) == 0
	s.profiles = append(s.profiles, p)
	if p.IsActive {
		s.activeID = p.ID
		if err := s.saveActiveID(); err != nil {
			return p, err
		}
	}
	return p, s.save()
}

// UpdateProfile replaces a profile in place, matched by id
func (s *ProfileService) UpdateProfile(p models.ChildProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			p.IsActive = s.profiles[i].IsActive
			s.profiles[i] = p
			break
		}
	}
	return s.save()
}

// DeleteProfile removes a profile. Deleting the active profile leaves no
// profile active.
func (s *ProfileService) DeleteProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.profiles[:0]
	for _, p := range s.profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.profiles = kept
	if s.activeID == id {
		s.activeID = ""
		if err := s.saveActiveID(); err != nil {
			return err
		}
	}
	return s.save()
}

// ActivateProfile marks the given profile active and every other profile
// inactive, and records its id as the active profile
func (s *ProfileService) ActivateProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		s.profiles[i].IsActive = s.profiles[i].ID == id
	}
	s.activeID = id
	if err := s.saveActiveID(); err != nil {
		return err
	}
	return s.save()
}

// RecordActivity updates a profile's usage counters after a session
func (s *ProfileService) RecordActivity(id string, conversations int, screenTimeSeconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			now := s.now()
			s.profiles[i].TotalConversations += conversations
			s.profiles[i].TotalScreenTime += screenTimeSeconds
			s.profiles[i].LastActiveAt = &now
			break
		}
	}
	return s.save()
}

func (s *ProfileService) save() error {
	if err := prefs.Save(s.store, childProfilesKey, s.profiles); err != nil {
		return fmt.Errorf("failed to save child profiles: %w", err)
	}
	return nil
}

func (s *ProfileService) saveActiveID() error {
	if err := prefs.Save(s.store, activeProfileKey, s.activeID); err != nil {
		return fmt.Errorf("failed to save active profile id: %w", err)
	}
	return nil
}
