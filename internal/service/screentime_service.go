package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// ScreenTimeService manages the screen time screen
type ScreenTimeService struct {
	mu    sync.Mutex
	store prefs.Store
	now   Clock
	data  models.ScreenTimeData
}

// NewScreenTimeService creates the service, loading stored session history
// or seeding and persisting sample data on first run
func NewScreenTimeService(store prefs.Store, now Clock) *ScreenTimeService {
	s := &ScreenTimeService{store: store, now: now}
	if !prefs.Load(store, screenTimeKey, &s.data) {
		s.data = models.SampleScreenTimeData(now())
		s.save()
	}
	return s
}

// Data returns a snapshot of the full session history
func (s *ScreenTimeService) Data() models.ScreenTimeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ScreenTimeData{
		Sessions: append([]models.ScreenTimeSession(nil), s.data.Sessions...),
	}
}

// TodayTotal returns total session time so far today, in seconds
func (s *ScreenTimeService) TodayTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.data.TotalTime(start, now)
}

// WeekTotal returns total session time over the last seven days, in seconds
func (s *ScreenTimeService) WeekTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return s.data.TotalTime(now.AddDate(0, 0, -7), now)
}

// TimeByFeature buckets the last seven days of session time by feature
func (s *ScreenTimeService) TimeByFeature() map[models.FeatureType]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return s.data.TimeByFeature(now.AddDate(0, 0, -7), now)
}

// DailyTotals returns per-day totals for the given number of days, most
// recent day first
func (s *ScreenTimeService) DailyTotals(days int) []models.DailyTotal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DailyTotals(days, s.now())
}

// RecordSession appends a session to the history
func (s *ScreenTimeService) RecordSession(feature models.FeatureType, durationSeconds float64, personality string) (models.ScreenTimeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.ScreenTimeSession{
		ID:          uuid.New().String(),
		Date:        s.now(),
		Duration:    durationSeconds,
		Feature:     feature,
		Personality: personality,
	}
	s.data.Sessions = append(s.data.Sessions, session)
	return session, s.save()
}

func (s *ScreenTimeService) save() error {
	if err := prefs.Save(s.store, screenTimeKey, s.data); err != nil {
		return fmt.Errorf("failed to save screen time data: %w", err)
	}
	return nil
}
