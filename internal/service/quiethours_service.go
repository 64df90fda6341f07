package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// QuietHoursService manages the quiet hours screen and answers whether the
// robot should be silent right now
type QuietHoursService struct {
	mu       sync.Mutex
	store    prefs.Store
	now      Clock
	settings models.QuietHoursSettings
}

// NewQuietHoursService creates the service and loads any stored settings
func NewQuietHoursService(store prefs.Store, now Clock) *QuietHoursService {
	s := &QuietHoursService{store: store, now: now}
	s.settings = models.NewQuietHoursSettings()
	prefs.Load(store, quietHoursKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *QuietHoursService) Settings() models.QuietHoursSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// CurrentStatus reports whether quiet hours are in effect and the status
// line the dashboard shows: the active window's end time when quiet, the
// next enabled window otherwise
func (s *QuietHoursService) CurrentStatus() models.QuietStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settings.IsEnabled {
		return models.QuietStatus{Message: "Quiet hours are disabled"}
	}

	now := s.now()
	for _, sched := range s.settings.Schedules {
		if sched.IsEnabled && sched.Contains(now) {
			return models.QuietStatus{
				IsQuiet: true,
				Message: fmt.Sprintf("%s until %s", sched.Name, sched.EndTime),
			}
		}
	}
	for _, sched := range s.settings.Schedules {
		if sched.IsEnabled {
			return models.QuietStatus{
				Message: fmt.Sprintf("Next quiet time: %s at %s", sched.Name, sched.StartTime),
			}
		}
	}
	return models.QuietStatus{Message: "No quiet hours scheduled"}
}

// AddSchedule appends a quiet window, enabled and with an id assigned
func (s *QuietHoursService) AddSchedule(sched models.QuietSchedule) (models.QuietSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sched.ID == "" {
		sched.ID = uuid.New().String()
	}
	sched.IsEnabled = true
	s.settings.Schedules = append(s.settings.Schedules, sched)
	return sched, s.save()
}

// RemoveSchedule deletes a quiet window by id
func (s *QuietHoursService) RemoveSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.Schedules[:0]
	for _, sched := range s.settings.Schedules {
		if sched.ID != id {
			kept = append(kept, sched)
		}
	}
	s.settings.Schedules = kept
	return s.save()
}

// ToggleSchedule flips one quiet window's enabled flag
func (s *QuietHoursService) ToggleSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Schedules {
		if s.settings.Schedules[i].ID == id {
			s.settings.Schedules[i].IsEnabled = !s.settings.Schedules[i].IsEnabled
			break
		}
	}
	return s.save()
}

// SetEnabled turns the whole quiet hours feature on or off
func (s *QuietHoursService) SetEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.IsEnabled = enabled
	return s.save()
}

// SetQuietMessage updates the message the robot speaks during quiet hours
func (s *QuietHoursService) SetQuietMessage(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.QuietMessage = msg
	return s.save()
}

// SetEmergencyOverride configures the keyword that wakes the robot during
// quiet hours
func (s *QuietHoursService) SetEmergencyOverride(allow bool, keyword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AllowEmergency = allow
	if keyword != "" {
		s.settings.EmergencyKeyword = keyword
	}
	return s.save()
}

var allWeekDays = []int{1, 2, 3, 4, 5, 6, 7}

// PresetSchedules returns the ready-made quiet windows offered as one-tap
// additions
func PresetSchedules() []models.QuietSchedule {
	return []models.QuietSchedule{
		{
			Name:       "Bedtime",
			StartTime:  models.ClockTime{Hour: 20},
			EndTime:    models.ClockTime{Hour: 7},
			DaysOfWeek: allWeekDays,
		},
		{
			Name:       "School Hours",
			StartTime:  models.ClockTime{Hour: 8},
			EndTime:    models.ClockTime{Hour: 15},
			DaysOfWeek: []int{2, 3, 4, 5, 6},
		},
		{
			Name:       "Family Dinner",
			StartTime:  models.ClockTime{Hour: 18},
			EndTime:    models.ClockTime{Hour: 19},
			DaysOfWeek: allWeekDays,
		},
		{
			Name:       "Homework Time",
			StartTime:  models.ClockTime{Hour: 16},
			EndTime:    models.ClockTime{Hour: 17, Minute: 30},
			DaysOfWeek: []int{2, 3, 4, 5, 6},
		},
	}
}

func (s *QuietHoursService) save() error {
	if err := prefs.Save(s.store, quietHoursKey, s.settings); err != nil {
		return fmt.Errorf("failed to save quiet hours settings: %w", err)
	}
	return nil
}
