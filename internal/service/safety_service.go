package service

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// Mailer delivers parent-facing email. A nil Mailer disables delivery
// without changing any other behavior.
type Mailer interface {
	SendSafetyAlert(flag models.ContentFlag) error
	SendWeeklySummary(report models.WeeklyReportData) error
}

// SafetyService manages safety alert preferences and the log of content
// flags raised during conversations
type SafetyService struct {
	mu       sync.Mutex
	store    prefs.Store
	mailer   Mailer
	now      Clock
	settings models.SafetyAlertSettings
	flags    []models.ContentFlag
}

// NewSafetyService creates the service and loads stored settings and flags
func NewSafetyService(store prefs.Store, mailer Mailer, now Clock) *SafetyService {
	s := &SafetyService{store: store, mailer: mailer, now: now}
	s.settings = models.NewSafetyAlertSettings()
	prefs.Load(store, safetyAlertsKey, &s.settings)
	prefs.Load(store, contentFlagsKey, &s.flags)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *SafetyService) Settings() models.SafetyAlertSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// RecentFlags returns flags newest first, optionally limited
func (s *SafetyService) RecentFlags(limit int) []models.ContentFlag {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := append([]models.ContentFlag(nil), s.flags...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// UnreviewedCount returns how many flags a parent has not yet reviewed
func (s *SafetyService) UnreviewedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, f := range s.flags {
		if !f.Reviewed {
			count++
		}
	}
	return count
}

// RecordFlag stores a new content flag, grading it with the category's
// default severity when the detector left it blank, and emails the parent
// when the alert settings call for it
func (s *SafetyService) RecordFlag(flag models.ContentFlag) (models.ContentFlag, error) {
	s.mu.Lock()

	if flag.ID == "" {
		flag.ID = uuid.New().String()
	}
	if flag.Timestamp.IsZero() {
		flag.Timestamp = s.now()
	}
	if flag.Severity == "" {
		flag.Severity = flag.Category.DefaultSeverity()
	}
	s.flags = append(s.flags, flag)
	err := s.saveFlags()
	notify := s.shouldEmail(flag)
	s.mu.Unlock()

	if notify && s.mailer != nil {
		if mailErr := s.mailer.SendSafetyAlert(flag); mailErr != nil {
			log.Printf("failed to send safety alert email: %v", mailErr)
		}
	}
	return flag, err
}

// MarkReviewed records that a parent has looked at a flag
func (s *SafetyService) MarkReviewed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.flags {
		if s.flags[i].ID == id {
			s.flags[i].Reviewed = true
			break
		}
	}
	return s.saveFlags()
}

// shouldEmail decides whether a flag warrants email under the current
// settings: the global email toggle, the category's own toggles, and its
// minimum severity all have to agree
func (s *SafetyService) shouldEmail(flag models.ContentFlag) bool {
	if !s.settings.EmailOnFlag {
		return false
	}
	setting := s.settings.CategorySetting(flag.Category)
	if !setting.Enabled || !setting.EmailNotify {
		return false
	}
	return flag.Severity.Rank() >= setting.MinimumSeverity.Rank()
}

// SetEmailOnFlag toggles email delivery for new flags
func (s *SafetyService) SetEmailOnFlag(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.EmailOnFlag = enabled
	return s.saveSettings()
}

// SetSummaries configures the daily and weekly summary emails
func (s *SafetyService) SetSummaries(daily, weekly bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DailySummary = daily
	s.settings.WeeklySummary = weekly
	return s.saveSettings()
}

// SetInstantNotifications toggles immediate push-style notification
func (s *SafetyService) SetInstantNotifications(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.InstantNotifications = enabled
	return s.saveSettings()
}

// SetCategorySetting replaces the alerting config for one flag category
func (s *SafetyService) SetCategorySetting(c models.FlagCategory, setting models.CategoryAlertSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.CategorySettings == nil {
		s.settings.CategorySettings = map[string]models.CategoryAlertSetting{}
	}
	s.settings.CategorySettings[string(c)] = setting
	return s.saveSettings()
}

// SendWeeklySummary emails the weekly report when the weekly summary is
// enabled
func (s *SafetyService) SendWeeklySummary(report models.WeeklyReportData) error {
	s.mu.Lock()
	enabled := s.settings.WeeklySummary
	s.mu.Unlock()

	if !enabled || s.mailer == nil {
		return nil
	}
	if err := s.mailer.SendWeeklySummary(report); err != nil {
		return fmt.Errorf("failed to send weekly summary email: %w", err)
	}
	return nil
}

func (s *SafetyService) saveSettings() error {
	if err := prefs.Save(s.store, safetyAlertsKey, s.settings); err != nil {
		return fmt.Errorf("failed to save safety alert settings: %w", err)
	}
	return nil
}

func (s *SafetyService) saveFlags() error {
	if err := prefs.Save(s.store, contentFlagsKey, s.flags); err != nil {
		return fmt.Errorf("failed to save content flags: %w", err)
	}
	return nil
}
