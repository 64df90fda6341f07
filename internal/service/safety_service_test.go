package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

type recordingMailer struct {
	alerts    []models.ContentFlag
	summaries []models.WeeklyReportData
}

func (m *recordingMailer) SendSafetyAlert(flag models.ContentFlag) error {
	m.alerts = append(m.alerts, flag)
	return nil
}

func (m *recordingMailer) SendWeeklySummary(report models.WeeklyReportData) error {
	m.summaries = append(m.summaries, report)
	return nil
}

func TestRecordFlagFillsDefaultsAndEmails(t *testing.T) {
	store := prefs.NewMemoryStore()
	mailer := &recordingMailer{}
	svc := NewSafetyService(store, mailer, fixedClock(testNow))

	flag, err := svc.RecordFlag(models.ContentFlag{
		Category:       models.FlagPrivacyRisk,
		MessageContent: "My address is 12 Elm Street",
	})
	if err != nil {
		t.Fatalf("RecordFlag() error = %v", err)
	}

	if flag.ID == "" {
		t.Error("flag id not assigned")
	}
	if !flag.Timestamp.Equal(testNow) {
		t.Errorf("Timestamp = %v, want %v", flag.Timestamp, testNow)
	}
	if flag.Severity != models.SeverityHigh {
		t.Errorf("Severity = %q, want category default %q", flag.Severity, models.SeverityHigh)
	}
	if len(mailer.alerts) != 1 {
		t.Fatalf("alerts sent = %d, want 1", len(mailer.alerts))
	}
}

func TestRecordFlagRespectsMinimumSeverity(t *testing.T) {
	store := prefs.NewMemoryStore()
	mailer := &recordingMailer{}
	svc := NewSafetyService(store, mailer, fixedClock(testNow))

	setting := models.NewCategoryAlertSetting()
	setting.MinimumSeverity = models.SeverityHigh
	if err := svc.SetCategorySetting(models.FlagInappropriateLanguage, setting); err != nil {
		t.Fatalf("SetCategorySetting() error = %v", err)
	}

	// Low-severity flag in a category gated at high: stored but not emailed
	if _, err := svc.RecordFlag(models.ContentFlag{Category: models.FlagInappropriateLanguage}); err != nil {
		t.Fatalf("RecordFlag() error = %v", err)
	}
	if len(mailer.alerts) != 0 {
		t.Errorf("alerts sent = %d, want 0", len(mailer.alerts))
	}
	if got := len(svc.RecentFlags(0)); got != 1 {
		t.Errorf("stored flags = %d, want 1", got)
	}
}

func TestRecordFlagGlobalToggleOff(t *testing.T) {
	store := prefs.NewMemoryStore()
	mailer := &recordingMailer{}
	svc := NewSafetyService(store, mailer, fixedClock(testNow))

	if err := svc.SetEmailOnFlag(false); err != nil {
		t.Fatalf("SetEmailOnFlag() error = %v", err)
	}
	if _, err := svc.RecordFlag(models.ContentFlag{Category: models.FlagSelfHarmLanguage}); err != nil {
		t.Fatalf("RecordFlag() error = %v", err)
	}
	if len(mailer.alerts) != 0 {
		t.Errorf("alerts sent with email off = %d, want 0", len(mailer.alerts))
	}
}

func TestMarkReviewed(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewSafetyService(store, nil, fixedClock(testNow))

	flag, err := svc.RecordFlag(models.ContentFlag{Category: models.FlagBullyingMention})
	if err != nil {
		t.Fatalf("RecordFlag() error = %v", err)
	}
	if got := svc.UnreviewedCount(); got != 1 {
		t.Fatalf("UnreviewedCount() = %d, want 1", got)
	}
	if err := svc.MarkReviewed(flag.ID); err != nil {
		t.Fatalf("MarkReviewed() error = %v", err)
	}
	if got := svc.UnreviewedCount(); got != 0 {
		t.Errorf("UnreviewedCount() after review = %d, want 0", got)
	}

	reloaded := NewSafetyService(store, nil, fixedClock(testNow))
	if got := reloaded.UnreviewedCount(); got != 0 {
		t.Errorf("UnreviewedCount() after reload = %d, want 0", got)
	}
}

func TestSendWeeklySummaryHonorsToggle(t *testing.T) {
	store := prefs.NewMemoryStore()
	mailer := &recordingMailer{}
	svc := NewSafetyService(store, mailer, fixedClock(testNow))

	report := models.SampleWeeklyReport(testNow)
	if err := svc.SendWeeklySummary(report); err != nil {
		t.Fatalf("SendWeeklySummary() error = %v", err)
	}
	if len(mailer.summaries) != 1 {
		t.Fatalf("summaries sent = %d, want 1", len(mailer.summaries))
	}

	if err := svc.SetSummaries(false, false); err != nil {
		t.Fatalf("SetSummaries() error = %v", err)
	}
	if err := svc.SendWeeklySummary(report); err != nil {
		t.Fatalf("SendWeeklySummary() error = %v", err)
	}
	if len(mailer.summaries) != 1 {
		t.Errorf("summaries sent with weekly off = %d, want 1", len(mailer.summaries))
	}
}
