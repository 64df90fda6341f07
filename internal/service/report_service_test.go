package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestCurrentReportComposesLiveData(t *testing.T) {
	store := prefs.NewMemoryStore()
	screenTime := NewScreenTimeService(store, fixedClock(testNow))
	mailer := &recordingMailer{}
	safety := NewSafetyService(store, mailer, fixedClock(testNow))
	rewards := NewRewardService(store, fixedClock(testNow))
	topics := NewTopicsService()
	svc := NewReportService(screenTime, safety, rewards, topics, fixedClock(testNow))

	for i := 0; i < 2; i++ {
		if _, err := safety.RecordFlag(models.ContentFlag{Category: models.FlagBullyingMention}); err != nil {
			t.Fatalf("RecordFlag() error = %v", err)
		}
	}

	report := svc.CurrentReport()

	if report.SafetyFlags != 2 {
		t.Errorf("SafetyFlags = %d, want 2", report.SafetyFlags)
	}

	data := screenTime.Data()
	wantTotal := data.TotalTime(report.WeekStartDate, report.WeekEndDate.AddDate(0, 0, 1))
	if report.TotalScreenTime != wantTotal {
		t.Errorf("TotalScreenTime = %v, want %v", report.TotalScreenTime, wantTotal)
	}
	if report.AverageDailyTime != wantTotal/7 {
		t.Errorf("AverageDailyTime = %v, want %v", report.AverageDailyTime, wantTotal/7)
	}

	for _, a := range report.Achievements {
		if a.EarnedDate == nil {
			t.Fatalf("achievement %q has no earned date", a.Name)
		}
		if a.EarnedDate.Before(report.WeekStartDate) {
			t.Errorf("achievement %q earned %v, before week start %v", a.Name, a.EarnedDate, report.WeekStartDate)
		}
	}

	if len(report.TopTopics) == 0 || len(report.TopTopics) > 6 {
		t.Fatalf("TopTopics length = %d, want 1-6", len(report.TopTopics))
	}
	if want := topics.Topics()[0]; report.TopTopics[0].Topic != want.Name || report.TopTopics[0].Count != want.Mentions {
		t.Errorf("TopTopics[0] = %+v, want %q with %d mentions", report.TopTopics[0], want.Name, want.Mentions)
	}
}

func TestCurrentReportWithNilSourcesKeepsSample(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil, fixedClock(testNow))

	report := svc.CurrentReport()
	if report.WeekStartDate.Weekday() != 0 {
		t.Errorf("WeekStartDate weekday = %v, want Sunday", report.WeekStartDate.Weekday())
	}
	if len(report.TopTopics) == 0 {
		t.Error("sample report has no top topics")
	}
}

func TestEmailCurrentReportHonorsWeeklyToggle(t *testing.T) {
	store := prefs.NewMemoryStore()
	mailer := &recordingMailer{}
	safety := NewSafetyService(store, mailer, fixedClock(testNow))
	svc := NewReportService(nil, safety, nil, nil, fixedClock(testNow))

	if err := safety.SetSummaries(false, false); err != nil {
		t.Fatalf("SetSummaries() error = %v", err)
	}
	if err := svc.EmailCurrentReport(); err != nil {
		t.Fatalf("EmailCurrentReport() error = %v", err)
	}
	if len(mailer.summaries) != 0 {
		t.Fatalf("summaries sent with toggle off = %d, want 0", len(mailer.summaries))
	}

	if err := safety.SetSummaries(false, true); err != nil {
		t.Fatalf("SetSummaries() error = %v", err)
	}
	if err := svc.EmailCurrentReport(); err != nil {
		t.Fatalf("EmailCurrentReport() error = %v", err)
	}
	if len(mailer.summaries) != 1 {
		t.Errorf("summaries sent = %d, want 1", len(mailer.summaries))
	}
}
