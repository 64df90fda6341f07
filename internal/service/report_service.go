package service

import (
	"moxiedash/internal/models"
)

// ReportService assembles the weekly report card from the other services.
// Mood and learning telemetry do not sync yet, so those sections come from
// the built-in sample.
type ReportService struct {
	screenTime *ScreenTimeService
	safety     *SafetyService
	rewards    *RewardService
	topics     *TopicsService
	now        Clock
}

// NewReportService creates the service over its data sources. Any source
// may be nil; its section then keeps the sample values.
func NewReportService(screenTime *ScreenTimeService, safety *SafetyService, rewards *RewardService, topics *TopicsService, now Clock) *ReportService {
	return &ReportService{
		screenTime: screenTime,
		safety:     safety,
		rewards:    rewards,
		topics:     topics,
		now:        now,
	}
}

// CurrentReport builds the report for the week containing now
func (s *ReportService) CurrentReport() models.WeeklyReportData {
	now := s.now()
	report := models.SampleWeeklyReport(now)
	start := report.WeekStartDate
	end := report.WeekEndDate.AddDate(0, 0, 1)

	if s.screenTime != nil {
		data := s.screenTime.Data()
		report.TotalScreenTime = data.TotalTime(start, end)
		report.AverageDailyTime = report.TotalScreenTime / 7
	}

	if s.safety != nil {
		flags := 0
		for _, f := range s.safety.RecentFlags(0) {
			if !f.Timestamp.Before(start) && f.Timestamp.Before(end) {
				flags++
			}
		}
		report.SafetyFlags = flags
	}

	if s.rewards != nil {
		var earned []models.RewardAchievement
		for _, a := range s.rewards.EarnedAchievements() {
			if !a.EarnedDate.Before(start) && a.EarnedDate.Before(end) {
				earned = append(earned, a)
			}
		}
		if len(earned) > 0 {
			report.Achievements = earned
		}
	}

	if s.topics != nil {
		topTopics := s.topics.Topics()
		if len(topTopics) > 6 {
			topTopics = topTopics[:6]
		}
		mentions := make([]models.TopicMention, 0, len(topTopics))
		for _, t := range topTopics {
			trend := models.MentionSame
			switch t.Trend {
			case models.TrendRising:
				trend = models.MentionUp
			case models.TrendDeclining:
				trend = models.MentionDown
			}
			mentions = append(mentions, models.TopicMention{Topic: t.Name, Count: t.Mentions, Trend: trend})
		}
		if len(mentions) > 0 {
			report.TopTopics = mentions
		}
	}

	return report
}

// EmailCurrentReport sends the current report as a weekly summary, subject
// to the safety alert settings
func (s *ReportService) EmailCurrentReport() error {
	if s.safety == nil {
		return nil
	}
	return s.safety.SendWeeklySummary(s.CurrentReport())
}
