package models

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		target   int
		expected float64
	}{
		{name: "zero target", current: 3, target: 0, expected: 0},
		{name: "negative target", current: 3, target: -1, expected: 0},
		{name: "halfway", current: 2, target: 4, expected: 0.5},
		{name: "complete", current: 4, target: 4, expected: 1.0},
		{name: "over target clamps", current: 9, target: 4, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := ParentLearningGoal{CurrentValue: tt.current, TargetValue: tt.target}
			if got := goal.Progress(); got != tt.expected {
				t.Errorf("Progress() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRewardAchievementDerived(t *testing.T) {
	now := time.Now()

	earned := RewardAchievement{EarnedDate: &now, Requirement: 10, Progress: 10}
	if !earned.IsEarned() {
		t.Error("IsEarned() = false for achievement with earned date")
	}
	if got := earned.ProgressPercentage(); got != 1.0 {
		t.Errorf("ProgressPercentage() = %v, want 1.0", got)
	}

	unearned := RewardAchievement{Requirement: 10, Progress: 25}
	if unearned.IsEarned() {
		t.Error("IsEarned() = true for achievement without earned date")
	}
	if got := unearned.ProgressPercentage(); got != 1.0 {
		t.Errorf("ProgressPercentage() = %v, want clamped 1.0", got)
	}

	zeroReq := RewardAchievement{Requirement: 0, Progress: 5}
	if got := zeroReq.ProgressPercentage(); got != 0 {
		t.Errorf("ProgressPercentage() = %v for zero requirement, want 0", got)
	}
}

func TestChildProfileAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		age       int
		group     string
	}{
		{name: "toddler", birthDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), age: 2, group: "Toddler"},
		{name: "preschool", birthDate: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), age: 5, group: "Preschool"},
		{name: "early elementary", birthDate: time.Date(2018, 6, 10, 0, 0, 0, 0, time.UTC), age: 8, group: "Early Elementary"},
		{name: "preteen", birthDate: time.Date(2015, 2, 1, 0, 0, 0, 0, time.UTC), age: 11, group: "Pre-Teen"},
		{name: "older child", birthDate: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), age: 16, group: "Child"},
		{name: "birthday not yet reached", birthDate: time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC), age: 5, group: "Preschool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ChildProfile{BirthDate: tt.birthDate}
			if got := profile.Age(now); got != tt.age {
				t.Errorf("Age() = %d, want %d", got, tt.age)
			}
			if got := profile.AgeGroupLabel(now); got != tt.group {
				t.Errorf("AgeGroupLabel() = %q, want %q", got, tt.group)
			}
		})
	}
}

func TestQuietScheduleDaysDescription(t *testing.T) {
	tests := []struct {
		name     string
		days     []int
		expected string
	}{
		{name: "every day", days: []int{1, 2, 3, 4, 5, 6, 7}, expected: "Every day"},
		{name: "weekdays", days: []int{2, 3, 4, 5, 6}, expected: "Weekdays"},
		{name: "weekends", days: []int{1, 7}, expected: "Weekends"},
		{name: "custom", days: []int{2, 4, 6}, expected: "Mon, Wed, Fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := QuietSchedule{DaysOfWeek: tt.days}
			if got := s.DaysDescription(); got != tt.expected {
				t.Errorf("DaysDescription() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestQuietScheduleContains(t *testing.T) {
	schedule := QuietSchedule{
		StartTime:  ClockTime{Hour: 20, Minute: 0},
		EndTime:    ClockTime{Hour: 21, Minute: 30},
		DaysOfWeek: []int{1, 2, 3, 4, 5, 6, 7},
		IsEnabled:  true,
	}

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{name: "before window", at: time.Date(2026, 8, 28, 19, 59, 0, 0, time.UTC), expected: false},
		{name: "window start inclusive", at: time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC), expected: true},
		{name: "inside window", at: time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC), expected: true},
		{name: "window end exclusive", at: time.Date(2026, 8, 28, 21, 30, 0, 0, time.UTC), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schedule.Contains(tt.at); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.expected)
			}
		})
	}

	weekdaysOnly := QuietSchedule{
		StartTime:  ClockTime{Hour: 8, Minute: 0},
		EndTime:    ClockTime{Hour: 15, Minute: 0},
		DaysOfWeek: []int{2, 3, 4, 5, 6},
		IsEnabled:  true,
	}
	// 2026-08-30 is a Sunday
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if weekdaysOnly.Contains(sunday) {
		t.Error("Contains() = true on a day the schedule does not cover")
	}
}

func TestWeeklyReportGrades(t *testing.T) {
	report := WeeklyReportData{
		TotalConversations: 30,
		MoodSummary: MoodSummary{
			MoodBreakdown: map[Sentiment]float64{
				SentimentVeryPositive: 0.4,
				SentimentPositive:     0.4,
			},
		},
		LearningProgress: LearningProgress{AverageScore: 92},
		TopTopics: []TopicMention{
			{Topic: "Animals"}, {Topic: "Space"}, {Topic: "Games"},
			{Topic: "School"}, {Topic: "Friends"}, {Topic: "Drawing"},
		},
		SafetyFlags: 0,
	}

	// 25 + 23 + 20 = 68 from activity, plus 25 safety = 93
	if got := report.OverallGrade(); got != "A" {
		t.Errorf("OverallGrade() = %q, want A", got)
	}
	if got := report.EngagementGrade(); got != "A" {
		t.Errorf("EngagementGrade() = %q, want A", got)
	}
	if got := report.LearningGrade(); got != "A" {
		t.Errorf("LearningGrade() = %q, want A", got)
	}
	if got := report.CreativityGrade(); got != "A" {
		t.Errorf("CreativityGrade() = %q, want A", got)
	}
	if got := report.MoodGrade(); got != "A" {
		t.Errorf("MoodGrade() = %q, want A", got)
	}

	flagged := report
	flagged.TotalConversations = 5
	flagged.SafetyFlags = 2
	flagged.LearningProgress.AverageScore = 40
	flagged.MoodSummary = MoodSummary{MoodBreakdown: map[Sentiment]float64{SentimentNeutral: 1}}
	if got := flagged.OverallGrade(); got != "F" {
		t.Errorf("OverallGrade() = %q for a poor week, want F", got)
	}
	if got := flagged.MoodGrade(); got != "D" {
		t.Errorf("MoodGrade() = %q with no positive sentiment, want D", got)
	}
}

func TestScreenTimeAggregation(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	data := ScreenTimeData{Sessions: []ScreenTimeSession{
		{Date: base, Duration: 600, Feature: FeatureConversation},
		{Date: base.Add(-time.Hour), Duration: 900, Feature: FeatureStory},
		{Date: base.AddDate(0, 0, -1), Duration: 1200, Feature: FeatureConversation},
		{Date: base.AddDate(0, 0, -10), Duration: 500, Feature: FeatureMusic},
	}}

	from := base.AddDate(0, 0, -2)
	if got := data.TotalTime(from, base); got != 2700 {
		t.Errorf("TotalTime() = %v, want 2700", got)
	}

	byFeature := data.TimeByFeature(from, base)
	if byFeature[FeatureConversation] != 1800 {
		t.Errorf("TimeByFeature()[conversation] = %v, want 1800", byFeature[FeatureConversation])
	}
	if byFeature[FeatureStory] != 900 {
		t.Errorf("TimeByFeature()[story] = %v, want 900", byFeature[FeatureStory])
	}
	if _, ok := byFeature[FeatureMusic]; ok {
		t.Error("TimeByFeature() included session outside range")
	}

	daily := data.DailyTotals(2, base)
	if len(daily) != 2 {
		t.Fatalf("DailyTotals() returned %d entries, want 2", len(daily))
	}
	if daily[0].Duration != 1500 {
		t.Errorf("DailyTotals()[0].Duration = %v, want 1500", daily[0].Duration)
	}
	if daily[1].Duration != 1200 {
		t.Errorf("DailyTotals()[1].Duration = %v, want 1200", daily[1].Duration)
	}
}

func TestGroupTopicsByCategory(t *testing.T) {
	topics := SampleTopics()
	groups := GroupTopicsByCategory(topics)

	if groups["Nature"] != 77 {
		t.Errorf("GroupTopicsByCategory()[Nature] = %d, want 77", groups["Nature"])
	}
	if groups["Art"] != 38 {
		t.Errorf("GroupTopicsByCategory()[Art] = %d, want 38", groups["Art"])
	}
	if got := TotalMentions(topics); got != 255 {
		t.Errorf("TotalMentions() = %d, want 255", got)
	}
}

func TestFlagSeverityRules(t *testing.T) {
	if SeverityLow.ShouldEmailParent() || SeverityMedium.ShouldEmailParent() {
		t.Error("low/medium severity should not email parent")
	}
	if !SeverityHigh.ShouldEmailParent() || !SeverityCritical.ShouldEmailParent() {
		t.Error("high/critical severity should email parent")
	}
	if SeverityHigh.ShouldAlertImmediately() {
		t.Error("only critical severity alerts immediately")
	}
	if !SeverityCritical.ShouldAlertImmediately() {
		t.Error("critical severity should alert immediately")
	}
	if FlagSelfHarmLanguage.DefaultSeverity() != SeverityCritical {
		t.Errorf("DefaultSeverity() = %v, want critical", FlagSelfHarmLanguage.DefaultSeverity())
	}
}

func TestDefaultDataSets(t *testing.T) {
	if got := len(DefaultActivities()); got != 30 {
		t.Errorf("DefaultActivities() returned %d activities, want 30", got)
	}
	if got := len(DefaultStories()); got != 24 {
		t.Errorf("DefaultStories() returned %d stories, want 24", got)
	}
	if got := len(DefaultStarters()); got != 35 {
		t.Errorf("DefaultStarters() returned %d starters, want 35", got)
	}
	if got := len(DefaultBlockedTopics()); got != 19 {
		t.Errorf("DefaultBlockedTopics() returned %d topics, want 19", got)
	}
	if got := len(DefaultAchievements(time.Now())); got != 17 {
		t.Errorf("DefaultAchievements() returned %d achievements, want 17", got)
	}

	// Every record carries a distinct generated id
	seen := make(map[string]bool)
	for _, a := range DefaultActivities() {
		if a.ID == "" || seen[a.ID] {
			t.Fatalf("duplicate or empty activity id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
