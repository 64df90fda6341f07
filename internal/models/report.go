package models

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Sentiment grades the overall tone of a conversation
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "very_positive"
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentNegative     Sentiment = "negative"
	SentimentConcerning   Sentiment = "concerning"
)

var sentimentNames = map[Sentiment]string{
	SentimentVeryPositive: "Very Positive",
	SentimentPositive:     "Positive",
	SentimentNeutral:      "Neutral",
	SentimentNegative:     "Negative",
	SentimentConcerning:   "Concerning",
}

var sentimentColors = map[Sentiment]string{
	SentimentVeryPositive: "#00FF00",
	SentimentPositive:     "#7FFF00",
	SentimentNeutral:      "#808080",
	SentimentNegative:     "#FFA500",
	SentimentConcerning:   "#FF0000",
}

// DisplayName returns the label for the sentiment
func (s Sentiment) DisplayName() string {
	return sentimentNames[s]
}

// Color returns the display color for the sentiment
func (s Sentiment) Color() string {
	return sentimentColors[s]
}

// ShouldNotifyParent reports whether this sentiment warrants a parent alert
func (s Sentiment) ShouldNotifyParent() bool {
	return s == SentimentConcerning
}

// MentionTrend marks week-over-week movement of a topic
type MentionTrend string

const (
	MentionUp   MentionTrend = "up"
	MentionDown MentionTrend = "down"
	MentionSame MentionTrend = "same"
)

// TopicMention is one topic row in the weekly report
type TopicMention struct {
	Topic string       `json:"topic"`
	Count int          `json:"count"`
	Trend MentionTrend `json:"trend"`
}

// MoodSummary aggregates the week's conversation sentiment
type MoodSummary struct {
	DominantMood  Sentiment             `json:"dominantMood"`
	MoodBreakdown map[Sentiment]float64 `json:"moodBreakdown"`
	Trend         string                `json:"trend"`
}

// PositiveShare returns the combined fraction of positive sentiment
func (m MoodSummary) PositiveShare() float64 {
	return m.MoodBreakdown[SentimentPositive] + m.MoodBreakdown[SentimentVeryPositive]
}

// LearningProgress aggregates the week's learning activity
type LearningProgress struct {
	LessonsCompleted int     `json:"lessonsCompleted"`
	QuizzesTaken     int     `json:"quizzesTaken"`
	AverageScore     float64 `json:"averageScore"`
	NewWordsLearned  int     `json:"newWordsLearned"`
}

// WeeklyReportData is one week's full report card
type WeeklyReportData struct {
	WeekStartDate      time.Time           `json:"weekStartDate"`
	WeekEndDate        time.Time           `json:"weekEndDate"`
	TotalScreenTime    float64             `json:"totalScreenTime"` // seconds
	AverageDailyTime   float64             `json:"averageDailyTime"`
	TotalConversations int                 `json:"totalConversations"`
	TopTopics          []TopicMention      `json:"topTopics"`
	MoodSummary        MoodSummary         `json:"moodSummary"`
	LearningProgress   LearningProgress    `json:"learningProgress"`
	SafetyFlags        int                 `json:"safetyFlags"`
	Achievements       []RewardAchievement `json:"achievements"`
}

// OverallGrade scores the week A through F. Conversations, learning, mood,
// and safety each contribute up to 25 points.
func (r WeeklyReportData) OverallGrade() string {
	safetyPoints := 15.0
	if r.SafetyFlags == 0 {
		safetyPoints = 25.0
	}
	score := float64(r.TotalConversations)/30.0*25 +
		r.LearningProgress.AverageScore/100.0*25 +
		r.MoodSummary.PositiveShare()*25 +
		safetyPoints

	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// EngagementGrade grades conversation volume against a 30-per-week baseline
func (r WeeklyReportData) EngagementGrade() string {
	score := float64(r.TotalConversations) / 30.0 * 100
	switch {
	case score >= 90:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	default:
		return "D"
	}
}

// LearningGrade grades the average quiz score
func (r WeeklyReportData) LearningGrade() string {
	switch {
	case r.LearningProgress.AverageScore >= 90:
		return "A"
	case r.LearningProgress.AverageScore >= 80:
		return "B"
	case r.LearningProgress.AverageScore >= 70:
		return "C"
	default:
		return "D"
	}
}

// CreativityGrade grades topic variety
func (r WeeklyReportData) CreativityGrade() string {
	switch {
	case len(r.TopTopics) >= 6:
		return "A"
	case len(r.TopTopics) >= 4:
		return "B"
	case len(r.TopTopics) >= 2:
		return "C"
	default:
		return "D"
	}
}

// MoodGrade grades the share of positive sentiment
func (r WeeklyReportData) MoodGrade() string {
	positivePercent := r.MoodSummary.PositiveShare() * 100
	switch {
	case positivePercent >= 70:
		return "A"
	case positivePercent >= 50:
		return "B"
	case positivePercent >= 30:
		return "C"
	default:
		return "D"
	}
}

// GradeColor returns the display color for a letter grade
func GradeColor(grade string) string {
	switch grade {
	case "A":
		return "green"
	case "B":
		return "blue"
	case "C":
		return "yellow"
	case "D":
		return "orange"
	default:
		return "red"
	}
}

// StartOfWeek returns midnight on the Sunday of t's week
func StartOfWeek(t time.Time) time.Time {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// SampleWeeklyReport generates a plausible report for the week containing
// the given instant, used before real telemetry arrives
func SampleWeeklyReport(week time.Time) WeeklyReportData {
	start := StartOfWeek(week)
	end := start.AddDate(0, 0, 6)
	earned := start

	return WeeklyReportData{
		WeekStartDate:      start,
		WeekEndDate:        end,
		TotalScreenTime:    float64(rand.Intn(10801) + 7200),
		AverageDailyTime:   float64(rand.Intn(2401) + 1200),
		TotalConversations: rand.Intn(31) + 10,
		TopTopics: []TopicMention{
			{Topic: "Animals", Count: 15, Trend: MentionUp},
			{Topic: "Space", Count: 12, Trend: MentionSame},
			{Topic: "Games", Count: 10, Trend: MentionDown},
			{Topic: "School", Count: 8, Trend: MentionUp},
			{Topic: "Friends", Count: 6, Trend: MentionSame},
			{Topic: "Drawing", Count: 5, Trend: MentionUp},
		},
		MoodSummary: MoodSummary{
			DominantMood: SentimentPositive,
			MoodBreakdown: map[Sentiment]float64{
				SentimentVeryPositive: 0.3,
				SentimentPositive:     0.45,
				SentimentNeutral:      0.2,
				SentimentNegative:     0.05,
			},
			Trend: "Happier than last week!",
		},
		LearningProgress: LearningProgress{
			LessonsCompleted: rand.Intn(10) + 3,
			QuizzesTaken:     rand.Intn(7) + 2,
			AverageScore:     70 + rand.Float64()*25,
			NewWordsLearned:  rand.Intn(16) + 5,
		},
		SafetyFlags: rand.Intn(3),
		Achievements: []RewardAchievement{
			{ID: uuid.New().String(), Name: "Curious Cat", Description: "Asked 10 questions", Icon: "questionmark.circle.fill", Color: "3B82F6", EarnedDate: &earned, Category: RewardConversation, Requirement: 1, Progress: 1},
			{ID: uuid.New().String(), Name: "Story Lover", Description: "Read 5 stories", Icon: "book.fill", Color: "8B5CF6", EarnedDate: &earned, Category: RewardCreativity, Requirement: 1, Progress: 1},
		},
	}
}
