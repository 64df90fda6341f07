package models

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// FeatureType names the robot feature a screen-time session used
type FeatureType string

const (
	FeatureConversation FeatureType = "conversation"
	FeatureStory        FeatureType = "story"
	FeatureLearning     FeatureType = "learning"
	FeatureMusic        FeatureType = "music"
	FeatureLanguage     FeatureType = "language"
	FeatureOther        FeatureType = "other"
)

// FeatureTypes lists every feature in display order
var FeatureTypes = []FeatureType{
	FeatureConversation, FeatureStory, FeatureLearning,
	FeatureMusic, FeatureLanguage, FeatureOther,
}

var featureTypeNames = map[FeatureType]string{
	FeatureConversation: "Conversation",
	FeatureStory:        "Story Time",
	FeatureLearning:     "Learning Session",
	FeatureMusic:        "Music Lookup",
	FeatureLanguage:     "Language Practice",
	FeatureOther:        "Other",
}

var featureTypeIcons = map[FeatureType]string{
	FeatureConversation: "💬",
	FeatureStory:        "📚",
	FeatureLearning:     "🎓",
	FeatureMusic:        "🎤",
	FeatureLanguage:     "🌍",
	FeatureOther:        "✨",
}

// DisplayName returns the label for the feature
func (f FeatureType) DisplayName() string {
	return featureTypeNames[f]
}

// Icon returns the emoji glyph for the feature
func (f FeatureType) Icon() string {
	return featureTypeIcons[f]
}

// ScreenTimeSession records one stretch of time the child spent with the
// robot. Duration is in seconds.
type ScreenTimeSession struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Duration    float64     `json:"duration"`
	Feature     FeatureType `json:"feature"`
	Personality string      `json:"personality,omitempty"`
}

// ScreenTimeData holds the full session history for the screen time screen
type ScreenTimeData struct {
	Sessions []ScreenTimeSession `json:"sessions"`
}

// TotalTime sums session durations within the inclusive date range
func (d ScreenTimeData) TotalTime(from, to time.Time) float64 {
	var total float64
	for _, s := range d.Sessions {
		if !s.Date.Before(from) && !s.Date.After(to) {
			total += s.Duration
		}
	}
	return total
}

// TimeByFeature buckets session time by feature within the date range
func (d ScreenTimeData) TimeByFeature(from, to time.Time) map[FeatureType]float64 {
	result := make(map[FeatureType]float64)
	for _, s := range d.Sessions {
		if !s.Date.Before(from) && !s.Date.After(to) {
			result[s.Feature] += s.Duration
		}
	}
	return result
}

// DailyTotal pairs a day with the total session time on that day
type DailyTotal struct {
	Date     time.Time `json:"date"`
	Duration float64   `json:"duration"`
}

// DailyTotals returns per-day totals for the given number of days counting
// back from now, most recent day first
func (d ScreenTimeData) DailyTotals(days int, now time.Time) []DailyTotal {
	result := make([]DailyTotal, 0, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -i)
		startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		endOfDay := startOfDay.AddDate(0, 0, 1)
		result = append(result, DailyTotal{
			Date:     startOfDay,
			Duration: d.TotalTime(startOfDay, endOfDay),
		})
	}
	return result
}

var samplePersonalities = []string{"Moxie", "Professor Spark", "Captain Adventure"}

// SampleScreenTimeData generates two weeks of plausible session history
// for first-run display before real telemetry arrives
func SampleScreenTimeData(now time.Time) ScreenTimeData {
	var sessions []ScreenTimeSession
	for i := 0; i < 14; i++ {
		day := now.AddDate(0, 0, -i)
		perDay := rand.Intn(4) + 1
		for j := 0; j < perDay; j++ {
			hour := rand.Intn(13) + 8
			minute := rand.Intn(60)
			sessionDate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
			sessions = append(sessions, ScreenTimeSession{
				ID:          uuid.New().String(),
				Date:        sessionDate,
				Duration:    float64(rand.Intn(1501) + 300),
				Feature:     FeatureTypes[rand.Intn(len(FeatureTypes))],
				Personality: samplePersonalities[rand.Intn(len(samplePersonalities))],
			})
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	return ScreenTimeData{Sessions: sessions}
}
