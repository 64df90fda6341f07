package service

import (
	"sort"

	"moxiedash/internal/models"
)

// TopicsService surfaces conversation topic analysis. Topic data arrives
// from the robot's cloud sync; until that lands the built-in sample stands
// in.
type TopicsService struct {
	topics []models.TopicData
}

// NewTopicsService creates the service over the sample topic set
func NewTopicsService() *TopicsService {
	return &TopicsService{topics: models.SampleTopics()}
}

// Topics returns every topic, highest mention count first
func (s *TopicsService) Topics() []models.TopicData {
	result := append([]models.TopicData(nil), s.topics...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Mentions > result[j].Mentions
	})
	return result
}

// TopicsByTrend returns topics matching the given trend, in stored order
func (s *TopicsService) TopicsByTrend(trend models.TopicTrend) []models.TopicData {
	result := make([]models.TopicData, 0, len(s.topics))
	for _, t := range s.topics {
		if t.Trend == trend {
			result = append(result, t)
		}
	}
	return result
}

// CategoryTotals sums mention counts per category
func (s *TopicsService) CategoryTotals() map[string]int {
	return models.GroupTopicsByCategory(s.topics)
}

// TotalMentions sums mention counts across all topics
func (s *TopicsService) TotalMentions() int {
	return models.TotalMentions(s.topics)
}
