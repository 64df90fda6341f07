package models

// TopicTrend marks whether a conversation topic is gaining or losing traction
type TopicTrend string

const (
	TrendRising    TopicTrend = "rising"
	TrendStable    TopicTrend = "stable"
	TrendDeclining TopicTrend = "declining"
)

var topicTrendIcons = map[TopicTrend]string{
	TrendRising:    "arrow.up.right",
	TrendStable:    "arrow.right",
	TrendDeclining: "arrow.down.right",
}

var topicTrendColors = map[TopicTrend]string{
	TrendRising:    "green",
	TrendStable:    "blue",
	TrendDeclining: "orange",
}

// Icon returns the arrow glyph for the trend
func (t TopicTrend) Icon() string {
	return topicTrendIcons[t]
}

// Color returns the display color for the trend
func (t TopicTrend) Color() string {
	return topicTrendColors[t]
}

// TopicData is one conversation topic with its mention count
type TopicData struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Mentions int        `json:"mentions"`
	Trend    TopicTrend `json:"trend"`
	Emoji    string     `json:"emoji"`
}

// SampleTopics returns the built-in topic analysis sample
func SampleTopics() []TopicData {
	return []TopicData{
		{Name: "Animals", Category: "Nature", Mentions: 45, Trend: TrendRising, Emoji: "🐾"},
		{Name: "Space", Category: "Science", Mentions: 38, Trend: TrendStable, Emoji: "🚀"},
		{Name: "Dinosaurs", Category: "Nature", Mentions: 32, Trend: TrendRising, Emoji: "🦕"},
		{Name: "Games", Category: "Play", Mentions: 28, Trend: TrendStable, Emoji: "🎮"},
		{Name: "School", Category: "Education", Mentions: 25, Trend: TrendDeclining, Emoji: "🏫"},
		{Name: "Friends", Category: "Social", Mentions: 22, Trend: TrendStable, Emoji: "👫"},
		{Name: "Drawing", Category: "Art", Mentions: 20, Trend: TrendRising, Emoji: "🎨"},
		{Name: "Music", Category: "Art", Mentions: 18, Trend: TrendStable, Emoji: "🎵"},
		{Name: "Food", Category: "Daily Life", Mentions: 15, Trend: TrendDeclining, Emoji: "🍕"},
		{Name: "Sports", Category: "Play", Mentions: 12, Trend: TrendRising, Emoji: "⚽️"},
	}
}

// GroupTopicsByCategory sums mention counts per category
func GroupTopicsByCategory(topics []TopicData) map[string]int {
	result := make(map[string]int)
	for _, t := range topics {
		result[t.Category] += t.Mentions
	}
	return result
}

// TotalMentions sums mention counts across all topics
func TotalMentions(topics []TopicData) int {
	total := 0
	for _, t := range topics {
		total += t.Mentions
	}
	return total
}
