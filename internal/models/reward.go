package models

import (
	"time"

	"github.com/google/uuid"
)

// RewardCategory groups achievements on the rewards screen. The raw values
// double as display strings, matching the stored documents.
type RewardCategory string

const (
	RewardConversation RewardCategory = "Conversation"
	RewardLearning     RewardCategory = "Learning"
	RewardCreativity   RewardCategory = "Creativity"
	RewardConsistency  RewardCategory = "Consistency"
	RewardSpecial      RewardCategory = "Special"
)

// RewardCategories lists every category in display order
var RewardCategories = []RewardCategory{
	RewardConversation, RewardLearning, RewardCreativity,
	RewardConsistency, RewardSpecial,
}

var rewardCategoryDescriptors = map[RewardCategory]CategoryDescriptor{
	RewardConversation: {DisplayName: "Conversation", Icon: "bubble.left.and.bubble.right.fill", Color: "blue"},
	RewardLearning:     {DisplayName: "Learning", Icon: "graduationcap.fill", Color: "green"},
	RewardCreativity:   {DisplayName: "Creativity", Icon: "paintbrush.fill", Color: "purple"},
	RewardConsistency:  {DisplayName: "Consistency", Icon: "calendar", Color: "orange"},
	RewardSpecial:      {DisplayName: "Special", Icon: "star.fill", Color: "yellow"},
}

// Descriptor returns the display attributes for the category
func (c RewardCategory) Descriptor() CategoryDescriptor {
	return rewardCategoryDescriptors[c]
}

// RewardAchievement is one badge a child can earn
type RewardAchievement struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Color       string         `json:"color"`
	EarnedDate  *time.Time     `json:"earnedDate,omitempty"`
	Category    RewardCategory `json:"category"`
	Requirement int            `json:"requirement"`
	Progress    int            `json:"progress"`
}

// IsEarned reports whether the achievement has been earned
func (a RewardAchievement) IsEarned() bool {
	return a.EarnedDate != nil
}

// ProgressPercentage returns completion as a fraction in [0, 1]. An
// achievement with a non-positive requirement reports zero.
func (a RewardAchievement) ProgressPercentage() float64 {
	if a.Requirement <= 0 {
		return 0
	}
	p := float64(a.Progress) / float64(a.Requirement)
	if p > 1 {
		return 1
	}
	return p
}

// RewardsState is the persisted state of the rewards screen
type RewardsState struct {
	Achievements []RewardAchievement `json:"achievements"`
}

// PointsPerAchievement is the score awarded per earned badge
const PointsPerAchievement = 100

// TotalPoints sums the points for every earned achievement
func (s RewardsState) TotalPoints() int {
	earned := 0
	for _, a := range s.Achievements {
		if a.IsEarned() {
			earned++
		}
	}
	return earned * PointsPerAchievement
}

// DefaultAchievements returns the built-in badge set. Earned dates are
// expressed relative to now so the sample data reads naturally.
func DefaultAchievements(now time.Time) []RewardAchievement {
	daysAgo := func(d int) *time.Time {
		t := now.AddDate(0, 0, -d)
		return &t
	}

	achievements := []RewardAchievement{
		// Conversation
		{Name: "First Chat", Description: "Have your first conversation with Moxie", Icon: "bubble.left.fill", Color: "3B82F6", EarnedDate: daysAgo(7), Category: RewardConversation, Requirement: 1, Progress: 1},
		{Name: "Chatty Friend", Description: "Have 10 conversations", Icon: "bubble.left.and.bubble.right.fill", Color: "3B82F6", EarnedDate: daysAgo(2), Category: RewardConversation, Requirement: 10, Progress: 10},
		{Name: "Social Butterfly", Description: "Have 50 conversations", Icon: "person.3.fill", Color: "3B82F6", Category: RewardConversation, Requirement: 50, Progress: 23},
		{Name: "Curious Cat", Description: "Ask 20 questions", Icon: "questionmark.circle.fill", Color: "3B82F6", EarnedDate: daysAgo(1), Category: RewardConversation, Requirement: 20, Progress: 20},

		// Learning
		{Name: "Scholar", Description: "Complete 5 learning lessons", Icon: "book.fill", Color: "10B981", EarnedDate: daysAgo(0), Category: RewardLearning, Requirement: 5, Progress: 5},
		{Name: "Math Whiz", Description: "Score 100% on a math quiz", Icon: "number", Color: "10B981", Category: RewardLearning, Requirement: 1, Progress: 0},
		{Name: "Word Master", Description: "Learn 50 new vocabulary words", Icon: "textformat.abc", Color: "10B981", Category: RewardLearning, Requirement: 50, Progress: 32},
		{Name: "Science Explorer", Description: "Complete 10 science lessons", Icon: "atom", Color: "10B981", Category: RewardLearning, Requirement: 10, Progress: 4},

		// Creativity
		{Name: "Storyteller", Description: "Read 5 stories", Icon: "book.closed.fill", Color: "8B5CF6", EarnedDate: daysAgo(3), Category: RewardCreativity, Requirement: 5, Progress: 5},
		{Name: "Author", Description: "Create 3 custom stories", Icon: "pencil.and.scribble", Color: "8B5CF6", Category: RewardCreativity, Requirement: 3, Progress: 1},
		{Name: "Music Lover", Description: "Listen to 10 songs", Icon: "music.note", Color: "8B5CF6", Category: RewardCreativity, Requirement: 10, Progress: 7},

		// Consistency
		{Name: "Daily Friend", Description: "Use Moxie 3 days in a row", Icon: "calendar", Color: "F59E0B", EarnedDate: daysAgo(5), Category: RewardConsistency, Requirement: 3, Progress: 3},
		{Name: "Week Warrior", Description: "Use Moxie 7 days in a row", Icon: "calendar.badge.clock", Color: "F59E0B", Category: RewardConsistency, Requirement: 7, Progress: 5},
		{Name: "Monthly Champion", Description: "Use Moxie 30 days in a row", Icon: "crown.fill", Color: "F59E0B", Category: RewardConsistency, Requirement: 30, Progress: 5},

		// Special
		{Name: "Early Bird", Description: "Chat before 8 AM", Icon: "sunrise.fill", Color: "EAB308", EarnedDate: daysAgo(6), Category: RewardSpecial, Requirement: 1, Progress: 1},
		{Name: "Night Owl", Description: "Chat after 8 PM", Icon: "moon.stars.fill", Color: "EAB308", Category: RewardSpecial, Requirement: 1, Progress: 0},
		{Name: "Birthday Star", Description: "Chat on your birthday", Icon: "birthday.cake.fill", Color: "EAB308", Category: RewardSpecial, Requirement: 1, Progress: 0},
	}

	for i := range achievements {
		achievements[i].ID = uuid.New().String()
	}
	return achievements
}
