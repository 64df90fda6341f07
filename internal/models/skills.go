package models

import "time"

// SocialSkillCategory groups tracked social skills
type SocialSkillCategory string

const (
	SkillCommunication  SocialSkillCategory = "communication"
	SkillEmotional      SocialSkillCategory = "emotional"
	SkillCooperation    SocialSkillCategory = "cooperation"
	SkillEmpathy        SocialSkillCategory = "empathy"
	SkillSelfControl    SocialSkillCategory = "selfControl"
	SkillConfidence     SocialSkillCategory = "confidence"
	SkillProblemSolving SocialSkillCategory = "problemSolving"
	SkillManners        SocialSkillCategory = "manners"
)

// SocialSkillCategories lists every category in display order
var SocialSkillCategories = []SocialSkillCategory{
	SkillCommunication, SkillEmotional, SkillCooperation, SkillEmpathy,
	SkillSelfControl, SkillConfidence, SkillProblemSolving, SkillManners,
}

var socialSkillCategoryDescriptors = map[SocialSkillCategory]CategoryDescriptor{
	SkillCommunication:  {DisplayName: "Communication", Icon: "bubble.left.and.bubble.right.fill", Color: "#2196F3"},
	SkillEmotional:      {DisplayName: "Emotional Intelligence", Icon: "heart.text.square.fill", Color: "#E91E63"},
	SkillCooperation:    {DisplayName: "Cooperation", Icon: "person.2.fill", Color: "#4CAF50"},
	SkillEmpathy:        {DisplayName: "Empathy", Icon: "heart.circle.fill", Color: "#9C27B0"},
	SkillSelfControl:    {DisplayName: "Self-Control", Icon: "brain.head.profile", Color: "#FF9800"},
	SkillConfidence:     {DisplayName: "Confidence", Icon: "star.fill", Color: "#FFD700"},
	SkillProblemSolving: {DisplayName: "Problem Solving", Icon: "puzzlepiece.fill", Color: "#00BCD4"},
	SkillManners:        {DisplayName: "Manners & Etiquette", Icon: "hand.wave.fill", Color: "#795548"},
}

// Descriptor returns the display attributes for the category
func (c SocialSkillCategory) Descriptor() CategoryDescriptor {
	return socialSkillCategoryDescriptors[c]
}

var socialSkillSuggestions = map[SocialSkillCategory][]string{
	SkillCommunication:  {"Active listening", "Clear expression", "Asking questions", "Eye contact", "Taking turns in conversation", "Using polite words", "Non-verbal cues"},
	SkillEmotional:      {"Identifying feelings", "Expressing emotions", "Managing big feelings", "Understanding others' emotions", "Coping strategies", "Emotional vocabulary"},
	SkillCooperation:    {"Sharing", "Taking turns", "Following group rules", "Compromising", "Working as a team", "Accepting different roles"},
	SkillEmpathy:        {"Recognizing others' feelings", "Showing concern", "Helping others", "Considering perspectives", "Comforting friends", "Being kind"},
	SkillSelfControl:    {"Waiting patiently", "Following rules", "Controlling impulses", "Staying calm", "Accepting no", "Handling frustration"},
	SkillConfidence:     {"Speaking up", "Trying new things", "Accepting mistakes", "Asking for help", "Making decisions", "Standing up for self"},
	SkillProblemSolving: {"Identifying problems", "Thinking of solutions", "Evaluating options", "Asking for help", "Learning from mistakes", "Flexibility"},
	SkillManners:        {"Saying please/thank you", "Table manners", "Greeting others", "Respecting personal space", "Being a good guest", "Phone/screen etiquette"},
}

// SuggestedSkills returns the built-in skill names for the category
func (c SocialSkillCategory) SuggestedSkills() []string {
	return socialSkillSuggestions[c]
}

// SkillLevel is the five-step mastery scale for a tracked skill
type SkillLevel int

const (
	LevelEmerging   SkillLevel = 1
	LevelDeveloping SkillLevel = 2
	LevelPracticing SkillLevel = 3
	LevelMastering  SkillLevel = 4
	LevelMastered   SkillLevel = 5
)

var skillLevelNames = map[SkillLevel]string{
	LevelEmerging:   "Emerging",
	LevelDeveloping: "Developing",
	LevelPracticing: "Practicing",
	LevelMastering:  "Mastering",
	LevelMastered:   "Mastered",
}

var skillLevelColors = map[SkillLevel]string{
	LevelEmerging:   "#FF5722",
	LevelDeveloping: "#FF9800",
	LevelPracticing: "#FFC107",
	LevelMastering:  "#8BC34A",
	LevelMastered:   "#4CAF50",
}

// DisplayName returns the label for the level
func (l SkillLevel) DisplayName() string {
	return skillLevelNames[l]
}

// Color returns the display color for the level
func (l SkillLevel) Color() string {
	return skillLevelColors[l]
}

// SkillProgress tracks one social skill the parent is watching
type SkillProgress struct {
	ID            string              `json:"id"`
	Category      SocialSkillCategory `json:"category"`
	SkillName     string              `json:"skillName"`
	CurrentLevel  SkillLevel          `json:"currentLevel"`
	Notes         []SkillNote         `json:"notes"`
	Observations  []SkillObservation  `json:"observations"`
	StartedAt     time.Time           `json:"startedAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// SkillNote is a dated free-text note attached to a tracked skill
type SkillNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// SkillObservation records one observed moment of the skill in use
type SkillObservation struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Context     string    `json:"context"`
	WasPositive bool      `json:"wasPositive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SocialSkillsGoal targets a mastery level for one tracked skill. It holds
// a weak reference to the skill by id.
type SocialSkillsGoal struct {
	ID              string     `json:"id"`
	SkillProgressID string     `json:"skillProgressId"`
	TargetLevel     SkillLevel `json:"targetLevel"`
	TargetDate      *time.Time `json:"targetDate,omitempty"`
	IsCompleted     bool       `json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// SocialSkillsSettings is the persisted state of the social skills screen
type SocialSkillsSettings struct {
	SkillProgress   []SkillProgress       `json:"skillProgress"`
	Goals           []SocialSkillsGoal    `json:"goals"`
	FocusCategories []SocialSkillCategory `json:"focusCategories"`
	ShowCompleted   bool                  `json:"showCompletedGoals"`
}
