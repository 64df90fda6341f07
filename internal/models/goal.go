package models

import "time"

// LearningSubject is the school subject a learning goal targets
type LearningSubject string

const (
	SubjectReading       LearningSubject = "reading"
	SubjectMath          LearningSubject = "math"
	SubjectScience       LearningSubject = "science"
	SubjectSocialStudies LearningSubject = "socialStudies"
	SubjectLanguage      LearningSubject = "language"
	SubjectArts          LearningSubject = "arts"
	SubjectMusic         LearningSubject = "music"
	SubjectPhysicalEd    LearningSubject = "physicalEd"
	SubjectLifeSkills    LearningSubject = "lifeskills"
	SubjectTechnology    LearningSubject = "technology"
)

// LearningSubjects lists every subject in display order
var LearningSubjects = []LearningSubject{
	SubjectReading, SubjectMath, SubjectScience, SubjectSocialStudies,
	SubjectLanguage, SubjectArts, SubjectMusic, SubjectPhysicalEd,
	SubjectLifeSkills, SubjectTechnology,
}

var learningSubjectDescriptors = map[LearningSubject]CategoryDescriptor{
	SubjectReading:       {DisplayName: "Reading", Icon: "book.fill", Color: "#9C27B0"},
	SubjectMath:          {DisplayName: "Math", Icon: "number", Color: "#2196F3"},
	SubjectScience:       {DisplayName: "Science", Icon: "atom", Color: "#4CAF50"},
	SubjectSocialStudies: {DisplayName: "Social Studies", Icon: "globe.americas.fill", Color: "#FF9800"},
	SubjectLanguage:      {DisplayName: "Language", Icon: "character.bubble.fill", Color: "#E91E63"},
	SubjectArts:          {DisplayName: "Arts", Icon: "paintpalette.fill", Color: "#F44336"},
	SubjectMusic:         {DisplayName: "Music", Icon: "music.note", Color: "#00BCD4"},
	SubjectPhysicalEd:    {DisplayName: "Physical Education", Icon: "figure.run", Color: "#FF5722"},
	SubjectLifeSkills:    {DisplayName: "Life Skills", Icon: "heart.fill", Color: "#795548"},
	SubjectTechnology:    {DisplayName: "Technology", Icon: "laptopcomputer", Color: "#607D8B"},
}

// Descriptor returns the display attributes for the subject
func (s LearningSubject) Descriptor() CategoryDescriptor {
	return learningSubjectDescriptors[s]
}

// GoalPriority orders goals by importance
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

var goalPriorityDescriptors = map[GoalPriority]CategoryDescriptor{
	PriorityLow:    {DisplayName: "Low", Color: "#4CAF50"},
	PriorityMedium: {DisplayName: "Medium", Color: "#FF9800"},
	PriorityHigh:   {DisplayName: "High", Color: "#F44336"},
}

var goalPriorityRank = map[GoalPriority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
}

// Descriptor returns the display attributes for the priority
func (p GoalPriority) Descriptor() CategoryDescriptor {
	return goalPriorityDescriptors[p]
}

// Rank returns the numeric ordering of the priority, highest last
func (p GoalPriority) Rank() int {
	return goalPriorityRank[p]
}

// GoalTimeframe is the cadence a goal is measured over
type GoalTimeframe string

const (
	TimeframeDaily     GoalTimeframe = "daily"
	TimeframeWeekly    GoalTimeframe = "weekly"
	TimeframeMonthly   GoalTimeframe = "monthly"
	TimeframeQuarterly GoalTimeframe = "quarterly"
	TimeframeYearly    GoalTimeframe = "yearly"
)

var goalTimeframeNames = map[GoalTimeframe]string{
	TimeframeDaily:     "Daily",
	TimeframeWeekly:    "Weekly",
	TimeframeMonthly:   "Monthly",
	TimeframeQuarterly: "Quarterly",
	TimeframeYearly:    "Yearly",
}

// DisplayName returns the label for the timeframe
func (t GoalTimeframe) DisplayName() string {
	return goalTimeframeNames[t]
}

// ParentLearningGoal is one learning goal a parent tracks for a child
type ParentLearningGoal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Subject      LearningSubject `json:"subject"`
	Priority     GoalPriority    `json:"priority"`
	Timeframe    GoalTimeframe   `json:"timeframe"`
	TargetValue  int             `json:"targetValue"`
	CurrentValue int             `json:"currentValue"`
	Unit         string          `json:"unit"`
	StartDate    time.Time       `json:"startDate"`
	TargetDate   *time.Time      `json:"targetDate,omitempty"`
	IsCompleted  bool            `json:"isCompleted"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Milestones   []GoalMilestone `json:"milestones"`
	Notes        []GoalNote      `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Progress returns completion as a fraction in [0, 1]. A goal with a
// non-positive target reports zero progress.
func (g ParentLearningGoal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	p := float64(g.CurrentValue) / float64(g.TargetValue)
	if p > 1 {
		return 1
	}
	return p
}

// GoalMilestone is an intermediate checkpoint within a goal
type GoalMilestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	TargetValue int        `json:"targetValue"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// GoalNote is a dated free-text note attached to a goal
type GoalNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// LearningGoalsSettings is the persisted state of the learning goals screen
type LearningGoalsSettings struct {
	Goals              []ParentLearningGoal `json:"goals"`
	FocusSubjects      []LearningSubject    `json:"focusSubjects"`
	ShowCompletedGoals bool                 `json:"showCompletedGoals"`
	DefaultTimeframe   GoalTimeframe        `json:"defaultTimeframe"`
}

// NewLearningGoalsSettings returns the all-default settings value
func NewLearningGoalsSettings() LearningGoalsSettings {
	return LearningGoalsSettings{
		DefaultTimeframe: TimeframeWeekly,
	}
}
