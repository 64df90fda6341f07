package models

import "github.com/google/uuid"

// FilterLevel sets how aggressively content is filtered
type FilterLevel string

const (
	FilterStrict   FilterLevel = "strict"
	FilterModerate FilterLevel = "moderate"
	FilterRelaxed  FilterLevel = "relaxed"
)

// FilterLevels lists every level in display order
var FilterLevels = []FilterLevel{FilterStrict, FilterModerate, FilterRelaxed}

// filterLevelInfo bundles the per-level display copy
type filterLevelInfo struct {
	displayName string
	description string
	icon        string
	color       string
}

var filterLevelTable = map[FilterLevel]filterLevelInfo{
	FilterStrict: {
		displayName: "Strict",
		description: "Maximum filtering. Blocks most sensitive topics.",
		icon:        "shield.fill",
		color:       "red",
	},
	FilterModerate: {
		displayName: "Moderate",
		description: "Balanced filtering. Recommended for most families.",
		icon:        "shield.lefthalf.filled",
		color:       "orange",
	},
	FilterRelaxed: {
		displayName: "Relaxed",
		description: "Minimal filtering. For older, trusted children.",
		icon:        "shield",
		color:       "green",
	},
}

// DisplayName returns the label for the level
func (l FilterLevel) DisplayName() string {
	return filterLevelTable[l].displayName
}

// Description returns the parent-facing blurb for the level
func (l FilterLevel) Description() string {
	return filterLevelTable[l].description
}

// Descriptor returns the display attributes for the level
func (l FilterLevel) Descriptor() CategoryDescriptor {
	info := filterLevelTable[l]
	return CategoryDescriptor{DisplayName: info.displayName, Icon: info.icon, Color: info.color}
}

// BlockedTopic is one topic the filter may block
type BlockedTopic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsBlocked bool   `json:"isBlocked"`
}

// FilterAction is what a custom rule does on match
type FilterAction string

const (
	ActionBlock    FilterAction = "block"
	ActionWarn     FilterAction = "warn"
	ActionRedirect FilterAction = "redirect"
)

var filterActionNames = map[FilterAction]string{
	ActionBlock:    "Block",
	ActionWarn:     "Warn",
	ActionRedirect: "Redirect",
}

// DisplayName returns the label for the action
func (a FilterAction) DisplayName() string {
	return filterActionNames[a]
}

// CustomFilterRule is a parent-authored pattern rule
type CustomFilterRule struct {
	ID        string       `json:"id"`
	Pattern   string       `json:"pattern"`
	Action    FilterAction `json:"action"`
	IsEnabled bool         `json:"isEnabled"`
}

// ContentFilterSettings is the persisted state of the content filter screen
type ContentFilterSettings struct {
	FilterLevel            FilterLevel        `json:"filterLevel"`
	BlockedWords           []string           `json:"blockedWords"`
	BlockedTopics          []BlockedTopic     `json:"blockedTopics"`
	AllowedExceptions      []string           `json:"allowedExceptions"`
	BlockExternalLinks     bool               `json:"blockExternalLinks"`
	BlockPersonalQuestions bool               `json:"blockPersonalQuestions"`
	BlockViolentContent    bool               `json:"blockViolentContent"`
	BlockScaryContent      bool               `json:"blockScaryContent"`
	CustomRules            []CustomFilterRule `json:"customRules"`
}

// NewContentFilterSettings returns the all-default settings value
func NewContentFilterSettings() ContentFilterSettings {
	return ContentFilterSettings{
		FilterLevel:            FilterModerate,
		BlockExternalLinks:     true,
		BlockPersonalQuestions: true,
		BlockViolentContent:    true,
		BlockScaryContent:      true,
	}
}

// DefaultBlockedTopics returns the built-in topic list. IDs are assigned
// once per call; callers hold onto one copy for the process lifetime.
func DefaultBlockedTopics() []BlockedTopic {
	topics := []BlockedTopic{
		// Violence
		{Name: "Weapons", Category: "Violence", IsBlocked: true},
		{Name: "Fighting", Category: "Violence", IsBlocked: true},
		{Name: "War", Category: "Violence", IsBlocked: true},
		{Name: "Gore", Category: "Violence", IsBlocked: true},
		// Mature
		{Name: "Dating", Category: "Mature", IsBlocked: true},
		{Name: "Romantic Relationships", Category: "Mature", IsBlocked: false},
		{Name: "Adult Content", Category: "Mature", IsBlocked: true},
		// Scary
		{Name: "Monsters", Category: "Scary", IsBlocked: false},
		{Name: "Ghosts", Category: "Scary", IsBlocked: false},
		{Name: "Horror Stories", Category: "Scary", IsBlocked: true},
		{Name: "Nightmares", Category: "Scary", IsBlocked: false},
		// Sensitive
		{Name: "Death", Category: "Sensitive", IsBlocked: false},
		{Name: "Illness", Category: "Sensitive", IsBlocked: false},
		{Name: "Divorce", Category: "Sensitive", IsBlocked: false},
		{Name: "Politics", Category: "Sensitive", IsBlocked: true},
		{Name: "Religion", Category: "Sensitive", IsBlocked: false},
		// Safety
		{Name: "Personal Information", Category: "Safety", IsBlocked: true},
		{Name: "Strangers", Category: "Safety", IsBlocked: true},
		{Name: "Secrets", Category: "Safety", IsBlocked: true},
	}

	for i := range topics {
		topics[i].ID = uuid.New().String()
	}
	return topics
}
