package models

import "time"

// NoteCategory classifies a parental journal note
type NoteCategory string

const (
	NoteMilestone NoteCategory = "milestone"
	NoteBehavior  NoteCategory = "behavior"
	NoteHealth    NoteCategory = "health"
	NoteLearning  NoteCategory = "learning"
	NoteSocial    NoteCategory = "social"
	NoteMemory    NoteCategory = "memory"
	NoteConcern   NoteCategory = "concern"
	NoteGratitude NoteCategory = "gratitude"
)

// NoteCategories lists every category in display order
var NoteCategories = []NoteCategory{
	NoteMilestone, NoteBehavior, NoteHealth, NoteLearning,
	NoteSocial, NoteMemory, NoteConcern, NoteGratitude,
}

var noteCategoryDescriptors = map[NoteCategory]CategoryDescriptor{
	NoteMilestone: {DisplayName: "Milestone", Icon: "star.fill", Color: "#FFD700"},
	NoteBehavior:  {DisplayName: "Behavior", Icon: "face.smiling.fill", Color: "#FF9800"},
	NoteHealth:    {DisplayName: "Health", Icon: "heart.fill", Color: "#F44336"},
	NoteLearning:  {DisplayName: "Learning", Icon: "book.fill", Color: "#2196F3"},
	NoteSocial:    {DisplayName: "Social", Icon: "person.2.fill", Color: "#4CAF50"},
	NoteMemory:    {DisplayName: "Memory", Icon: "camera.fill", Color: "#9C27B0"},
	NoteConcern:   {DisplayName: "Concern", Icon: "exclamationmark.circle.fill", Color: "#795548"},
	NoteGratitude: {DisplayName: "Gratitude", Icon: "hands.clap.fill", Color: "#E91E63"},
}

// Descriptor returns the display attributes for the category
func (c NoteCategory) Descriptor() CategoryDescriptor {
	return noteCategoryDescriptors[c]
}

// NoteMood is the parent's read of the child's mood when a note was taken
type NoteMood string

const (
	MoodVeryHappy NoteMood = "veryHappy"
	MoodHappy     NoteMood = "happy"
	MoodNeutral   NoteMood = "neutral"
	MoodSad       NoteMood = "sad"
	MoodWorried   NoteMood = "worried"
)

var noteMoodNames = map[NoteMood]string{
	MoodVeryHappy: "Very Happy",
	MoodHappy:     "Happy",
	MoodNeutral:   "Neutral",
	MoodSad:       "Sad",
	MoodWorried:   "Worried",
}

var noteMoodEmojis = map[NoteMood]string{
	MoodVeryHappy: "😄",
	MoodHappy:     "🙂",
	MoodNeutral:   "😐",
	MoodSad:       "😢",
	MoodWorried:   "😟",
}

// DisplayName returns the label for the mood
func (m NoteMood) DisplayName() string {
	return noteMoodNames[m]
}

// Emoji returns the emoji glyph for the mood
func (m NoteMood) Emoji() string {
	return noteMoodEmojis[m]
}

// ParentalNote is one journal entry a parent keeps about their child
type ParentalNote struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Mood      *NoteMood    `json:"mood,omitempty"`
	Tags      []string     `json:"tags"`
	IsPinned  bool         `json:"isPinned"`
	IsPrivate bool         `json:"isPrivate"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// HasTag reports whether the note carries the given tag
func (n ParentalNote) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// JournalPrompt is a suggested writing prompt for a new note
type JournalPrompt struct {
	Prompt   string       `json:"prompt"`
	Category NoteCategory `json:"category"`
}

// JournalPrompts returns the built-in writing prompts
func JournalPrompts() []JournalPrompt {
	return []JournalPrompt{
		{Prompt: "What made me proud of my child today?", Category: NoteMilestone},
		{Prompt: "A new word or phrase my child learned...", Category: NoteLearning},
		{Prompt: "How did my child handle a difficult emotion today?", Category: NoteBehavior},
		{Prompt: "A funny thing my child said or did...", Category: NoteMemory},
		{Prompt: "Something new my child tried today...", Category: NoteMilestone},
		{Prompt: "How my child showed kindness to others...", Category: NoteSocial},
		{Prompt: "A worry I have about my child...", Category: NoteConcern},
		{Prompt: "What I'm grateful for about my child today...", Category: NoteGratitude},
		{Prompt: "How my child's health has been lately...", Category: NoteHealth},
		{Prompt: "A special moment we shared together...", Category: NoteMemory},
	}
}

// ParentalNotesSettings is the persisted state of the notes screen
type ParentalNotesSettings struct {
	Notes            []ParentalNote `json:"notes"`
	CustomTags       []string       `json:"customTags"`
	ShowPrivateNotes bool           `json:"showPrivateNotes"`
	SortNewestFirst  bool           `json:"sortNewestFirst"`
}

// NewParentalNotesSettings returns the all-default settings value
func NewParentalNotesSettings() ParentalNotesSettings {
	return ParentalNotesSettings{
		ShowPrivateNotes: true,
		SortNewestFirst:  true,
	}
}
