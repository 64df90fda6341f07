package models

import (
	"time"

	"github.com/google/uuid"
)

// BedtimeStoryGenre categorizes stories in the bedtime queue
type BedtimeStoryGenre string

const (
	GenreAdventure   BedtimeStoryGenre = "adventure"
	GenreFantasy     BedtimeStoryGenre = "fantasy"
	GenreAnimals     BedtimeStoryGenre = "animals"
	GenreFriendship  BedtimeStoryGenre = "friendship"
	GenreBedtime     BedtimeStoryGenre = "bedtime"
	GenreEducational BedtimeStoryGenre = "educational"
	GenreFairytale   BedtimeStoryGenre = "fairytale"
	GenreNature      BedtimeStoryGenre = "nature"
)

// BedtimeStoryGenres lists every genre in display order
var BedtimeStoryGenres = []BedtimeStoryGenre{
	GenreAdventure, GenreFantasy, GenreAnimals, GenreFriendship,
	GenreBedtime, GenreEducational, GenreFairytale, GenreNature,
}

var storyGenreDescriptors = map[BedtimeStoryGenre]CategoryDescriptor{
	GenreAdventure:   {DisplayName: "Adventure", Icon: "map.fill", Color: "#FF5722"},
	GenreFantasy:     {DisplayName: "Fantasy", Icon: "wand.and.stars", Color: "#9C27B0"},
	GenreAnimals:     {DisplayName: "Animals", Icon: "pawprint.fill", Color: "#795548"},
	GenreFriendship:  {DisplayName: "Friendship", Icon: "heart.fill", Color: "#E91E63"},
	GenreBedtime:     {DisplayName: "Bedtime", Icon: "moon.stars.fill", Color: "#3F51B5"},
	GenreEducational: {DisplayName: "Educational", Icon: "book.fill", Color: "#2196F3"},
	GenreFairytale:   {DisplayName: "Fairytale", Icon: "crown.fill", Color: "#FFD700"},
	GenreNature:      {DisplayName: "Nature", Icon: "leaf.fill", Color: "#4CAF50"},
}

// Descriptor returns the display attributes for the genre
func (g BedtimeStoryGenre) Descriptor() CategoryDescriptor {
	return storyGenreDescriptors[g]
}

// StoryLength buckets stories by reading time
type StoryLength string

const (
	StoryShort    StoryLength = "short"    // ~5 min
	StoryMedium   StoryLength = "medium"   // ~10 min
	StoryLong     StoryLength = "long"     // ~15 min
	StoryExtended StoryLength = "extended" // ~20+ min
)

var storyLengthNames = map[StoryLength]string{
	StoryShort:    "Short (~5 min)",
	StoryMedium:   "Medium (~10 min)",
	StoryLong:     "Long (~15 min)",
	StoryExtended: "Extended (~20+ min)",
}

var storyLengthShortNames = map[StoryLength]string{
	StoryShort:    "5 min",
	StoryMedium:   "10 min",
	StoryLong:     "15 min",
	StoryExtended: "20+ min",
}

// DisplayName returns the long label for the length bucket
func (l StoryLength) DisplayName() string {
	return storyLengthNames[l]
}

// ShortName returns the compact label for the length bucket
func (l StoryLength) ShortName() string {
	return storyLengthShortNames[l]
}

// BedtimeStory is one story in the library, built-in or parent-authored
type BedtimeStory struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Genre         BedtimeStoryGenre `json:"genre"`
	Length        StoryLength       `json:"length"`
	Themes        []string          `json:"themes"`
	AgeMin        int               `json:"ageMin"`
	AgeMax        int               `json:"ageMax"`
	IsFavorite    bool              `json:"isFavorite"`
	TimesRead     int               `json:"timesRead"`
	LastReadAt    *time.Time        `json:"lastReadAt,omitempty"`
	Rating        *int              `json:"rating,omitempty"`
	IsCustom      bool              `json:"isCustom"`
	CustomContent string            `json:"customContent,omitempty"`
}

// SuitsAge reports whether the story's age range includes the given age
func (s BedtimeStory) SuitsAge(age int) bool {
	return age >= s.AgeMin && age <= s.AgeMax
}

// StoryQueueItem is one scheduled entry in the bedtime queue
type StoryQueueItem struct {
	ID            string     `json:"id"`
	StoryID       string     `json:"storyId"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	AddedAt       time.Time  `json:"addedAt"`
}

// EffectiveDate is the date used for queue ordering: the scheduled date
// when one is set, otherwise the time the item was added
func (q StoryQueueItem) EffectiveDate() time.Time {
	if q.ScheduledDate != nil {
		return *q.ScheduledDate
	}
	return q.AddedAt
}

// BedtimeStoriesSettings is the persisted state of the bedtime stories screen
type BedtimeStoriesSettings struct {
	Stories           []BedtimeStory      `json:"stories"`
	Queue             []StoryQueueItem    `json:"queue"`
	PreferredGenres   []BedtimeStoryGenre `json:"preferredGenres"`
	PreferredLength   StoryLength         `json:"preferredLength"`
	BedtimeHour       int                 `json:"bedtimeHour"`
	BedtimeMinute     int                 `json:"bedtimeMinute"`
	AutoSuggestEnable bool                `json:"autoSuggestEnabled"`
	ChildAge          int                 `json:"childAge"`
}

// NewBedtimeStoriesSettings returns the all-default settings value
func NewBedtimeStoriesSettings() BedtimeStoriesSettings {
	return BedtimeStoriesSettings{
		PreferredLength:   StoryMedium,
		BedtimeHour:       20,
		BedtimeMinute:     0,
		AutoSuggestEnable: true,
		ChildAge:          5,
	}
}

// DefaultStories returns the built-in story library. IDs are assigned once
// per call; callers hold onto one copy for the process lifetime.
func DefaultStories() []BedtimeStory {
	stories := []BedtimeStory{
		// Adventure
		{Title: "The Brave Little Explorer", Description: "A young explorer discovers a hidden cave full of glowing crystals", Genre: GenreAdventure, Length: StoryMedium, Themes: []string{"courage", "discovery", "nature"}, AgeMin: 4, AgeMax: 8},
		{Title: "Captain Teddy's Voyage", Description: "A teddy bear captain sails across the bathtub ocean", Genre: GenreAdventure, Length: StoryShort, Themes: []string{"imagination", "bravery"}, AgeMin: 3, AgeMax: 6},
		{Title: "The Secret Treehouse", Description: "Three friends discover a magical treehouse in the forest", Genre: GenreAdventure, Length: StoryLong, Themes: []string{"friendship", "mystery", "nature"}, AgeMin: 5, AgeMax: 10},

		// Fantasy
		{Title: "The Dragon Who Couldn't Fly", Description: "A young dragon learns that being different is okay", Genre: GenreFantasy, Length: StoryMedium, Themes: []string{"acceptance", "perseverance"}, AgeMin: 4, AgeMax: 8},
		{Title: "Princess of the Stars", Description: "A princess travels through the night sky on her unicorn", Genre: GenreFantasy, Length: StoryMedium, Themes: []string{"dreams", "magic"}, AgeMin: 3, AgeMax: 7},
		{Title: "The Wizard's Apprentice", Description: "A young apprentice accidentally turns everything purple", Genre: GenreFantasy, Length: StoryShort, Themes: []string{"mistakes", "learning", "humor"}, AgeMin: 4, AgeMax: 9},

		// Animals
		{Title: "Ollie the Owl's First Flight", Description: "A baby owl learns to fly with help from his family", Genre: GenreAnimals, Length: StoryShort, Themes: []string{"family", "growth", "courage"}, AgeMin: 3, AgeMax: 6},
		{Title: "The Bunny Who Loved Carrots", Description: "A bunny shares her garden with forest friends", Genre: GenreAnimals, Length: StoryShort, Themes: []string{"sharing", "kindness"}, AgeMin: 2, AgeMax: 5},
		{Title: "Deep Sea Friends", Description: "Ocean creatures work together to help a lost baby whale", Genre: GenreAnimals, Length: StoryMedium, Themes: []string{"cooperation", "friendship"}, AgeMin: 4, AgeMax: 8},

		// Friendship
		{Title: "The New Kid", Description: "Making friends with someone who seems different", Genre: GenreFriendship, Length: StoryMedium, Themes: []string{"inclusion", "kindness", "diversity"}, AgeMin: 4, AgeMax: 9},
		{Title: "Best Friends Forever", Description: "Two friends learn to share and compromise", Genre: GenreFriendship, Length: StoryShort, Themes: []string{"sharing", "forgiveness"}, AgeMin: 3, AgeMax: 7},
		{Title: "The Shy Superhero", Description: "A shy child finds confidence through a new friendship", Genre: GenreFriendship, Length: StoryMedium, Themes: []string{"confidence", "friendship"}, AgeMin: 5, AgeMax: 10},

		// Bedtime
		{Title: "Goodnight Moon Garden", Description: "A peaceful journey through a moonlit garden", Genre: GenreBedtime, Length: StoryShort, Themes: []string{"peace", "nature", "sleep"}, AgeMin: 2, AgeMax: 5},
		{Title: "The Sleepy Cloud", Description: "A little cloud floats across the sky collecting dreams", Genre: GenreBedtime, Length: StoryShort, Themes: []string{"dreams", "imagination"}, AgeMin: 2, AgeMax: 6},
		{Title: "Where Stars Come From", Description: "A gentle tale about stars watching over sleeping children", Genre: GenreBedtime, Length: StoryMedium, Themes: []string{"comfort", "wonder"}, AgeMin: 3, AgeMax: 7},

		// Educational
		{Title: "Counting Sheep on the Farm", Description: "Learn to count with friendly farm animals", Genre: GenreEducational, Length: StoryShort, Themes: []string{"counting", "animals"}, AgeMin: 2, AgeMax: 5},
		{Title: "The Color Rainbow", Description: "Discover how rainbows get their beautiful colors", Genre: GenreEducational, Length: StoryMedium, Themes: []string{"colors", "nature", "science"}, AgeMin: 3, AgeMax: 7},
		{Title: "A Trip Around the World", Description: "Visit different countries and learn about cultures", Genre: GenreEducational, Length: StoryLong, Themes: []string{"geography", "culture", "diversity"}, AgeMin: 5, AgeMax: 10},

		// Fairytale
		{Title: "The Kind Cobbler", Description: "A shoemaker's kindness is magically rewarded", Genre: GenreFairytale, Length: StoryMedium, Themes: []string{"kindness", "magic", "reward"}, AgeMin: 4, AgeMax: 9},
		{Title: "The Talking Mirror", Description: "A magical mirror teaches a princess about inner beauty", Genre: GenreFairytale, Length: StoryMedium, Themes: []string{"self-esteem", "inner beauty"}, AgeMin: 5, AgeMax: 10},
		{Title: "Three Wishes", Description: "A child learns to make wishes wisely", Genre: GenreFairytale, Length: StoryShort, Themes: []string{"wisdom", "choices"}, AgeMin: 4, AgeMax: 8},

		// Nature
		{Title: "The Little Seed's Journey", Description: "A seed grows into a beautiful flower", Genre: GenreNature, Length: StoryShort, Themes: []string{"growth", "patience", "nature"}, AgeMin: 3, AgeMax: 6},
		{Title: "Rainy Day Wonders", Description: "Discovering the magic in a rainy day", Genre: GenreNature, Length: StoryMedium, Themes: []string{"weather", "appreciation"}, AgeMin: 3, AgeMax: 7},
		{Title: "The Forest at Night", Description: "Explore the peaceful sounds of the nighttime forest", Genre: GenreNature, Length: StoryMedium, Themes: []string{"nature", "calm", "night"}, AgeMin: 4, AgeMax: 9},
	}

	for i := range stories {
		stories[i].ID = uuid.New().String()
	}
	return stories
}
