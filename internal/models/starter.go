package models

import "github.com/google/uuid"

// StarterCategory groups conversation starters. The raw values double as
// display strings, matching the stored documents.
type StarterCategory string

const (
	StarterFeelings   StarterCategory = "Feelings & Emotions"
	StarterLearning   StarterCategory = "Learning & Curiosity"
	StarterCreativity StarterCategory = "Creativity & Imagination"
	StarterSocial     StarterCategory = "Friends & Family"
	StarterDaily      StarterCategory = "Daily Life"
	StarterFun        StarterCategory = "Fun & Games"
	StarterGrowth     StarterCategory = "Personal Growth"
)

// StarterCategories lists every category in display order
var StarterCategories = []StarterCategory{
	StarterFeelings, StarterLearning, StarterCreativity, StarterSocial,
	StarterDaily, StarterFun, StarterGrowth,
}

var starterCategoryDescriptors = map[StarterCategory]CategoryDescriptor{
	StarterFeelings:   {DisplayName: "Feelings & Emotions", Icon: "heart.fill", Color: "pink"},
	StarterLearning:   {DisplayName: "Learning & Curiosity", Icon: "lightbulb.fill", Color: "yellow"},
	StarterCreativity: {DisplayName: "Creativity & Imagination", Icon: "paintbrush.fill", Color: "purple"},
	StarterSocial:     {DisplayName: "Friends & Family", Icon: "person.2.fill", Color: "blue"},
	StarterDaily:      {DisplayName: "Daily Life", Icon: "sun.max.fill", Color: "orange"},
	StarterFun:        {DisplayName: "Fun & Games", Icon: "gamecontroller.fill", Color: "green"},
	StarterGrowth:     {DisplayName: "Personal Growth", Icon: "leaf.fill", Color: "mint"},
}

// Descriptor returns the display attributes for the category
func (c StarterCategory) Descriptor() CategoryDescriptor {
	return starterCategoryDescriptors[c]
}

// StarterAgeRange is the suggested age band for a starter
type StarterAgeRange string

const (
	StarterAgeToddler    StarterAgeRange = "2-4"
	StarterAgePreschool  StarterAgeRange = "4-6"
	StarterAgeElementary StarterAgeRange = "6-10"
	StarterAgePreteen    StarterAgeRange = "10-12"
	StarterAgeAll        StarterAgeRange = "All Ages"
)

// ConversationStarter is one prompt a parent can send to the robot
type ConversationStarter struct {
	ID         string          `json:"id"`
	Prompt     string          `json:"prompt"`
	Category   StarterCategory `json:"category"`
	AgeRange   StarterAgeRange `json:"ageRange"`
	Tags       []string        `json:"tags"`
	IsFavorite bool            `json:"isFavorite"`
	TimesUsed  int             `json:"timesUsed"`
	IsCustom   bool            `json:"isCustom"`
}

// DefaultStarters returns the built-in prompt library. IDs are assigned
// once per call; callers hold onto one copy for the process lifetime.
func DefaultStarters() []ConversationStarter {
	starters := []ConversationStarter{
		// Feelings & Emotions
		{Prompt: "How are you feeling today? Tell me about your day!", Category: StarterFeelings, Tags: []string{"emotions", "check-in"}},
		{Prompt: "What made you smile today?", Category: StarterFeelings, Tags: []string{"positive", "gratitude"}},
		{Prompt: "Is there anything that's worrying you? I'm here to listen.", Category: StarterFeelings, Tags: []string{"support", "worries"}},
		{Prompt: "What's something that made you feel proud recently?", Category: StarterFeelings, Tags: []string{"confidence", "achievement"}},
		{Prompt: "Tell me about a time you felt really brave.", Category: StarterFeelings, Tags: []string{"courage", "growth"}},

		// Learning & Curiosity
		{Prompt: "What's something new you learned today?", Category: StarterLearning, Tags: []string{"education", "curiosity"}},
		{Prompt: "If you could learn any superpower, what would it be?", Category: StarterLearning, Tags: []string{"imagination", "fun"}},
		{Prompt: "What's a question you've always wanted to ask?", Category: StarterLearning, Tags: []string{"curiosity", "wonder"}},
		{Prompt: "Can you teach me something you know really well?", Category: StarterLearning, Tags: []string{"teaching", "confidence"}},
		{Prompt: "What do you want to be when you grow up and why?", Category: StarterLearning, Tags: []string{"dreams", "future"}},

		// Creativity & Imagination
		{Prompt: "Let's make up a story together! You start with 'Once upon a time...'", Category: StarterCreativity, Tags: []string{"storytelling", "fun"}},
		{Prompt: "If you could create any invention, what would it do?", Category: StarterCreativity, Tags: []string{"invention", "imagination"}},
		{Prompt: "Describe your dream treehouse!", Category: StarterCreativity, Tags: []string{"imagination", "play"}},
		{Prompt: "If animals could talk, which one would be your best friend?", Category: StarterCreativity, Tags: []string{"animals", "imagination"}},
		{Prompt: "What would you do if you found a magic wand?", Category: StarterCreativity, Tags: []string{"magic", "fantasy"}},

		// Friends & Family
		{Prompt: "Tell me about your best friend. What do you like doing together?", Category: StarterSocial, Tags: []string{"friendship", "relationships"}},
		{Prompt: "What's your favorite thing to do with your family?", Category: StarterSocial, Tags: []string{"family", "activities"}},
		{Prompt: "How do you make someone feel better when they're sad?", Category: StarterSocial, Tags: []string{"empathy", "kindness"}},
		{Prompt: "What makes someone a good friend?", Category: StarterSocial, Tags: []string{"values", "friendship"}},
		{Prompt: "Is there someone at school you'd like to be better friends with?", Category: StarterSocial, Tags: []string{"school", "relationships"}},

		// Daily Life
		{Prompt: "What's your favorite part of the day?", Category: StarterDaily, Tags: []string{"routine", "preferences"}},
		{Prompt: "What did you eat for breakfast/lunch/dinner?", Category: StarterDaily, Tags: []string{"food", "routine"}},
		{Prompt: "What's your favorite thing about your room?", Category: StarterDaily, Tags: []string{"home", "comfort"}},
		{Prompt: "If you could change one rule at home, what would it be?", Category: StarterDaily, Tags: []string{"rules", "opinions"}},
		{Prompt: "What's something you're looking forward to this week?", Category: StarterDaily, Tags: []string{"anticipation", "planning"}},

		// Fun & Games
		{Prompt: "Let's play a guessing game! Think of an animal and I'll try to guess it.", Category: StarterFun, Tags: []string{"game", "animals"}},
		{Prompt: "What's your favorite game to play? Can you teach me?", Category: StarterFun, Tags: []string{"games", "teaching"}},
		{Prompt: "If you could have any pet, real or imaginary, what would it be?", Category: StarterFun, Tags: []string{"pets", "imagination"}},
		{Prompt: "What's the silliest thing you can think of?", Category: StarterFun, Tags: []string{"humor", "silly"}},
		{Prompt: "Would you rather fly or be invisible? Why?", Category: StarterFun, Tags: []string{"hypothetical", "fun"}},

		// Personal Growth
		{Prompt: "What's something you'd like to get better at?", Category: StarterGrowth, Tags: []string{"goals", "improvement"}},
		{Prompt: "Tell me about a mistake you learned from.", Category: StarterGrowth, Tags: []string{"learning", "resilience"}},
		{Prompt: "What's one kind thing you could do for someone today?", Category: StarterGrowth, Tags: []string{"kindness", "action"}},
		{Prompt: "What's something hard that you accomplished?", Category: StarterGrowth, Tags: []string{"achievement", "perseverance"}},
		{Prompt: "How do you calm yourself down when you feel upset?", Category: StarterGrowth, Tags: []string{"coping", "emotions"}},
	}

	for i := range starters {
		starters[i].ID = uuid.New().String()
		starters[i].AgeRange = StarterAgeAll
	}
	return starters
}
