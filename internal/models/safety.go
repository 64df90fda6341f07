package models

import "time"

// FlagSeverity grades how serious a content flag is
type FlagSeverity string

const (
	SeverityLow      FlagSeverity = "low"
	SeverityMedium   FlagSeverity = "medium"
	SeverityHigh     FlagSeverity = "high"
	SeverityCritical FlagSeverity = "critical"
)

var flagSeverityNames = map[FlagSeverity]string{
	SeverityLow:      "Low",
	SeverityMedium:   "Medium",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

var flagSeverityColors = map[FlagSeverity]string{
	SeverityLow:      "#0099FF",
	SeverityMedium:   "#FFA500",
	SeverityHigh:     "#FF4500",
	SeverityCritical: "#FF0000",
}

var flagSeverityRank = map[FlagSeverity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// DisplayName returns the label for the severity
func (s FlagSeverity) DisplayName() string {
	return flagSeverityNames[s]
}

// Color returns the display color for the severity
func (s FlagSeverity) Color() string {
	return flagSeverityColors[s]
}

// Rank returns the numeric ordering of the severity, most serious last
func (s FlagSeverity) Rank() int {
	return flagSeverityRank[s]
}

// ShouldEmailParent reports whether flags at this severity warrant email
func (s FlagSeverity) ShouldEmailParent() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// ShouldAlertImmediately reports whether flags at this severity demand an
// immediate notification
func (s FlagSeverity) ShouldAlertImmediately() bool {
	return s == SeverityCritical
}

// FlagCategory classifies what a content flag detected
type FlagCategory string

const (
	FlagInappropriateLanguage FlagCategory = "inappropriate_language"
	FlagBullyingMention       FlagCategory = "bullying_mention"
	FlagSadnessRepeated       FlagCategory = "sadness_repeated"
	FlagAngerRepeated         FlagCategory = "anger_repeated"
	FlagSelfHarmLanguage      FlagCategory = "self_harm_language"
	FlagAbuseIndicators       FlagCategory = "abuse_indicators"
	FlagPrivacyRisk           FlagCategory = "privacy_risk"
)

// FlagCategories lists every category in display order
var FlagCategories = []FlagCategory{
	FlagInappropriateLanguage, FlagBullyingMention, FlagSadnessRepeated,
	FlagAngerRepeated, FlagSelfHarmLanguage, FlagAbuseIndicators,
	FlagPrivacyRisk,
}

// flagCategoryInfo bundles the per-category copy shown to parents
type flagCategoryInfo struct {
	displayName       string
	description       string
	recommendedAction string
	defaultSeverity   FlagSeverity
}

var flagCategoryTable = map[FlagCategory]flagCategoryInfo{
	FlagInappropriateLanguage: {
		displayName:       "Inappropriate Language",
		description:       "Child used language that may be inappropriate for their age",
		recommendedAction: "Talk with your child about appropriate language use",
		defaultSeverity:   SeverityLow,
	},
	FlagBullyingMention: {
		displayName:       "Bullying Mention",
		description:       "Child mentioned being bullied or bullying others",
		recommendedAction: "Discuss the situation with your child and consider contacting school",
		defaultSeverity:   SeverityMedium,
	},
	FlagSadnessRepeated: {
		displayName:       "Repeated Sadness",
		description:       "Child expressed sadness multiple times in conversation",
		recommendedAction: "Check in with your child about how they're feeling",
		defaultSeverity:   SeverityMedium,
	},
	FlagAngerRepeated: {
		displayName:       "Repeated Anger",
		description:       "Child expressed anger or frustration multiple times",
		recommendedAction: "Help your child develop healthy ways to express frustration",
		defaultSeverity:   SeverityMedium,
	},
	FlagSelfHarmLanguage: {
		displayName:       "Self-Harm Language",
		description:       "Child used language suggesting self-harm thoughts",
		recommendedAction: "Seek immediate professional help - contact a therapist or call 988",
		defaultSeverity:   SeverityCritical,
	},
	FlagAbuseIndicators: {
		displayName:       "Abuse Indicators",
		description:       "Child mentioned situations that may indicate abuse",
		recommendedAction: "Document the conversation and contact appropriate authorities",
		defaultSeverity:   SeverityCritical,
	},
	FlagPrivacyRisk: {
		displayName:       "Privacy Risk",
		description:       "Child shared personal information (address, phone, etc.)",
		recommendedAction: "Remind your child about online safety and private information",
		defaultSeverity:   SeverityHigh,
	},
}

// DisplayName returns the label for the category
func (c FlagCategory) DisplayName() string {
	return flagCategoryTable[c].displayName
}

// Description returns the parent-facing explanation of the category
func (c FlagCategory) Description() string {
	return flagCategoryTable[c].description
}

// RecommendedAction returns the suggested parent response
func (c FlagCategory) RecommendedAction() string {
	return flagCategoryTable[c].recommendedAction
}

// DefaultSeverity returns the severity a new flag in this category gets
// when the detector does not grade it explicitly
func (c FlagCategory) DefaultSeverity() FlagSeverity {
	return flagCategoryTable[c].defaultSeverity
}

// ContentFlag records one safety concern raised during a conversation
type ContentFlag struct {
	ID             string       `json:"id"`
	Timestamp      time.Time    `json:"timestamp"`
	Severity       FlagSeverity `json:"severity"`
	Category       FlagCategory `json:"category"`
	MessageContent string       `json:"messageContent"`
	ContextLines   []string     `json:"contextMessages"`
	AIExplanation  string       `json:"aiExplanation"`
	Reviewed       bool         `json:"reviewed"`
}

// CategoryAlertSetting configures alerting for one flag category
type CategoryAlertSetting struct {
	Enabled         bool         `json:"enabled"`
	EmailNotify     bool         `json:"emailNotify"`
	PushNotify      bool         `json:"pushNotify"`
	MinimumSeverity FlagSeverity `json:"minimumSeverity"`
}

// NewCategoryAlertSetting returns the all-default per-category setting
func NewCategoryAlertSetting() CategoryAlertSetting {
	return CategoryAlertSetting{
		Enabled:         true,
		EmailNotify:     true,
		PushNotify:      true,
		MinimumSeverity: SeverityLow,
	}
}

// SafetyAlertSettings is the persisted state of the safety alerts screen
type SafetyAlertSettings struct {
	EmailOnFlag          bool                            `json:"emailOnFlag"`
	EmailOnPINFailure    bool                            `json:"emailOnPINFailure"`
	EmailOnTimeExtension bool                            `json:"emailOnTimeExtension"`
	DailySummary         bool                            `json:"dailySummary"`
	WeeklySummary        bool                            `json:"weeklySummary"`
	InstantNotifications bool                            `json:"instantNotifications"`
	CategorySettings     map[string]CategoryAlertSetting `json:"categorySettings"`
}

// NewSafetyAlertSettings returns the all-default settings value
func NewSafetyAlertSettings() SafetyAlertSettings {
	return SafetyAlertSettings{
		EmailOnFlag:          true,
		EmailOnPINFailure:    true,
		EmailOnTimeExtension: true,
		DailySummary:         false,
		WeeklySummary:        true,
		InstantNotifications: true,
		CategorySettings:     map[string]CategoryAlertSetting{},
	}
}

// CategorySetting returns the alerting config for a category, falling back
// to the defaults when the category has never been configured
func (s SafetyAlertSettings) CategorySetting(c FlagCategory) CategoryAlertSetting {
	if setting, ok := s.CategorySettings[string(c)]; ok {
		return setting
	}
	return NewCategoryAlertSetting()
}
