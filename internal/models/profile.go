package models

import "time"

// ChildProfile describes one child who uses the robot
type ChildProfile struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Nickname           string     `json:"nickname"`
	Avatar             string     `json:"avatar"`
	AvatarColor        string     `json:"avatarColor"`
	BirthDate          time.Time  `json:"birthDate"`
	Interests          []string   `json:"interests"`
	AgeContentLevel    string     `json:"ageContentLevel"`
	IsActive           bool       `json:"isActive"`
	CreatedAt          time.Time  `json:"createdAt"`
	LastActiveAt       *time.Time `json:"lastActiveAt,omitempty"`
	TotalConversations int        `json:"totalConversations"`
	TotalScreenTime    float64    `json:"totalScreenTime"` // seconds
}

// Age returns the child's age in whole years as of now
func (p ChildProfile) Age(now time.Time) int {
	years := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// AgeGroupLabel returns the display bucket for the child's age
func (p ChildProfile) AgeGroupLabel(now time.Time) string {
	switch age := p.Age(now); {
	case age <= 3:
		return "Toddler"
	case age <= 6:
		return "Preschool"
	case age <= 9:
		return "Early Elementary"
	case age <= 12:
		return "Pre-Teen"
	default:
		return "Child"
	}
}

// NewChildProfile creates a profile with display defaults applied. An empty
// nickname falls back to the child's name.
func NewChildProfile(id, name, nickname string, birthDate, now time.Time) ChildProfile {
	if nickname == "" {
		nickname = name
	}
	return ChildProfile{
		ID:              id,
		Name:            name,
		Nickname:        nickname,
		Avatar:          "person.circle.fill",
		AvatarColor:     "007AFF",
		BirthDate:       birthDate,
		AgeContentLevel: "early_elementary",
		IsActive:        true,
		CreatedAt:       now,
	}
}
