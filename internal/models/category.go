package models

// CategoryDescriptor carries the display attributes shared by every
// category enumeration on the dashboard: a human-readable name, an icon
// token, and a color token. Each enum exposes its descriptors through a
// lookup table instead of repeating per-value switches.
type CategoryDescriptor struct {
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}
