// Package service implements the dashboard feature logic: one service per
// screen, each owning its settings envelope, its filter pipeline, and its
// mutations. Every mutation saves the whole envelope synchronously.
package service

import (
	"strings"
	"time"
)

// Storage keys, one JSON document per feature
const (
	activitySettingsKey     = "activitySuggestionsSettings"
	bedtimeStoriesKey       = "bedtimeStoriesSettings"
	conversationStartersKey = "moxie_conversation_starters"
	learningGoalsKey        = "learningGoalsSettings"
	parentalNotesKey        = "parentalNotesSettings"
	socialSkillsKey         = "socialSkillsSettings"
	childProfilesKey        = "moxie_child_profiles"
	activeProfileKey        = "moxie_active_profile"
	quietHoursKey           = "moxie_quiet_hours_settings"
	safetyAlertsKey         = "moxie_safety_alert_settings"
	contentFlagsKey         = "moxie_content_flags"
	voiceSettingsKey        = "moxie_voice_settings"
	contentFilterKey        = "moxie_content_filter_settings"
	rewardsKey              = "moxie_rewards_state"
	screenTimeKey           = "moxie_screen_time_data"
)

// Clock supplies the current time. Services take it as a dependency so
// tests can pin "now".
type Clock func() time.Time

// sameWeek reports whether two instants fall in the same ISO week
func sameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// containsFold reports whether s contains substr, case-insensitively
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
