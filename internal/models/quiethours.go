package models

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day without a date
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// MinutesOfDay returns the time as minutes after midnight
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// String formats the time as "h:04 PM"
func (c ClockTime) String() string {
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if c.Hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, period)
}

// QuietSchedule is one recurring window when the robot stays silent.
// Days of week use 1 = Sunday through 7 = Saturday.
type QuietSchedule struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  ClockTime `json:"startTime"`
	EndTime    ClockTime `json:"endTime"`
	DaysOfWeek []int     `json:"daysOfWeek"`
	IsEnabled  bool      `json:"isEnabled"`
}

var quietDayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaysDescription returns a compact label for the schedule's days
func (s QuietSchedule) DaysDescription() string {
	if len(s.DaysOfWeek) == 7 {
		return "Every day"
	}
	if equalIntSlices(s.DaysOfWeek, []int{2, 3, 4, 5, 6}) {
		return "Weekdays"
	}
	if equalIntSlices(s.DaysOfWeek, []int{1, 7}) {
		return "Weekends"
	}
	names := make([]string, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		if d >= 1 && d <= 7 {
			names = append(names, quietDayNames[d-1])
		}
	}
	return strings.Join(names, ", ")
}

// CoversDay reports whether the schedule applies on the given weekday
func (s QuietSchedule) CoversDay(weekday int) bool {
	for _, d := range s.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}

// Contains reports whether the instant falls inside the schedule's window
// on a day it covers. The window is start-inclusive, end-exclusive.
func (s QuietSchedule) Contains(t time.Time) bool {
	weekday := int(t.Weekday()) + 1
	if !s.CoversDay(weekday) {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= s.StartTime.MinutesOfDay() && minutes < s.EndTime.MinutesOfDay()
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// QuietHoursSettings is the persisted state of the quiet hours screen
type QuietHoursSettings struct {
	IsEnabled             bool            `json:"isEnabled"`
	Schedules             []QuietSchedule `json:"schedules"`
	QuietMessage          string          `json:"quietMessage"`
	AllowEmergency        bool            `json:"allowEmergencyOverride"`
	EmergencyKeyword      string          `json:"emergencyKeyword"`
	NotifyParentOnAttempt bool            `json:"notifyParentOnAttempt"`
}

// NewQuietHoursSettings returns the all-default settings value
func NewQuietHoursSettings() QuietHoursSettings {
	return QuietHoursSettings{
		IsEnabled:             true,
		QuietMessage:          "Moxie is taking a nap right now. Come back later!",
		AllowEmergency:        true,
		EmergencyKeyword:      "emergency",
		NotifyParentOnAttempt: true,
	}
}

// QuietStatus describes whether quiet hours are in effect right now
type QuietStatus struct {
	IsQuiet bool   `json:"isQuiet"`
	Message string `json:"message"`
}
