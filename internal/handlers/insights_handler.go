package handlers

import (
	"net/http"
	"strconv"
	"time"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// InsightsHandler handles the read-mostly analytics screens: screen time,
// topics, rewards, social skills, and the weekly report
type InsightsHandler struct {
	screenTime *service.ScreenTimeService
	topics     *service.TopicsService
	rewards    *service.RewardService
	skills     *service.SkillsService
	reports    *service.ReportService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(screenTime *service.ScreenTimeService, topics *service.TopicsService, rewards *service.RewardService, skills *service.SkillsService, reports *service.ReportService) *InsightsHandler {
	return &InsightsHandler{
		screenTime: screenTime,
		topics:     topics,
		rewards:    rewards,
		skills:     skills,
		reports:    reports,
	}
}

// GetScreenTime returns usage totals and the daily breakdown
func (h *InsightsHandler) GetScreenTime(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 90 {
			respondWithError(w, http.StatusBadRequest, "Days must be 1-90", err)
			return
		}
		days = parsed
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"todayTotal":  h.screenTime.TodayTotal(),
		"weekTotal":   h.screenTime.WeekTotal(),
		"byFeature":   h.screenTime.TimeByFeature(),
		"dailyTotals": h.screenTime.DailyTotals(days),
	})
}

// RecordSession appends a usage session reported by the robot
func (h *InsightsHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	duration, err := strconv.ParseFloat(r.FormValue("duration"), 64)
	if err != nil || duration <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid duration", err)
		return
	}
	session, err := h.screenTime.RecordSession(
		models.FeatureType(r.FormValue("feature")),
		duration,
		r.FormValue("personality"),
	)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record session", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// GetTopics returns the conversation topic analysis
func (h *InsightsHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"topics":         h.topics.Topics(),
		"categoryTotals": h.topics.CategoryTotals(),
		"totalMentions":  h.topics.TotalMentions(),
	})
}

// GetRewards returns the achievement state
func (h *InsightsHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalPoints": h.rewards.TotalPoints(),
		"earned":      h.rewards.EarnedAchievements(),
		"inProgress":  h.rewards.InProgressAchievements(),
	})
}

// RecordRewardProgress advances an achievement's counter
func (h *InsightsHandler) RecordRewardProgress(w http.ResponseWriter, r *http.Request) {
	by := 1
	if v := r.FormValue("by"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid increment", err)
			return
		}
		by = parsed
	}
	if err := h.rewards.RecordProgress(r.PathValue("id"), by); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record progress", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetSkills returns the social skill tracking state
func (h *InsightsHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	var category *models.SocialSkillCategory
	if v := r.URL.Query().Get("category"); v != "" {
		c := models.SocialSkillCategory(v)
		category = &c
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skills": h.skills.SkillsByCategory(category),
		"goals":  h.skills.Goals(),
		"recent": h.skills.RecentlyUpdated(5),
	})
}

// CreateSkill starts tracking a social skill
func (h *InsightsHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("skillName")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Skill name is required", nil)
		return
	}
	sk, err := h.skills.AddSkill(models.SocialSkillCategory(r.FormValue("category")), name)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save skill", err)
		return
	}
	writeJSON(w, http.StatusCreated, sk)
}

// SetSkillLevel records a new mastery level
func (h *InsightsHandler) SetSkillLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.FormValue("level"))
	if err != nil || level < int(models.LevelEmerging) || level > int(models.LevelMastered) {
		respondWithError(w, http.StatusBadRequest, "Level must be 1-5", err)
		return
	}
	if err := h.skills.SetSkillLevel(r.PathValue("id"), models.SkillLevel(level)); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update skill", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddObservation records a dated observation against a skill
func (h *InsightsHandler) AddObservation(w http.ResponseWriter, r *http.Request) {
	var obs models.SkillObservation
	if err := decodeJSON(r, &obs); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid observation", err)
		return
	}
	if err := h.skills.AddObservation(r.PathValue("id"), obs); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save observation", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// CreateSkillGoal sets a target level for a skill
func (h *InsightsHandler) CreateSkillGoal(w http.ResponseWriter, r *http.Request) {
	target, err := strconv.Atoi(r.FormValue("targetLevel"))
	if err != nil || target < int(models.LevelEmerging) || target > int(models.LevelMastered) {
		respondWithError(w, http.StatusBadRequest, "Target level must be 1-5", err)
		return
	}
	var targetDate *time.Time
	if v := r.FormValue("targetDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid target date", err)
			return
		}
		targetDate = &parsed
	}
	goal, err := h.skills.AddGoal(r.PathValue("id"), models.SkillLevel(target), targetDate)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// DeleteSkill stops tracking a skill and its goals
func (h *InsightsHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.skills.DeleteSkill(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete skill", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetWeeklyReport returns this week's report card with grades
func (h *InsightsHandler) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	report := h.reports.CurrentReport()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report": report,
		"grades": map[string]string{
			"overall":    report.OverallGrade(),
			"engagement": report.EngagementGrade(),
			"learning":   report.LearningGrade(),
			"creativity": report.CreativityGrade(),
			"mood":       report.MoodGrade(),
		},
	})
}

// EmailWeeklyReport sends this week's report to the parent
func (h *InsightsHandler) EmailWeeklyReport(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.EmailCurrentReport(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
