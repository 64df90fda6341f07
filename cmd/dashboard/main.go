package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moxiedash/internal/clipboard"
	"moxiedash/internal/config"
	"moxiedash/internal/database"
	"moxiedash/internal/email"
	"moxiedash/internal/handlers"
	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
	"moxiedash/internal/service"
	"moxiedash/internal/speech"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	store := prefs.NewDatabaseStore(db)

	// Email notifications for safety alerts and weekly summaries
	mailer, err := email.NewService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.ParentEmail, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Voice preview audio cache
	if err := os.MkdirAll(cfg.AudioCachePath, 0o755); err != nil {
		log.Fatalf("Failed to create audio cache directory: %v", err)
	}
	synth := speech.NewGoogleSynthesizer(cfg.AudioCachePath, cfg.TTSTimeout)

	// Initialize services
	activityService := service.NewActivityService(store, models.DefaultActivities(), time.Now)
	storyService := service.NewStoryService(store, models.DefaultStories(), time.Now)
	starterService := service.NewStarterService(store, models.DefaultStarters(), clipboard.NewMemory())
	goalService := service.NewGoalService(store, time.Now)
	noteService := service.NewNoteService(store, time.Now)
	profileService := service.NewProfileService(store, time.Now)
	quietService := service.NewQuietHoursService(store, time.Now)
	safetyService := service.NewSafetyService(store, mailer, time.Now)
	voiceService := service.NewVoiceService(store, synth)
	filterService := service.NewFilterService(store)
	rewardService := service.NewRewardService(store, time.Now)
	screenTimeService := service.NewScreenTimeService(store, time.Now)
	skillsService := service.NewSkillsService(store, time.Now)
	topicsService := service.NewTopicsService()
	reportService := service.NewReportService(screenTimeService, safetyService, rewardService, topicsService, time.Now)

	// Initialize handlers
	activityHandler := handlers.NewActivityHandler(activityService)
	storyHandler := handlers.NewStoryHandler(storyService)
	starterHandler := handlers.NewStarterHandler(starterService)
	goalHandler := handlers.NewGoalHandler(goalService)
	noteHandler := handlers.NewNoteHandler(noteService)
	profileHandler := handlers.NewProfileHandler(profileService)
	quietHandler := handlers.NewQuietHoursHandler(quietService)
	safetyHandler := handlers.NewSafetyHandler(safetyService)
	settingsHandler := handlers.NewSettingsHandler(voiceService, filterService)
	insightsHandler := handlers.NewInsightsHandler(screenTimeService, topicsService, rewardService, skillsService, reportService)

	// Setup routes
	mux := http.NewServeMux()

	// Activity suggestions
	mux.HandleFunc("GET /api/activities", activityHandler.ListActivities)
	mux.HandleFunc("POST /api/activities", activityHandler.CreateActivity)
	mux.HandleFunc("POST /api/activities/{id}/favorite", activityHandler.ToggleFavorite)
	mux.HandleFunc("POST /api/activities/{id}/complete", activityHandler.MarkCompleted)
	mux.HandleFunc("POST /api/activities/settings", activityHandler.UpdateSettings)

	// Bedtime stories and the play queue
	mux.HandleFunc("GET /api/stories", storyHandler.ListStories)
	mux.HandleFunc("POST /api/stories", storyHandler.CreateStory)
	mux.HandleFunc("DELETE /api/stories/{id}", storyHandler.DeleteStory)
	mux.HandleFunc("POST /api/stories/{id}/favorite", storyHandler.ToggleFavorite)
	mux.HandleFunc("POST /api/stories/{id}/rate", storyHandler.RateStory)
	mux.HandleFunc("POST /api/stories/{id}/queue", storyHandler.Enqueue)
	mux.HandleFunc("DELETE /api/stories/{id}/queue", storyHandler.Dequeue)
	mux.HandleFunc("POST /api/stories/queue/{itemId}/play", storyHandler.PlayQueueItem)
	mux.HandleFunc("POST /api/stories/queue/{itemId}/move", storyHandler.MoveQueueItem)

	// Conversation starters
	mux.HandleFunc("GET /api/starters", starterHandler.ListStarters)
	mux.HandleFunc("POST /api/starters", starterHandler.CreateStarter)
	mux.HandleFunc("DELETE /api/starters/{id}", starterHandler.DeleteStarter)
	mux.HandleFunc("POST /api/starters/{id}/favorite", starterHandler.ToggleFavorite)
	mux.HandleFunc("POST /api/starters/{id}/use", starterHandler.UseStarter)

	// Learning goals
	mux.HandleFunc("GET /api/goals", goalHandler.ListGoals)
	mux.HandleFunc("POST /api/goals", goalHandler.CreateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", goalHandler.DeleteGoal)
	mux.HandleFunc("POST /api/goals/{id}/increment", goalHandler.IncrementProgress)
	mux.HandleFunc("POST /api/goals/{id}/decrement", goalHandler.DecrementProgress)
	mux.HandleFunc("POST /api/goals/{id}/notes", goalHandler.AddNote)
	mux.HandleFunc("POST /api/goals/{id}/milestones/{milestoneId}/toggle", goalHandler.ToggleMilestone)

	// Parental notes
	mux.HandleFunc("GET /api/notes", noteHandler.ListNotes)
	mux.HandleFunc("POST /api/notes", noteHandler.CreateNote)
	mux.HandleFunc("PUT /api/notes/{id}", noteHandler.UpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", noteHandler.DeleteNote)
	mux.HandleFunc("POST /api/notes/{id}/pin", noteHandler.TogglePin)

	// Child profiles
	mux.HandleFunc("GET /api/profiles", profileHandler.ListProfiles)
	mux.HandleFunc("POST /api/profiles", profileHandler.CreateProfile)
	mux.HandleFunc("DELETE /api/profiles/{id}", profileHandler.DeleteProfile)
	mux.HandleFunc("POST /api/profiles/{id}/activate", profileHandler.ActivateProfile)

	// Quiet hours
	mux.HandleFunc("GET /api/quiet-hours", quietHandler.GetQuietHours)
	mux.HandleFunc("POST /api/quiet-hours", quietHandler.UpdateQuietHours)
	mux.HandleFunc("POST /api/quiet-hours/schedules", quietHandler.CreateSchedule)
	mux.HandleFunc("DELETE /api/quiet-hours/schedules/{id}", quietHandler.DeleteSchedule)
	mux.HandleFunc("POST /api/quiet-hours/schedules/{id}/toggle", quietHandler.ToggleSchedule)

	// Safety alerts
	mux.HandleFunc("GET /api/safety", safetyHandler.GetSafety)
	mux.HandleFunc("POST /api/safety/flags", safetyHandler.RecordFlag)
	mux.HandleFunc("POST /api/safety/flags/{id}/review", safetyHandler.ReviewFlag)
	mux.HandleFunc("POST /api/safety/settings", safetyHandler.UpdateSafetySettings)
	mux.HandleFunc("PUT /api/safety/categories/{category}", safetyHandler.UpdateCategorySetting)

	// Voice settings
	mux.HandleFunc("GET /api/voice", settingsHandler.GetVoice)
	mux.HandleFunc("POST /api/voice", settingsHandler.UpdateVoice)
	mux.HandleFunc("POST /api/voice/select/{voice}", settingsHandler.SelectVoice)
	mux.HandleFunc("POST /api/voice/reset", settingsHandler.ResetVoice)
	mux.HandleFunc("POST /api/voice/preview", settingsHandler.PlayPreview)

	// Content filter
	mux.HandleFunc("GET /api/filter", settingsHandler.GetContentFilter)
	mux.HandleFunc("POST /api/filter", settingsHandler.UpdateContentFilter)
	mux.HandleFunc("GET /api/filter/check", settingsHandler.CheckText)
	mux.HandleFunc("POST /api/filter/topics/{id}/toggle", settingsHandler.ToggleTopic)
	mux.HandleFunc("POST /api/filter/rules", settingsHandler.CreateFilterRule)
	mux.HandleFunc("DELETE /api/filter/rules/{id}", settingsHandler.DeleteFilterRule)

	// Usage and insights
	mux.HandleFunc("GET /api/screen-time", insightsHandler.GetScreenTime)
	mux.HandleFunc("POST /api/screen-time/sessions", insightsHandler.RecordSession)
	mux.HandleFunc("GET /api/topics", insightsHandler.GetTopics)
	mux.HandleFunc("GET /api/rewards", insightsHandler.GetRewards)
	mux.HandleFunc("POST /api/rewards/{id}/progress", insightsHandler.RecordRewardProgress)
	mux.HandleFunc("GET /api/skills", insightsHandler.GetSkills)
	mux.HandleFunc("POST /api/skills", insightsHandler.CreateSkill)
	mux.HandleFunc("DELETE /api/skills/{id}", insightsHandler.DeleteSkill)
	mux.HandleFunc("POST /api/skills/{id}/level", insightsHandler.SetSkillLevel)
	mux.HandleFunc("POST /api/skills/{id}/observations", insightsHandler.AddObservation)
	mux.HandleFunc("POST /api/skills/{id}/goals", insightsHandler.CreateSkillGoal)
	mux.HandleFunc("GET /api/report", insightsHandler.GetWeeklyReport)
	mux.HandleFunc("POST /api/report/email", insightsHandler.EmailWeeklyReport)

	// Serve cached voice preview audio
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioCachePath))))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
