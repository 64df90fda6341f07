package service

import (
	"context"
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
	"moxiedash/internal/speech"
)

func TestSelectVoiceAppliesTuningDefaults(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewVoiceService(store, speech.Silent{})

	if err := svc.SetSpeakingSpeed(1.8); err != nil {
		t.Fatalf("SetSpeakingSpeed() error = %v", err)
	}
	if err := svc.SelectVoice(models.VoiceCalm); err != nil {
		t.Fatalf("SelectVoice() error = %v", err)
	}

	settings := svc.Settings()
	if settings.SelectedVoice != models.VoiceCalm {
		t.Errorf("SelectedVoice = %q, want %q", settings.SelectedVoice, models.VoiceCalm)
	}
	if settings.SpeakingSpeed != 0.9 {
		t.Errorf("SpeakingSpeed = %v, want voice default 0.9", settings.SpeakingSpeed)
	}
	if settings.Pitch != 0.95 {
		t.Errorf("Pitch = %v, want voice default 0.95", settings.Pitch)
	}
}

func TestVoiceSlidersClamp(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewVoiceService(store, speech.Silent{})

	tests := []struct {
		name string
		set  func() error
		get  func() float64
		want float64
	}{
		{"speed above max", func() error { return svc.SetSpeakingSpeed(3.0) }, func() float64 { return svc.Settings().SpeakingSpeed }, 2.0},
		{"pitch below min", func() error { return svc.SetPitch(0.1) }, func() float64 { return svc.Settings().Pitch }, 0.5},
		{"volume above max", func() error { return svc.SetVolume(1.5) }, func() float64 { return svc.Settings().Volume }, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set(); err != nil {
				t.Fatalf("setter error = %v", err)
			}
			if got := tt.get(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVoiceSettingsRoundTrip(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewVoiceService(store, speech.Silent{})

	if err := svc.SelectVoice(models.VoicePlayful); err != nil {
		t.Fatalf("SelectVoice() error = %v", err)
	}
	if err := svc.SetBackgroundMusic(true, 0.6); err != nil {
		t.Fatalf("SetBackgroundMusic() error = %v", err)
	}

	reloaded := NewVoiceService(store, speech.Silent{})
	settings := reloaded.Settings()
	if settings.SelectedVoice != models.VoicePlayful {
		t.Errorf("SelectedVoice after reload = %q, want %q", settings.SelectedVoice, models.VoicePlayful)
	}
	if !settings.EnableBackgroundMusic || settings.BackgroundMusicVolume != 0.6 {
		t.Errorf("background music after reload = %v/%v, want true/0.6",
			settings.EnableBackgroundMusic, settings.BackgroundMusicVolume)
	}
}

func TestResetToDefaults(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewVoiceService(store, speech.Silent{})

	if err := svc.SelectVoice(models.VoiceCalm); err != nil {
		t.Fatalf("SelectVoice() error = %v", err)
	}
	if err := svc.SetVolume(0.3); err != nil {
		t.Fatalf("SetVolume() error = %v", err)
	}
	if err := svc.ResetToDefaults(); err != nil {
		t.Fatalf("ResetToDefaults() error = %v", err)
	}

	want := models.NewVoiceSettings()
	got := svc.Settings()
	if got != want {
		t.Errorf("Settings() after reset = %+v, want %+v", got, want)
	}

	reloaded := NewVoiceService(store, speech.Silent{})
	if reloaded.Settings() != want {
		t.Errorf("Settings() after reload = %+v, want defaults", reloaded.Settings())
	}
}

func TestPlayPreviewClearsSpeakingFlag(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewVoiceService(store, speech.Silent{})

	if _, err := svc.PlayPreview(context.Background()); err != nil {
		t.Fatalf("PlayPreview() error = %v", err)
	}
	if svc.IsSpeaking() {
		t.Error("IsSpeaking() after preview = true, want false")
	}
}
