package service

import (
	"context"
	"fmt"
	"sync"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
	"moxiedash/internal/speech"
)

// VoiceService manages the voice settings screen and voice previews
type VoiceService struct {
	mu         sync.Mutex
	store      prefs.Store
	synth      speech.Synthesizer
	settings   models.VoiceSettings
	isSpeaking bool
}

// NewVoiceService creates the service and loads any stored settings. A nil
// synthesizer disables previews.
func NewVoiceService(store prefs.Store, synth speech.Synthesizer) *VoiceService {
	s := &VoiceService{store: store, synth: synth}
	s.settings = models.NewVoiceSettings()
	prefs.Load(store, voiceSettingsKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *VoiceService) Settings() models.VoiceSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SelectVoice switches to a voice persona and resets speed and pitch to
// that voice's tuning defaults
func (s *VoiceService) SelectVoice(v models.VoiceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.SelectedVoice = v
	s.settings.SpeakingSpeed = v.DefaultSpeed()
	s.settings.Pitch = v.DefaultPitch()
	return s.save()
}

// SetSpeakingSpeed sets the speaking speed, clamped to the 0.5 to 2.0 range
func (s *VoiceService) SetSpeakingSpeed(speed float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SpeakingSpeed = clampRange(speed, 0.5, 2.0)
	return s.save()
}

// SetPitch sets the voice pitch, clamped to the 0.5 to 2.0 range
func (s *VoiceService) SetPitch(pitch float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Pitch = clampRange(pitch, 0.5, 2.0)
	return s.save()
}

// SetVolume sets the main voice volume, clamped to the 0.0 to 1.0 range
func (s *VoiceService) SetVolume(volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Volume = clampRange(volume, 0, 1)
	return s.save()
}

// SetSoundEffects configures the sound effect toggle and volume
func (s *VoiceService) SetSoundEffects(enabled bool, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.EnableSoundEffects = enabled
	s.settings.SoundEffectVolume = clampRange(volume, 0, 1)
	return s.save()
}

// SetBackgroundMusic configures the background music toggle and volume
func (s *VoiceService) SetBackgroundMusic(enabled bool, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.EnableBackgroundMusic = enabled
	s.settings.BackgroundMusicVolume = clampRange(volume, 0, 1)
	return s.save()
}

// SetNotificationSounds toggles notification sounds
func (s *VoiceService) SetNotificationSounds(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.EnableNotificationSounds = enabled
	return s.save()
}

// SetAutoAdjustForAmbience toggles ambient-noise volume adjustment
func (s *VoiceService) SetAutoAdjustForAmbience(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AutoAdjustForAmbience = enabled
	return s.save()
}

// SetPreferredLanguage sets the voice language tag
func (s *VoiceService) SetPreferredLanguage(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.PreferredLanguage = tag
	return s.save()
}

// ResetToDefaults restores the factory voice settings
func (s *VoiceService) ResetToDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = models.NewVoiceSettings()
	return s.save()
}

// IsSpeaking reports whether a preview is currently being rendered
func (s *VoiceService) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSpeaking
}

// PlayPreview synthesizes the preview phrase with the current settings and
// returns the audio filename. Only one preview renders at a time.
func (s *VoiceService) PlayPreview(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.isSpeaking {
		s.mu.Unlock()
		return "", nil
	}
	s.isSpeaking = true
	settings := s.settings
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSpeaking = false
		s.mu.Unlock()
	}()

	if s.synth == nil {
		return "", nil
	}
	filename, err := s.synth.Synthesize(ctx, models.PreviewPhrase, settings.SpeakingSpeed, settings.Pitch, settings.PreferredLanguage)
	if err != nil {
		return "", fmt.Errorf("failed to play voice preview: %w", err)
	}
	return filename, nil
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *VoiceService) save() error {
	if err := prefs.Save(s.store, voiceSettingsKey, s.settings); err != nil {
		return fmt.Errorf("failed to save voice settings: %w", err)
	}
	return nil
}
