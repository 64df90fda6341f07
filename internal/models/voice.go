package models

// VoiceType is one of the robot's selectable voice personas
type VoiceType string

const (
	VoiceFriendly    VoiceType = "friendly"
	VoiceEnergetic   VoiceType = "energetic"
	VoiceCalm        VoiceType = "calm"
	VoicePlayful     VoiceType = "playful"
	VoiceEducational VoiceType = "educational"
)

// VoiceTypes lists every voice in display order
var VoiceTypes = []VoiceType{
	VoiceFriendly, VoiceEnergetic, VoiceCalm, VoicePlayful, VoiceEducational,
}

// voiceTypeInfo bundles the per-voice display copy and tuning defaults
type voiceTypeInfo struct {
	displayName  string
	description  string
	icon         string
	color        string
	defaultSpeed float64
	defaultPitch float64
}

var voiceTypeTable = map[VoiceType]voiceTypeInfo{
	VoiceFriendly: {
		displayName:  "Friendly Moxie",
		description:  "Warm and welcoming, perfect for everyday conversations",
		icon:         "face.smiling.fill",
		color:        "blue",
		defaultSpeed: 1.0,
		defaultPitch: 1.0,
	},
	VoiceEnergetic: {
		displayName:  "Energetic Moxie",
		description:  "Upbeat and exciting, great for games and activities",
		icon:         "bolt.fill",
		color:        "orange",
		defaultSpeed: 1.15,
		defaultPitch: 1.1,
	},
	VoiceCalm: {
		displayName:  "Calm Moxie",
		description:  "Soothing and gentle, ideal for bedtime or anxious moments",
		icon:         "leaf.fill",
		color:        "green",
		defaultSpeed: 0.9,
		defaultPitch: 0.95,
	},
	VoicePlayful: {
		displayName:  "Playful Moxie",
		description:  "Silly and fun, makes learning feel like play",
		icon:         "party.popper.fill",
		color:        "pink",
		defaultSpeed: 1.1,
		defaultPitch: 1.15,
	},
	VoiceEducational: {
		displayName:  "Teacher Moxie",
		description:  "Clear and focused, optimized for learning sessions",
		icon:         "graduationcap.fill",
		color:        "purple",
		defaultSpeed: 0.95,
		defaultPitch: 1.0,
	},
}

// DisplayName returns the label for the voice
func (v VoiceType) DisplayName() string {
	return voiceTypeTable[v].displayName
}

// Description returns the parent-facing blurb for the voice
func (v VoiceType) Description() string {
	return voiceTypeTable[v].description
}

// Descriptor returns the display attributes for the voice
func (v VoiceType) Descriptor() CategoryDescriptor {
	info := voiceTypeTable[v]
	return CategoryDescriptor{DisplayName: info.displayName, Icon: info.icon, Color: info.color}
}

// DefaultSpeed returns the speaking speed the voice resets to
func (v VoiceType) DefaultSpeed() float64 {
	return voiceTypeTable[v].defaultSpeed
}

// DefaultPitch returns the pitch the voice resets to
func (v VoiceType) DefaultPitch() float64 {
	return voiceTypeTable[v].defaultPitch
}

// VoiceSettings is the persisted state of the voice settings screen.
// Speed and pitch range 0.5 to 2.0; volumes range 0.0 to 1.0.
type VoiceSettings struct {
	SelectedVoice            VoiceType `json:"selectedVoice"`
	SpeakingSpeed            float64   `json:"speakingSpeed"`
	Pitch                    float64   `json:"pitch"`
	Volume                   float64   `json:"volume"`
	EnableSoundEffects       bool      `json:"enableSoundEffects"`
	SoundEffectVolume        float64   `json:"soundEffectVolume"`
	EnableBackgroundMusic    bool      `json:"enableBackgroundMusic"`
	BackgroundMusicVolume    float64   `json:"backgroundMusicVolume"`
	EnableNotificationSounds bool      `json:"enableNotificationSounds"`
	AutoAdjustForAmbience    bool      `json:"autoAdjustForAmbience"`
	PreferredLanguage        string    `json:"preferredLanguage"`
}

// NewVoiceSettings returns the all-default settings value
func NewVoiceSettings() VoiceSettings {
	return VoiceSettings{
		SelectedVoice:            VoiceFriendly,
		SpeakingSpeed:            1.0,
		Pitch:                    1.0,
		Volume:                   0.8,
		EnableSoundEffects:       true,
		SoundEffectVolume:        0.5,
		EnableBackgroundMusic:    false,
		BackgroundMusicVolume:    0.3,
		EnableNotificationSounds: true,
		AutoAdjustForAmbience:    false,
		PreferredLanguage:        "en-US",
	}
}

// PreviewPhrase is the sample sentence spoken when testing voice settings
const PreviewPhrase = "Hi there! I'm Moxie, and I'm so happy to be your friend!"
