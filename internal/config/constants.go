package config

import "time"

// Countdown presets, in seconds. Tapping the time text cycles through them
// in this order.
const (
	PresetOneMinute   = 60
	PresetFiveMinutes = 300
	PresetTenMinutes  = 600
)

// Timer behaviour.
const (
	// DefaultPreset is the preset selected at startup. Reset also snaps
	// back to it unless reset-to-preset is enabled.
	DefaultPreset = PresetOneMinute

	// TickInterval is the countdown cadence.
	TickInterval = time.Second

	// AlertThreshold is the remaining-seconds mark at or below which the
	// ring and the time text switch to the alert colour.
	AlertThreshold = 5
)

// Sound defaults.
const (
	DefaultSoundName = "timersound"
	DefaultVolume    = 0.0
	SoundsDirName    = "sounds"

	// WarningBeepFreq and WarningBeepMillis shape the short beep played on
	// each tick inside the alert window.
	WarningBeepFreq   = 880.0
	WarningBeepMillis = 120
)

// Application settings.
const (
	AppName        = "ringtimer"
	LogFileName    = "ringtimer.log"
	ConfigFileName = "config.yml"
	EnvPrefix      = "RINGTIMER"
	DefaultTheme   = "default"
)
