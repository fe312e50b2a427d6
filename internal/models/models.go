package models

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/ringtimer/internal/config"
)

// Preset is a countdown length in seconds.
type Preset int

const (
	PresetOneMinute   Preset = config.PresetOneMinute
	PresetFiveMinutes Preset = config.PresetFiveMinutes
	PresetTenMinutes  Preset = config.PresetTenMinutes
)

// Presets lists the presets in cycle order.
var Presets = []Preset{PresetOneMinute, PresetFiveMinutes, PresetTenMinutes}

// Next returns the preset after p in the 1 -> 5 -> 10 -> 1 minute cycle.
// Anything that is not a known preset cycles back to one minute.
func (p Preset) Next() Preset {
	switch p {
	case PresetOneMinute:
		return PresetFiveMinutes
	case PresetFiveMinutes:
		return PresetTenMinutes
	default:
		return PresetOneMinute
	}
}

func (p Preset) Seconds() int {
	return int(p)
}

func (p Preset) Duration() time.Duration {
	return time.Duration(p) * time.Second
}

// Label is the short name shown under the ring, e.g. "5 min".
func (p Preset) Label() string {
	return fmt.Sprintf("%d min", int(p)/60)
}

// Status enumerates the observable timer states.
type Status string

const (
	StatusStopped  Status = "stopped"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished" // stopped with nothing left
)

// ResetMode selects what Reset restores the remaining time to.
type ResetMode int

const (
	// ResetToDefault snaps remaining back to the one-minute default
	// regardless of the selected preset.
	ResetToDefault ResetMode = iota
	// ResetToPreset restores remaining to the selected preset.
	ResetToPreset
)

// TickResult reports what a single tick did.
type TickResult struct {
	Applied  bool // false when the timer was not running
	Finished bool // the countdown reached zero on this tick
}
