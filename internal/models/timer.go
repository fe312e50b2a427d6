package models

import (
	"fmt"

	"github.com/akyairhashvil/ringtimer/internal/config"
)

// Timer is the countdown state. It knows nothing about how ticks are
// scheduled; the caller attaches and detaches its tick source alongside
// Start and Stop.
type Timer struct {
	Total     Preset
	Remaining int
	Running   bool
	// Progress is Remaining/Total as of the last tick, preset change or
	// reset. It is only used for drawing the ring.
	Progress float64
}

// NewTimer returns the startup state: one minute, stopped, empty ring.
func NewTimer() Timer {
	return Timer{
		Total:     Preset(config.DefaultPreset),
		Remaining: config.DefaultPreset,
	}
}

// Status derives the observable state.
func (t Timer) Status() Status {
	switch {
	case t.Running:
		return StatusRunning
	case t.Remaining == 0:
		return StatusFinished
	default:
		return StatusStopped
	}
}

// CanStart reports whether Start would begin a countdown.
func (t Timer) CanStart() bool {
	return !t.Running && t.Remaining > 0
}

// Start begins running. It is a no-op when already running or when there
// is nothing left to count down.
func (t *Timer) Start() bool {
	if !t.CanStart() {
		return false
	}
	t.Running = true
	return true
}

// Stop pauses the countdown. Stopping a stopped timer is harmless.
func (t *Timer) Stop() {
	t.Running = false
}

// Toggle starts a stopped timer or stops a running one and reports whether
// anything changed.
func (t *Timer) Toggle() bool {
	if t.Running {
		t.Stop()
		return true
	}
	return t.Start()
}

// Reset stops the timer and refills the ring.
func (t *Timer) Reset(mode ResetMode) {
	t.Stop()
	switch mode {
	case ResetToPreset:
		t.Remaining = t.Total.Seconds()
	default:
		t.Remaining = config.DefaultPreset
	}
	t.Progress = 1.0
}

// CyclePreset advances to the next preset. Ignored while running.
func (t *Timer) CyclePreset() bool {
	if t.Running {
		return false
	}
	t.Total = t.Total.Next()
	t.Remaining = t.Total.Seconds()
	t.Progress = 1.0
	return true
}

// Tick advances the countdown by one second. On reaching zero the timer
// stops and Finished is set; the caller plays the cue.
func (t *Timer) Tick() TickResult {
	if !t.Running {
		return TickResult{}
	}
	if t.Remaining > 0 {
		t.Remaining--
		t.Progress = t.fraction()
	}
	if t.Remaining == 0 {
		t.Stop()
		return TickResult{Applied: true, Finished: true}
	}
	return TickResult{Applied: true}
}

// InAlert reports whether the alert colour applies.
func (t Timer) InAlert() bool {
	return t.Remaining <= config.AlertThreshold
}

// Clock formats the remaining time as MM:SS.
func (t Timer) Clock() string {
	r := t.Remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}

func (t Timer) fraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	f := float64(t.Remaining) / float64(t.Total)
	if f > 1 {
		return 1
	}
	return f
}
