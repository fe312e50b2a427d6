package testutil

import "github.com/akyairhashvil/ringtimer/internal/models"

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{timer: models.NewTimer()}
}

// WithPreset selects p and refills the ring, as a tap on the clock would.
func (b *TimerBuilder) WithPreset(p models.Preset) *TimerBuilder {
	b.timer.Total = p
	b.timer.Remaining = p.Seconds()
	b.timer.Progress = 1.0
	return b
}

// WithRemaining sets the remaining seconds and the matching ring fill.
func (b *TimerBuilder) WithRemaining(seconds int) *TimerBuilder {
	b.timer.Remaining = seconds
	if b.timer.Total > 0 {
		b.timer.Progress = float64(seconds) / float64(b.timer.Total)
	}
	return b
}

func (b *TimerBuilder) Running() *TimerBuilder {
	b.timer.Running = true
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer
}
