package tui

import (
	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/models"
	"github.com/akyairhashvil/ringtimer/internal/sound"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// Options configures a Model.
type Options struct {
	Player      sound.Player
	SoundName   string
	WarningBeep bool
	ResetMode   models.ResetMode
	Animate     bool
}

// Model is the single timer view. It owns the countdown state and its tick
// source, and all mutation happens in Update.
type Model struct {
	timer models.Timer
	// gen identifies the attached tick source. Every attach and detach
	// bumps it so in-flight ticks from an older source are ignored.
	gen int

	player      sound.Player
	soundName   string
	warningBeep bool
	resetMode   models.ResetMode

	animate   bool
	animating bool
	spring    harmonica.Spring
	shown     float64
	velocity  float64

	schedule scheduleFunc
	keys     KeyMap
	help     help.Model
	width    int
	height   int
}

func NewModel(opts Options) Model {
	name := opts.SoundName
	if name == "" {
		name = config.DefaultSoundName
	}
	t := models.NewTimer()
	return Model{
		timer:       t,
		player:      opts.Player,
		soundName:   name,
		warningBeep: opts.WarningBeep,
		resetMode:   opts.ResetMode,
		animate:     opts.Animate,
		spring:      harmonica.NewSpring(harmonica.FPS(config.FrameRate), config.SpringFrequency, config.SpringDamping),
		shown:       t.Progress,
		schedule:    tea.Tick,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Timer returns a copy of the countdown state.
func (m Model) Timer() models.Timer {
	return m.timer
}

// Running reports whether a tick source is attached.
func (m Model) Running() bool {
	return m.timer.Running
}

// DisplayedProgress is the ring fill currently drawn, which trails
// Timer().Progress while the animation settles.
func (m Model) DisplayedProgress() float64 {
	return m.shown
}
