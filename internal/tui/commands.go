package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/sound"
	"github.com/akyairhashvil/ringtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one countdown tick. gen identifies the tick source that
// scheduled it; ticks from a detached source are dropped.
type tickMsg struct {
	gen int
}

// frameMsg advances the ring animation.
type frameMsg struct{}

// cueDoneMsg reports the outcome of playing the completion cue.
type cueDoneMsg struct {
	err error
}

// beepDoneMsg reports the outcome of a warning beep.
type beepDoneMsg struct {
	err error
}

// scheduleFunc matches tea.Tick.
type scheduleFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return m.schedule(config.TickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) frameCmd() tea.Cmd {
	return m.schedule(config.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// cueCmd plays the named asset. A failure, typically a missing asset, is
// logged and otherwise ignored.
func cueCmd(p sound.Player, name string) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		err := p.Play(name)
		util.LogError(fmt.Sprintf("play cue %q", name), err)
		return cueDoneMsg{err: err}
	}
}

func beepCmd(p sound.Player) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		err := p.Beep()
		util.LogError("warning beep", err)
		return beepDoneMsg{err: err}
	}
}
