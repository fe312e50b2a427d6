package tui

import (
	"math"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		return m.handleTick(msg)
	case frameMsg:
		return m.handleFrame()
	case cueDoneMsg, beepDoneMsg:
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.detach()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleRunning()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Preset):
		return m.cyclePreset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	l := panelLayout()
	switch {
	case l.clock.contains(msg.X, msg.Y):
		return m.cyclePreset()
	case l.toggle.contains(msg.X, msg.Y):
		return m.toggleRunning()
	case l.reset.contains(msg.X, msg.Y):
		return m.reset()
	}
	return m, nil
}

// toggleRunning starts a stopped timer with time left, or stops a running
// one. At zero it does nothing until reset.
func (m Model) toggleRunning() (Model, tea.Cmd) {
	if m.timer.Running {
		m.detach()
		return m, nil
	}
	if !m.timer.Start() {
		return m, nil
	}
	m.gen++
	cmd := m.tickCmd()
	return m, cmd
}

// detach stops the countdown and drops its tick source. Safe to repeat.
func (m *Model) detach() {
	m.timer.Stop()
	m.gen++
}

func (m Model) reset() (Model, tea.Cmd) {
	m.detach()
	m.timer.Reset(m.resetMode)
	cmd := m.animateCmd()
	return m, cmd
}

// cyclePreset moves to the next preset. Taps while running are ignored.
func (m Model) cyclePreset() (Model, tea.Cmd) {
	if !m.timer.CyclePreset() {
		return m, nil
	}
	cmd := m.animateCmd()
	return m, cmd
}

func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen || !m.timer.Running {
		return m, nil
	}
	res := m.timer.Tick()
	var cmds []tea.Cmd
	if res.Finished {
		m.detach()
		cmds = append(cmds, cueCmd(m.player, m.soundName))
	} else {
		cmds = append(cmds, m.tickCmd())
		if m.warningBeep && m.timer.InAlert() {
			cmds = append(cmds, beepCmd(m.player))
		}
	}
	cmds = append(cmds, m.animateCmd())
	return m, tea.Batch(cmds...)
}

// animateCmd starts the frame loop if the ring is not at its target. With
// animation off the ring jumps straight there.
func (m *Model) animateCmd() tea.Cmd {
	target := m.timer.Progress
	if !m.animate {
		m.shown = target
		m.velocity = 0
		return nil
	}
	if m.animating || m.settled(target) {
		return nil
	}
	m.animating = true
	return m.frameCmd()
}

func (m Model) handleFrame() (Model, tea.Cmd) {
	target := m.timer.Progress
	m.shown, m.velocity = m.spring.Update(m.shown, m.velocity, target)
	if m.settled(target) {
		m.shown = target
		m.velocity = 0
		m.animating = false
		return m, nil
	}
	return m, m.frameCmd()
}

func (m Model) settled(target float64) bool {
	return math.Abs(m.shown-target) < config.SettleEpsilon &&
		math.Abs(m.velocity) < config.SettleEpsilon
}
