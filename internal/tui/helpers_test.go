package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/ringtimer/internal/models"
	"github.com/akyairhashvil/ringtimer/internal/sound"
	tea "github.com/charmbracelet/bubbletea"
)

// immediate replaces tea.Tick so scheduled messages arrive without waiting.
func immediate(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

func newTestModel(t *testing.T, player sound.Player, opts ...func(*Options)) Model {
	t.Helper()
	o := Options{
		Player:      player,
		SoundName:   "timersound",
		WarningBeep: true,
		ResetMode:   models.ResetToDefault,
	}
	for _, fn := range opts {
		fn(&o)
	}
	m := NewModel(o)
	m.schedule = immediate
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, k string) (Model, tea.Cmd) {
	return update(m, keyMsg(k))
}

func click(m Model, r rect) (Model, tea.Cmd) {
	return update(m, tea.MouseMsg{
		X:      r.x + r.w/2,
		Y:      r.y + r.h/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

// collect runs cmd and returns every message it yields, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// step feeds everything cmd produces back into the model and returns the
// follow-up commands.
func step(m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	var next []tea.Cmd
	for _, msg := range collect(cmd) {
		var c tea.Cmd
		m, c = update(m, msg)
		next = append(next, c)
	}
	return m, tea.Batch(next...)
}
