package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	ringCols = 2*config.RingRadiusX + 1
	ringRows = 2*config.RingRadiusY + 1

	ringFilledChar = "█"
	ringTrackChar  = "░"
)

type cellKind int

const (
	cellBlank cellKind = iota
	cellTrack
	cellFilled
	cellClock
	cellLabel
)

type cell struct {
	kind cellKind
	ch   string
}

// ringAngle returns the clockwise fraction of a full turn from 12 o'clock
// to the cell at (col, row), and whether the cell lies on the ring.
func ringAngle(col, row int) (float64, bool) {
	dx := float64(col-config.RingRadiusX) / config.RingRadiusX
	dy := float64(row-config.RingRadiusY) / config.RingRadiusY
	d := math.Hypot(dx, dy)
	if math.Abs(d-1) > config.RingThickness {
		return 0, false
	}
	frac := math.Atan2(dx, -dy) / (2 * math.Pi)
	if frac < 0 {
		frac++
	}
	return frac, true
}

// ringCells lays out the ring with the clock text centred inside it and
// the preset label under the clock.
func ringCells(progress float64, clock, label string) [][]cell {
	progress = util.ClampUnit(progress)
	grid := make([][]cell, ringRows)
	for row := range grid {
		grid[row] = make([]cell, ringCols)
		for col := range grid[row] {
			frac, on := ringAngle(col, row)
			switch {
			case !on:
				grid[row][col] = cell{kind: cellBlank, ch: " "}
			case frac < progress:
				grid[row][col] = cell{kind: cellFilled, ch: ringFilledChar}
			default:
				grid[row][col] = cell{kind: cellTrack, ch: ringTrackChar}
			}
		}
	}

	text := bigText(clock)
	for i, line := range text {
		overlay(grid[config.RingRadiusY-1+i], line, cellClock)
	}
	if label != "" {
		overlay(grid[config.RingRadiusY+3], label, cellLabel)
	}
	return grid
}

func overlay(row []cell, text string, kind cellKind) {
	start := (len(row) - ansi.StringWidth(text)) / 2
	if start < 0 {
		start = 0
	}
	i := start
	for _, r := range text {
		if i >= len(row) {
			return
		}
		row[i] = cell{kind: kind, ch: string(r)}
		i++
	}
}

// renderRing draws the progress ring. In alert the ring and the clock use
// the alert style.
func renderRing(theme Theme, progress float64, clock, label string, alert bool) string {
	styles := cellStyles(theme, alert)
	grid := ringCells(progress, clock, label)
	lines := make([]string, len(grid))
	for r, row := range grid {
		var b strings.Builder
		var run strings.Builder
		kind := row[0].kind
		for _, c := range row {
			if c.kind != kind {
				b.WriteString(styles[kind].Render(run.String()))
				run.Reset()
				kind = c.kind
			}
			run.WriteString(c.ch)
		}
		b.WriteString(styles[kind].Render(run.String()))
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func cellStyles(theme Theme, alert bool) map[cellKind]lipgloss.Style {
	styles := map[cellKind]lipgloss.Style{
		cellBlank:  theme.Panel,
		cellTrack:  theme.Track,
		cellFilled: theme.Ring,
		cellClock:  theme.Clock,
		cellLabel:  theme.Label,
	}
	if alert {
		styles[cellFilled] = theme.Alert
		styles[cellClock] = theme.Alert
	}
	return styles
}
