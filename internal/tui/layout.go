package tui

import "github.com/akyairhashvil/ringtimer/internal/config"

// rect is a screen region in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Content rows inside the panel, top to bottom.
const (
	rowRing    = 0
	rowStatus  = rowRing + ringRows
	rowButtons = rowStatus + 2

	buttonOuterWidth  = config.ButtonWidth + 2
	buttonOuterHeight = 3
	buttonsWidth      = 2*buttonOuterWidth + config.ButtonGap
)

// layout holds the clickable regions in screen coordinates.
type layout struct {
	clock  rect
	toggle rect
	reset  rect
}

// centerOffset is the left padding that centres width w in the panel.
func centerOffset(w int) int {
	if w >= config.PanelWidth {
		return 0
	}
	return (config.PanelWidth - w) / 2
}

func panelLayout() layout {
	originX := config.PanelMarginLeft + config.PanelPaddingX
	originY := config.PanelMarginTop + config.PanelPaddingY

	ringLeft := originX + centerOffset(ringCols)
	clockLeft := ringLeft + (ringCols-clockWidth)/2
	buttonsLeft := originX + centerOffset(buttonsWidth)
	buttonsTop := originY + rowButtons

	return layout{
		clock: rect{
			x: clockLeft,
			y: originY + rowRing + config.RingRadiusY - 1,
			w: clockWidth,
			h: 3,
		},
		toggle: rect{x: buttonsLeft, y: buttonsTop, w: buttonOuterWidth, h: buttonOuterHeight},
		reset: rect{
			x: buttonsLeft + buttonOuterWidth + config.ButtonGap,
			y: buttonsTop,
			w: buttonOuterWidth,
			h: buttonOuterHeight,
		},
	}
}
