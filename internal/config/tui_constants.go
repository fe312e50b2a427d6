package config

import "time"

// Layout constants.
const (
	// PanelWidth is the fixed inner width of the timer panel.
	PanelWidth = 40

	// PanelMarginTop and PanelMarginLeft offset the panel from the
	// terminal's top-left corner.
	PanelMarginTop  = 1
	PanelMarginLeft = 2

	// PanelPaddingY and PanelPaddingX pad the panel contents.
	PanelPaddingY = 1
	PanelPaddingX = 2

	// RingRadiusX and RingRadiusY size the progress ring in cells. Cells
	// are roughly twice as tall as they are wide, hence the 2:1 ratio.
	RingRadiusX = 15
	RingRadiusY = 7

	// RingThickness is the ring's half-width, relative to its radius.
	RingThickness = 0.13

	// ButtonWidth is the inner width of the start/pause and reset buttons.
	ButtonWidth = 10

	// ButtonGap separates the two buttons.
	ButtonGap = 4
)

// Animation.
const (
	// FrameRate drives the ring animation while it is settling.
	FrameRate = 60

	// SpringFrequency and SpringDamping tune the ring animation.
	SpringFrequency = 6.0
	SpringDamping   = 1.0

	// SettleEpsilon is how close the animated ring must be to its target
	// before it snaps and the frame loop stops.
	SettleEpsilon = 0.002
)

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / FrameRate
