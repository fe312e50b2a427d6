package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if PresetOneMinute >= PresetFiveMinutes || PresetFiveMinutes >= PresetTenMinutes {
		t.Fatalf("presets must be increasing")
	}
	if DefaultPreset != PresetOneMinute {
		t.Fatalf("expected the one-minute preset at startup")
	}
	if AlertThreshold <= 0 || AlertThreshold >= PresetOneMinute {
		t.Fatalf("unexpected alert threshold %d", AlertThreshold)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DefaultSoundName == "" {
		t.Fatalf("DefaultSoundName should not be empty")
	}
}

func TestLayoutConstants(t *testing.T) {
	if 2*RingRadiusX+1 > PanelWidth {
		t.Fatalf("ring (%d cols) does not fit the panel (%d)", 2*RingRadiusX+1, PanelWidth)
	}
	if 2*(ButtonWidth+2)+ButtonGap > PanelWidth {
		t.Fatalf("buttons do not fit the panel")
	}
	if FrameInterval <= 0 {
		t.Fatalf("FrameInterval must be positive")
	}
}
