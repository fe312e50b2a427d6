package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/models"
	"gopkg.in/yaml.v3"
)

func TestLogPathDefaultsToDataDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	got := logPath(config.DefaultSettings())
	want := filepath.Join(base, "ringtimer", "ringtimer.log")
	if got != want {
		t.Fatalf("logPath = %q, want %q", got, want)
	}
}

func TestLogPathOverride(t *testing.T) {
	cfg := config.DefaultSettings()
	cfg.LogFile = "/tmp/ringtimer-test.log"
	if got := logPath(cfg); got != cfg.LogFile {
		t.Fatalf("logPath = %q", got)
	}
}

func TestBuildOptions(t *testing.T) {
	cfg := config.DefaultSettings()
	opts := buildOptions(cfg)
	if opts.ResetMode != models.ResetToDefault {
		t.Fatalf("expected default reset mode")
	}
	if opts.SoundName != config.DefaultSoundName || !opts.WarningBeep || !opts.Animate {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Player == nil {
		t.Fatalf("expected a sound player")
	}

	cfg.ResetToPreset = true
	if buildOptions(cfg).ResetMode != models.ResetToPreset {
		t.Fatalf("expected reset-to-preset mode")
	}
}

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultSettings()
	cfg.SoundDirs = []string{"/opt/sounds"}
	if err := writeConfig(&buf, cfg); err != nil {
		t.Fatalf("writeConfig failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"theme: default", "sound: timersound", "warning-beep: true", "- /opt/sounds"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	var back config.Settings
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if back.Theme != cfg.Theme || back.Sound != cfg.Sound {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
