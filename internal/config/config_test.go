package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := DefaultSettings()
	if cfg.Theme != want.Theme || cfg.Sound != want.Sound {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.WarningBeep || !cfg.Animate {
		t.Fatalf("expected warning beep and animation on by default")
	}
	if cfg.ResetToPreset {
		t.Fatalf("expected reset to snap to the default preset by default")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("theme: dracula\nsound: chime.wav\nsound-dirs:\n  - /opt/sounds\nreset-to-preset: true\nanimate: false\nvolume: -1.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected dracula theme, got %q", cfg.Theme)
	}
	if cfg.Sound != "chime.wav" {
		t.Fatalf("expected chime.wav, got %q", cfg.Sound)
	}
	if len(cfg.SoundDirs) != 1 || cfg.SoundDirs[0] != "/opt/sounds" {
		t.Fatalf("unexpected sound dirs: %v", cfg.SoundDirs)
	}
	if !cfg.ResetToPreset || cfg.Animate {
		t.Fatalf("expected file values to override defaults: %+v", cfg)
	}
	if cfg.Volume != -1.5 {
		t.Fatalf("expected volume -1.5, got %v", cfg.Volume)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RINGTIMER_THEME", "dracula")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected env to select dracula, got %q", cfg.Theme)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("theme: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}
