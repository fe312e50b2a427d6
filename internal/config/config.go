package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the runtime options read from the optional config file and
// the RINGTIMER_* environment. Presets are deliberately absent.
type Settings struct {
	Theme         string   `mapstructure:"theme" yaml:"theme"`
	Sound         string   `mapstructure:"sound" yaml:"sound"`
	SoundDirs     []string `mapstructure:"sound-dirs" yaml:"sound-dirs"`
	Volume        float64  `mapstructure:"volume" yaml:"volume"`
	WarningBeep   bool     `mapstructure:"warning-beep" yaml:"warning-beep"`
	ResetToPreset bool     `mapstructure:"reset-to-preset" yaml:"reset-to-preset"`
	Animate       bool     `mapstructure:"animate" yaml:"animate"`
	LogFile       string   `mapstructure:"log-file" yaml:"log-file"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:       DefaultTheme,
		Sound:       DefaultSoundName,
		Volume:      DefaultVolume,
		WarningBeep: true,
		Animate:     true,
	}
}

// DefaultConfigPath is $HOME/.config/ringtimer/config.yml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, ConfigFileName), nil
}

// Load reads settings from configPath, or from the default location when
// configPath is empty. A missing file is not an error.
func Load(configPath string) (Settings, error) {
	var cfg Settings
	defaults := DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("sound", defaults.Sound)
	v.SetDefault("sound-dirs", []string{})
	v.SetDefault("volume", defaults.Volume)
	v.SetDefault("warning-beep", defaults.WarningBeep)
	v.SetDefault("reset-to-preset", defaults.ResetToPreset)
	v.SetDefault("animate", defaults.Animate)
	v.SetDefault("log-file", "")

	if configPath == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if strings.TrimSpace(cfg.Sound) == "" {
		cfg.Sound = DefaultSoundName
	}
	return cfg, nil
}
