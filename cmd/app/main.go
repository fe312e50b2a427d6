package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/models"
	"github.com/akyairhashvil/ringtimer/internal/sound"
	"github.com/akyairhashvil/ringtimer/internal/tui"
	"github.com/akyairhashvil/ringtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func main() {
	var configPath string
	var showVersion bool
	var printConfig bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/ringtimer/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&printConfig, "print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if printConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ringtimer needs an interactive terminal")
		os.Exit(1)
	}

	// The terminal belongs to the UI, so diagnostics go to a file.
	path := logPath(cfg)
	util.LogError("creating log directory", os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if !tui.SetTheme(cfg.Theme) {
		log.Printf("unknown theme %q, using default", cfg.Theme)
	}

	model := tui.NewModel(buildOptions(cfg))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func logPath(cfg config.Settings) string {
	if cfg.LogFile != "" {
		return util.ExpandHome(cfg.LogFile)
	}
	return filepath.Join(util.DataDir(config.AppName), config.LogFileName)
}

func buildOptions(cfg config.Settings) tui.Options {
	mode := models.ResetToDefault
	if cfg.ResetToPreset {
		mode = models.ResetToPreset
	}
	return tui.Options{
		Player:      sound.NewSpeakerPlayer(sound.SearchDirs(cfg.SoundDirs), cfg.Volume),
		SoundName:   cfg.Sound,
		WarningBeep: cfg.WarningBeep,
		ResetMode:   mode,
		Animate:     cfg.Animate,
	}
}

func writeConfig(w io.Writer, cfg config.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
