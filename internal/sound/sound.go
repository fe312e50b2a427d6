// Package sound locates and plays the named completion cue and the short
// warning beep used in the final seconds of a countdown.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/util"
)

//go:generate mockgen -destination=mock_sound/mock_sound.go -package=mock_sound github.com/akyairhashvil/ringtimer/internal/sound Player

// ErrAssetNotFound is returned when no file matches a sound name.
var ErrAssetNotFound = errors.New("sound asset not found")

// Player plays audio cues. Play must not block until playback ends.
type Player interface {
	Play(name string) error
	Beep() error
}

// extensions are tried in order for names given without one.
var extensions = []string{".wav", ".mp3"}

// SearchDirs returns the directories searched for sound assets: the
// configured ones first, then the data directory, then next to the binary.
func SearchDirs(configured []string) []string {
	dirs := make([]string, 0, len(configured)+2)
	for _, d := range configured {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		dirs = append(dirs, util.ExpandHome(d))
	}
	dirs = append(dirs, filepath.Join(util.DataDir(config.AppName), config.SoundsDirName))
	if exe := util.ExecutableDir(); exe != "" {
		dirs = append(dirs, filepath.Join(exe, config.SoundsDirName))
	}
	return dirs
}

// Locate resolves a sound name to a file. A name with an extension is
// matched exactly; otherwise each known extension is tried. Absolute paths
// are checked as given.
func Locate(name string, dirs []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrAssetNotFound)
	}
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range extensions {
			candidates = append(candidates, name+ext)
		}
	}
	if filepath.IsAbs(name) {
		for _, c := range candidates {
			if isFile(c) {
				return c, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	for _, dir := range dirs {
		for _, c := range candidates {
			p := filepath.Join(dir, c)
			if isFile(p) {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
