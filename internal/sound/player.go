package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/gen2brain/beeep"
)

// SpeakerPlayer decodes assets with beep and plays them on the default
// audio device. The device is opened lazily on the first cue, at that
// asset's sample rate; later assets are resampled to it.
type SpeakerPlayer struct {
	dirs   []string
	volume float64

	mu   sync.Mutex
	rate beep.SampleRate

	beepFn     func(freq float64, millis int) error
	beepFreq   float64
	beepMillis int
}

// NewSpeakerPlayer returns a player searching dirs for assets. volume is
// in powers of two relative to the file's level; 0 leaves it unchanged.
func NewSpeakerPlayer(dirs []string, volume float64) *SpeakerPlayer {
	return &SpeakerPlayer{
		dirs:       dirs,
		volume:     volume,
		beepFn:     beeep.Beep,
		beepFreq:   config.WarningBeepFreq,
		beepMillis: config.WarningBeepMillis,
	}
}

// Play starts playback of the named asset and returns once it is queued.
func (p *SpeakerPlayer) Play(name string) error {
	path, err := Locate(name, p.dirs)
	if err != nil {
		return err
	}
	streamer, format, err := decode(path)
	if err != nil {
		return err
	}
	rate, err := p.ensureSpeaker(format.SampleRate)
	if err != nil {
		_ = streamer.Close()
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, s)
	}
	volume := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		_ = streamer.Close()
	})))
	return nil
}

// Beep plays the short warning tone.
func (p *SpeakerPlayer) Beep() error {
	if err := p.beepFn(p.beepFreq, p.beepMillis); err != nil {
		return fmt.Errorf("warning beep: %w", err)
	}
	return nil
}

func (p *SpeakerPlayer) ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rate != 0 {
		return p.rate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("opening audio device: %w", err)
	}
	p.rate = rate
	return rate, nil
}

// decode opens path and picks a decoder by extension. Closing the returned
// streamer closes the file.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("opening %s: %w", path, err)
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return streamer, format, nil
}
