package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

const sampleRate = beep.SampleRate(44100)

// tone frequencies in Hz
const (
	toneX    = 660.0
	toneO    = 440.0
	toneWin1 = 523.25
	toneWin2 = 783.99
	toneDraw = 196.0
)

// Player sends a finished streamer to an output.
type Player interface {
	Play(s beep.Streamer)
}

// Speaker plays into a mixer attached to the default audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Calling it again does nothing.
func (that *Speaker) Initialize() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	speaker.Play(that.mixer)
	that.initialized = true

	return nil
}

func (that *Speaker) Play(s beep.Streamer) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	speaker.Lock()
	that.mixer.Add(s)
	speaker.Unlock()
}

func (that *Speaker) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	that.initialized = false
}

// Cues plays a short sound for each game event.
type Cues struct {
	logger *slog.Logger
	player Player
	volume float64
}

// NewCues - volume is in halvings: 0 keeps the level, -1 is half as loud.
func NewCues(logger *slog.Logger, player Player, volume float64) *Cues {
	return &Cues{
		logger: logger.With("component", "audio"),
		player: player,
		volume: volume,
	}
}

func (that *Cues) PiecePlaced(_ *entity.Session, placement entity.Placement) {
	freq := toneO
	if placement.Mark == entity.PlayerX {
		freq = toneX
	}

	that.play("placed", tone{freq, 60 * time.Millisecond})
}

func (that *Cues) GameEnded(_ *entity.Session, outcome entity.Outcome) {
	if outcome == entity.OutcomeDraw {
		that.play("draw", tone{toneDraw, 400 * time.Millisecond})
		return
	}

	that.play("win", tone{toneWin1, 150 * time.Millisecond}, tone{toneWin2, 250 * time.Millisecond})
}

func (that *Cues) GameReset(_ *entity.Session) {}

type tone struct {
	freq     float64
	duration time.Duration
}

func (that *Cues) play(name string, tones ...tone) {
	streamer, err := sequence(tones...)
	if err != nil {
		that.logger.Warn("cue not played", "cue", name, "error", err)
		return
	}

	that.player.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   that.volume,
	})
}

// sequence renders the tones one after another.
func sequence(tones ...tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))

	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2f Hz: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}

	return beep.Seq(parts...), nil
}
