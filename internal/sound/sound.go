// internal/sound/sound.go
//
// Terminal audio cues.
// Responsibilities:
//   - Open the speaker once and mix short cues into a single stream.
//   - Provide the three cues the terminal plays: key click, entry denied,
//     access granted.
//
// Audio is optional. If the speaker cannot be opened the Player stays
// silent and every cue is a no-op.

package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer returns a Player at the given linear volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. A failure is returned for logging, but the
// Player remains usable and silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Warn().Err(err).Msg("audio unavailable; running silent")
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Click is the short tick of a key press.
func (p *Player) Click() { p.play(click()) }

// Denied is the low buzz of a wrong password.
func (p *Player) Denied() { p.play(denied()) }

// Granted is the rising chime of a correct password.
func (p *Player) Granted() { p.play(granted()) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// tone is a sine of freq lasting d, or nil if the generator rejects freq.
func tone(freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Debug().Err(err).Float64("freq", freq).Msg("tone rejected")
		return nil
	}
	return beep.Take(sampleRate.N(d), s)
}

func click() beep.Streamer { return tone(2000, 8*time.Millisecond) }

func denied() beep.Streamer {
	return seq(
		tone(180, 120*time.Millisecond),
		beep.Silence(sampleRate.N(40*time.Millisecond)),
		tone(140, 180*time.Millisecond),
	)
}

func granted() beep.Streamer {
	return seq(
		tone(523.25, 90*time.Millisecond),
		tone(659.25, 90*time.Millisecond),
		tone(783.99, 160*time.Millisecond),
	)
}

// seq plays the parts in order, dropping any that failed to build.
func seq(parts ...beep.Streamer) beep.Streamer {
	var ok []beep.Streamer
	for _, s := range parts {
		if s != nil {
			ok = append(ok, s)
		}
	}
	if len(ok) == 0 {
		return nil
	}
	return beep.Seq(ok...)
}

// withVolume scales s linearly; math.Log2(0) is -Inf so zero means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop is a silent stand-in for Player.
type Nop struct{}

func (Nop) Click()   {}
func (Nop) Denied()  {}
func (Nop) Granted() {}
