package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues through the system speaker. The speaker is opened on the
// first Play; if that fails the player logs a warning and stays silent.
// A nil or muted Player is a valid no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
	failed      bool
	log         *log.Logger
	init        func() error
}

// NewPlayer creates a player. A nil logger discards warnings.
func NewPlayer(muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		mixer: &beep.Mixer{},
		muted: muted,
		log:   logger,
	}
	p.init = p.openSpeaker
	return p
}

func (p *Player) openSpeaker() error {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return nil
}

// Enabled reports whether Play will produce sound.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.muted && !p.failed
}

// Play starts c without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.failed {
		return
	}
	if !p.initialized {
		if err := p.init(); err != nil {
			p.failed = true
			p.log.Warn("sound disabled", "err", err)
			return
		}
		p.initialized = true
	}

	s := Stream(c, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
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
