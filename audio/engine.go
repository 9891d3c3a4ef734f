package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the engine's mixing rate; tracks at other rates are
// resampled on load
const DefaultSampleRate = beep.SampleRate(44100)

// Engine manages the speaker and the master mixer
type Engine struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an engine mixing at the given sample rate
// A rate of 0 or less uses DefaultSampleRate
func NewEngine(rate beep.SampleRate) *Engine {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Engine{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Rate returns the engine's mixing sample rate
func (e *Engine) Rate() beep.SampleRate { return e.rate }

// Init opens the speaker and starts the master mixer
// Calling Init on an initialized engine is a no-op
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Add attaches a streamer to the master mixer
// Mixer mutation happens under the speaker lock
func (e *Engine) Add(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup silences and detaches all streamers
// beep has no speaker Close; clearing the mixer is the shutdown path
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}
