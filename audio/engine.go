package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// engineSampleRate is the mixer output rate; clips with a different
	// native rate are resampled on the fly.
	engineSampleRate = beep.SampleRate(48000)

	// resampleQuality is beep's CPU/fidelity knob (1-64).
	resampleQuality = 4
)

// Sentinel errors
var (
	ErrEngineClosed = errors.New("audio engine not initialized")
)

// Engine plays decoded clips through the system speaker on a shared mixer.
// It owns the speaker for the process; create one per application.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewEngine creates an engine. Call Init before playing anything.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and attaches the mixer. Idempotent.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(engineSampleRate, engineSampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play mixes a clip into the running output. Clips recorded at another
// sample rate are resampled to the engine rate.
func (e *Engine) Play(clip *Clip) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return ErrEngineClosed
	}
	if e.muted || clip == nil || clip.Buffer == nil {
		return nil
	}

	var streamer beep.Streamer = clip.Streamer()
	if rate := clip.Format().SampleRate; rate != engineSampleRate {
		streamer = beep.Resample(resampleQuality, rate, engineSampleRate, streamer)
	}

	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// PlayLoop mixes a clip forever, for background music. Returns a control
// handle whose Paused flag stops it.
func (e *Engine) PlayLoop(clip *Clip) (*beep.Ctrl, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return nil, ErrEngineClosed
	}
	if clip == nil || clip.Buffer == nil {
		return nil, nil
	}

	var streamer beep.Streamer = beep.Loop(-1, clip.Streamer())
	if rate := clip.Format().SampleRate; rate != engineSampleRate {
		streamer = beep.Resample(resampleQuality, rate, engineSampleRate, streamer)
	}
	ctrl := &beep.Ctrl{Streamer: streamer, Paused: e.muted}

	speaker.Lock()
	e.mixer.Add(ctrl)
	speaker.Unlock()
	return ctrl, nil
}

// SetMuted toggles playback. Already mixed streamers keep draining.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Cleanup stops all mixed streamers. The speaker itself has no close in
// beep; an empty mixer leaves no audio artifacts.
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
