package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/loadstone/service"
)

var _ service.Service = (*Service)(nil)

// Service wraps Engine as a lifecycle service.
// Handles graceful degradation when no audio device is available: a
// failed speaker open disables playback instead of failing startup.
type Service struct {
	engine   *Engine
	disabled atomic.Bool
}

// NewService creates a new audio service.
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service.
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service.
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service.
// args[0]: bool - initial mute state (default unmuted)
func (s *Service) Init(args ...any) error {
	s.engine = NewEngine()
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.engine.SetMuted(muted)
		}
	}
	return nil
}

// Start implements service.Service.
// Opens the speaker; sets disabled on failure (no error returned).
func (s *Service) Start() error {
	if s.engine == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.engine.Init(); err != nil {
		s.disabled.Store(true)
		s.engine = nil
		return nil
	}
	return nil
}

// Stop implements service.Service.
func (s *Service) Stop() error {
	if s.engine != nil {
		s.engine.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable.
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the underlying Engine (nil if disabled).
func (s *Service) Engine() *Engine {
	if s.disabled.Load() {
		return nil
	}
	return s.engine
}
