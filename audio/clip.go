package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Clip is a fully decoded audio payload: every sample buffered in memory
// so playback never touches the source file again.
type Clip struct {
	Buffer *beep.Buffer
}

// Format returns the clip's native sample format.
func (c *Clip) Format() beep.Format {
	return c.Buffer.Format()
}

// Len returns the number of samples in the clip.
func (c *Clip) Len() int {
	return c.Buffer.Len()
}

// Duration returns the clip length in wall time.
func (c *Clip) Duration() time.Duration {
	return c.Buffer.Format().SampleRate.D(c.Buffer.Len())
}

// Streamer returns a fresh streamer over the whole clip. Each call is
// independent, so the same clip can play concurrently on a mixer.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.Buffer.Streamer(0, c.Buffer.Len())
}
