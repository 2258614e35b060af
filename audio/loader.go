package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Loader decodes WAV files into fully buffered clips. Buffering up front
// keeps the loading phase the only place that pays decode cost.
type Loader struct {
	// Root is prepended to asset file names.
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Load reads and decodes the WAV file at fileName under the loader root.
func (l *Loader) Load(fileName string) (any, error) {
	path := filepath.Join(l.Root, fileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode audio %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return &Clip{Buffer: buffer}, nil
}
