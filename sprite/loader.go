package sprite

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// Loader decodes image files into sheets. It is the decode collaborator
// the registry invokes during the load drain.
type Loader struct {
	// Root is prepended to asset file names. Empty means the working
	// directory.
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Load reads and decodes the image at fileName under the loader root.
func (l *Loader) Load(fileName string) (any, error) {
	path := filepath.Join(l.Root, fileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return &Sheet{Img: img}, nil
}
