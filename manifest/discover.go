package manifest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Discover scans dir for bundle manifests (.yaml/.yml files) and returns
// their paths in name order. It handles a missing directory gracefully
// and skips hidden files (those starting with .)
func Discover(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("Manifest directory '%s' does not exist, no bundles discovered", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("manifest: read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") {
			log.Printf("Skipping hidden file: %s", fileName)
			continue
		}
		switch filepath.Ext(fileName) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, fileName))
		}
	}

	if len(paths) == 0 {
		log.Printf("No bundle manifests found in %s", dir)
	} else {
		log.Printf("Discovered %d bundle manifest(s)", len(paths))
	}
	return paths, nil
}
