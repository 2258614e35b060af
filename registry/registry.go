package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/loadstone/asset"
)

// LoaderFactory creates a decode collaborator rooted at an asset
// directory. Factories are registered once at composition time; manifest
// application resolves them by kind.
type LoaderFactory func(root string) asset.Loader

var (
	loadersMu sync.RWMutex
	loaders   = make(map[asset.Kind]LoaderFactory)
)

// RegisterLoader adds a loader factory for a kind.
func RegisterLoader(kind asset.Kind, factory LoaderFactory) {
	loadersMu.Lock()
	defer loadersMu.Unlock()
	loaders[kind] = factory
}

// GetLoader retrieves the loader factory for a kind.
func GetLoader(kind asset.Kind) (LoaderFactory, bool) {
	loadersMu.RLock()
	defer loadersMu.RUnlock()
	f, ok := loaders[kind]
	return f, ok
}

// LoaderKinds returns all registered kinds in ascending order.
func LoaderKinds() []asset.Kind {
	loadersMu.RLock()
	defer loadersMu.RUnlock()
	kinds := make([]asset.Kind, 0, len(loaders))
	for kind := range loaders {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Reset drops all registered factories. Intended for tests.
func Reset() {
	loadersMu.Lock()
	defer loadersMu.Unlock()
	loaders = make(map[asset.Kind]LoaderFactory)
}
