// Command asset-audit registers every bundle under a manifest directory
// without decoding anything and prints what the registry would load. Handy
// for catching duplicate keys and bad declarations before shipping a
// bundle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/loadstone/asset"
	"github.com/lixenwraith/loadstone/manifest"
)

var dirFlag = flag.String("dir", "assets", "directory holding bundle manifests")

// nullStore discards payloads; the audit never decodes, so nothing is ever
// dispatched to it.
type nullStore struct{}

func (nullStore) Add(key string, payload any) error { return nil }
func (nullStore) Remove(key string, evict bool)     {}
func (nullStore) CleanUp()                          {}

func main() {
	flag.Parse()
	log.SetFlags(0)

	manifest.RegisterLoaders()

	paths, err := manifest.Discover(*dirFlag)
	if err != nil {
		log.Fatalf("asset-audit: %v", err)
	}
	if len(paths) == 0 {
		os.Exit(0)
	}

	failed := false
	for _, path := range paths {
		bundle, err := manifest.Load(path)
		if err != nil {
			log.Printf("asset-audit: %v", err)
			failed = true
			continue
		}

		reg := asset.NewRegistry(bundle.Name,
			asset.WithStore(asset.KindImage, nullStore{}),
			asset.WithStore(asset.KindAudio, nullStore{}),
			asset.WithStore(asset.KindFont, nullStore{}),
		)
		if err := bundle.Apply(reg); err != nil {
			log.Printf("asset-audit: bundle %q: %v", bundle.Name, err)
			failed = true
		}

		fmt.Printf("bundle %q (%s): %d assets, %d queued\n", bundle.Name, path, reg.Len(), reg.QueueLen())
		for _, key := range reg.Keys() {
			fmt.Printf("  %s\n", key)
		}
		reg.CleanUp()
	}

	if failed {
		os.Exit(1)
	}
}
