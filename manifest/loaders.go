package manifest

import (
	"github.com/lixenwraith/loadstone/asset"
	"github.com/lixenwraith/loadstone/audio"
	"github.com/lixenwraith/loadstone/font"
	"github.com/lixenwraith/loadstone/registry"
	"github.com/lixenwraith/loadstone/sprite"
)

// RegisterLoaders registers the decode collaborator factories for every
// built-in asset kind. Call once from the composition root before
// applying bundles.
func RegisterLoaders() {
	registry.RegisterLoader(asset.KindImage, func(root string) asset.Loader {
		return sprite.NewLoader(root)
	})
	registry.RegisterLoader(asset.KindAudio, func(root string) asset.Loader {
		return audio.NewLoader(root)
	})
	registry.RegisterLoader(asset.KindFont, func(root string) asset.Loader {
		return font.NewLoader(root)
	})
}
