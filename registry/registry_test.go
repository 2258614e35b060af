package registry

import (
	"testing"

	"github.com/lixenwraith/loadstone/asset"
)

type fakeLoader struct{}

func (fakeLoader) Load(fileName string) (any, error) { return nil, nil }

func TestRegisterAndGetLoader(t *testing.T) {
	Reset()
	defer Reset()

	RegisterLoader(asset.KindImage, func(root string) asset.Loader { return fakeLoader{} })

	factory, ok := GetLoader(asset.KindImage)
	if !ok {
		t.Fatal("GetLoader missed a registered kind")
	}
	if factory("assets") == nil {
		t.Error("factory returned nil loader")
	}

	if _, ok := GetLoader(asset.KindAudio); ok {
		t.Error("GetLoader found an unregistered kind")
	}
}

func TestLoaderKindsSorted(t *testing.T) {
	Reset()
	defer Reset()

	factory := func(root string) asset.Loader { return fakeLoader{} }
	RegisterLoader(asset.KindFont, factory)
	RegisterLoader(asset.KindImage, factory)
	RegisterLoader(asset.KindAudio, factory)

	kinds := LoaderKinds()
	want := []asset.Kind{asset.KindImage, asset.KindAudio, asset.KindFont}
	if len(kinds) != len(want) {
		t.Fatalf("LoaderKinds() = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("LoaderKinds()[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}
