package manifest

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/loadstone/asset"
	"github.com/lixenwraith/loadstone/registry"
)

const bundleDoc = `name: level-one
root: ./assets
assets:
  - kind: image
    name: Hero
    file: sprites/hero.png
  - kind: audio
    name: theme
    file: music/theme.wav
  - kind: font
    name: $default
    file: fonts/mono.png
`

func TestParse(t *testing.T) {
	b, err := Parse([]byte(bundleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Name != "level-one" || b.Root != "./assets" {
		t.Errorf("bundle header = %q %q", b.Name, b.Root)
	}
	if len(b.Assets) != 3 {
		t.Fatalf("parsed %d assets, want 3", len(b.Assets))
	}
	if b.Assets[0].Name != "Hero" || b.Assets[0].Kind != "image" {
		t.Errorf("first declaration = %+v", b.Assets[0])
	}
}

func TestParseRejectsBadBundles(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no name", "root: .\nassets:\n  - {kind: image, name: a, file: a.png}\n"},
		{"no assets", "name: empty\nroot: .\n"},
		{"unknown kind", "name: x\nassets:\n  - {kind: shader, name: a, file: a.glsl}\n"},
		{"missing file", "name: x\nassets:\n  - {kind: image, name: a}\n"},
		{"unknown field", "name: x\nbogus: true\nassets:\n  - {kind: image, name: a, file: a.png}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse accepted %q", tt.name)
			}
		})
	}
}

func TestLoadAndDiscover(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level1.yaml"), []byte(bundleDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden.yaml"), []byte(bundleDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "level1.yaml" {
		t.Fatalf("Discover returned %v", paths)
	}

	b, err := Load(paths[0])
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Name != "level-one" {
		t.Errorf("bundle name = %q", b.Name)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	paths, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil || paths != nil {
		t.Errorf("Discover on missing dir = (%v, %v), want (nil, nil)", paths, err)
	}
}

// nullStore satisfies the registry Store contract.
type nullStore struct{}

func (nullStore) Add(key string, payload any) error { return nil }
func (nullStore) Remove(key string, evict bool)     {}
func (nullStore) CleanUp()                          {}

func TestApply(t *testing.T) {
	registry.Reset()
	defer registry.Reset()
	RegisterLoaders()

	reg := asset.NewRegistry("test",
		asset.WithLogger(log.New(io.Discard, "", 0)),
		asset.WithStore(asset.KindImage, nullStore{}),
		asset.WithStore(asset.KindAudio, nullStore{}),
		asset.WithStore(asset.KindFont, nullStore{}),
	)

	b, err := Parse([]byte(bundleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Apply(reg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
	if reg.QueueLen() != 3 {
		t.Errorf("QueueLen() = %d, want 3", reg.QueueLen())
	}
	keys := reg.Keys()
	want := []string{"audio:theme", "font:$default", "image:hero"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}

	// Re-applying the same bundle trips duplicate rejection for every asset
	err = b.Apply(reg)
	var dup *asset.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if reg.Len() != 3 {
		t.Errorf("duplicate Apply changed the registry: Len() = %d", reg.Len())
	}
}

func TestApplyWithoutLoaders(t *testing.T) {
	registry.Reset()
	defer registry.Reset()

	reg := asset.NewRegistry("test", asset.WithLogger(log.New(io.Discard, "", 0)))
	b, err := Parse([]byte(bundleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Apply(reg); err == nil {
		t.Error("Apply without registered loaders should fail")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}
