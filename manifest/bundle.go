// Package manifest declares asset bundles as YAML documents and applies
// them to a registry. A bundle is the data-driven form of the declaration
// phase: every named resource of a game state in one file, loaded in the
// order it is written.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lixenwraith/loadstone/asset"
	"github.com/lixenwraith/loadstone/registry"
)

// Declaration names one asset inside a bundle.
type Declaration struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Bundle is one manifest document: a named set of asset declarations
// sharing a root directory.
type Bundle struct {
	Name   string        `yaml:"name"`
	Root   string        `yaml:"root"`
	Assets []Declaration `yaml:"assets"`
}

// Parse decodes and validates a bundle document.
func Parse(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.UnmarshalWithOptions(data, &b, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Load reads and parses the bundle at path.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return b, nil
}

func (b *Bundle) validate() error {
	if b.Name == "" {
		return errors.New("manifest: bundle has no name")
	}
	if len(b.Assets) == 0 {
		return fmt.Errorf("manifest: bundle %q declares no assets", b.Name)
	}
	for i, d := range b.Assets {
		if d.Name == "" || d.File == "" {
			return fmt.Errorf("manifest: bundle %q asset %d is missing name or file", b.Name, i)
		}
		if _, err := asset.ParseKind(d.Kind); err != nil {
			return fmt.Errorf("manifest: bundle %q asset %q: %w", b.Name, d.Name, err)
		}
	}
	return nil
}

// Apply registers every declaration with reg, resolving each kind's decode
// collaborator through the loader registry. Declarations register in
// document order, so the load queue drains in the order the bundle was
// written. Registration failures (duplicate keys) are collected; the rest
// of the bundle still registers.
func (b *Bundle) Apply(reg *asset.Registry) error {
	var errs []error
	cache := make(map[asset.Kind]asset.Loader)

	for _, d := range b.Assets {
		kind, err := asset.ParseKind(d.Kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		loader, ok := cache[kind]
		if !ok {
			factory, found := registry.GetLoader(kind)
			if !found {
				errs = append(errs, fmt.Errorf("manifest: bundle %q: no loader for kind %q", b.Name, d.Kind))
				continue
			}
			loader = factory(b.Root)
			cache[kind] = loader
		}
		if err := reg.Register(asset.New(kind, d.Name, d.File, loader)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
