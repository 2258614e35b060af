package asset

// Loader is the decode collaborator. It turns a source locator into the
// payload the asset's sub-manager stores (pixels, samples, glyphs).
// Implementations live in the payload packages (sprite, audio, font).
type Loader interface {
	Load(fileName string) (any, error)
}

// Asset is a named, typed resource declaration with a deferred-loadable
// payload. The key is fixed at construction; the data slot is written
// exactly once, during the load drain, under the registry lock.
type Asset struct {
	key      string
	name     string
	fileName string
	kind     Kind

	loader Loader
	data   any
	loaded bool
}

// New declares an unloaded asset. The loader is invoked later, during the
// registry's load drain.
func New(kind Kind, name, fileName string, loader Loader) *Asset {
	return &Asset{
		key:      Key(kind, name),
		name:     lower(name),
		fileName: fileName,
		kind:     kind,
		loader:   loader,
	}
}

// NewLoaded declares an asset whose payload is already materialized.
// It is never enqueued for loading and is served straight from the
// registrar by the typed getters.
func NewLoaded(kind Kind, name, fileName string, payload any) *Asset {
	a := New(kind, name, fileName, nil)
	a.data = payload
	a.loaded = true
	return a
}

// Key returns the canonical "kind:name" identifier.
func (a *Asset) Key() string { return a.key }

// Name returns the lowercase asset name.
func (a *Asset) Name() string { return a.name }

// Kind returns the asset's kind tag.
func (a *Asset) Kind() Kind { return a.kind }

// FileName returns the source locator. The core only logs it.
func (a *Asset) FileName() string { return a.fileName }

// Loaded reports whether the payload has been materialized.
func (a *Asset) Loaded() bool { return a.loaded }

// Payload returns the decoded payload, or nil before loading.
func (a *Asset) Payload() any { return a.data }
