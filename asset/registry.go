package asset

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/lixenwraith/loadstone/audio"
	"github.com/lixenwraith/loadstone/font"
	"github.com/lixenwraith/loadstone/sprite"
)

// Store is the sub-manager contract: a kind-specific store of decoded
// payloads keyed by canonical asset key. Implementations must tolerate
// Remove for keys they never received, since pre-loaded assets are served
// by the registrar without being dispatched.
type Store interface {
	Add(key string, payload any) error
	Remove(key string, evict bool)
	CleanUp()
}

// Registry is the functional registrar of all assets used in the program.
// Declarations self-contain their decode collaborator; the expensive load
// work is deferred to the drain so an application can declare everything
// up front and stream bytes in behind a progress screen.
//
// A single mutex guards the registrar and the queue: registration, the
// drain step, removal, teardown and the typed getters all take it for
// their duration. Contention is rare (registration happens once per
// bundle), so no finer-grained locking is warranted.
type Registry struct {
	name   string
	logger *log.Logger

	mu        sync.RWMutex
	registrar map[string]*Asset
	queue     []*Asset
	stores    map[Kind]Store
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes the registry's diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithStore attaches the sub-manager that receives loaded payloads of the
// given kind. Kinds without a store fail the drain with UnknownKindError.
func WithStore(kind Kind, s Store) Option {
	return func(r *Registry) { r.stores[kind] = s }
}

// NewRegistry creates an empty registry. The name only shows up in
// diagnostics and errors.
func NewRegistry(name string, opts ...Option) *Registry {
	r := &Registry{
		name:      name,
		logger:    log.Default(),
		registrar: make(map[string]*Asset),
		stores:    make(map[Kind]Store),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the registry's diagnostic name.
func (r *Registry) Name() string { return r.name }

// Register inserts a declared asset and, if its payload is not yet
// materialized, appends it to the load queue. A key collision is rejected
// with DuplicateKeyError and leaves the existing entry untouched.
func (r *Registry) Register(a *Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrar[a.key]; exists {
		err := &DuplicateKeyError{Key: a.key, Registry: r.name}
		r.logger.Printf("%s: register rejected: %v", r.name, err)
		return err
	}

	r.registrar[a.key] = a
	if !a.loaded {
		r.queue = append(r.queue, a)
	}
	r.logger.Printf("%s: registered %q (%s)", r.name, a.key, a.fileName)
	return nil
}

// LoadNext drains one asset from the queue: decode, dispatch, dequeue.
// It returns false once the queue is empty. The asset leaves the queue
// whether or not its decode succeeds; a failed decode is reported as a
// DecodeError and never retried by the registry.
//
// Hosts that need cancellation or a progress screen call LoadNext once
// per turn instead of LoadAll.
func (r *Registry) LoadNext() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return false, nil
	}
	a := r.queue[0]
	r.queue = r.queue[1:]

	if a.loader == nil {
		err := &DecodeError{Key: a.key, Err: ErrNoLoader}
		r.logger.Printf("%s: %v", r.name, err)
		return true, err
	}
	payload, err := a.loader.Load(a.fileName)
	if err != nil {
		derr := &DecodeError{Key: a.key, Err: err}
		r.logger.Printf("%s: %v", r.name, derr)
		return true, derr
	}
	a.data = payload
	a.loaded = true

	if err := r.distribute(a); err != nil {
		r.logger.Printf("%s: dispatch of %q failed: %v", r.name, a.key, err)
		return true, err
	}
	r.logger.Printf("%s: cached %q (%s)", r.name, a.key, a.fileName)
	return true, nil
}

// LoadAll drains the whole queue. One bad asset does not block the rest:
// failures are collected and returned joined, and every queued asset is
// attempted exactly once.
func (r *Registry) LoadAll() error {
	var errs []error
	for {
		more, err := r.LoadNext()
		if err != nil {
			errs = append(errs, err)
		}
		if !more {
			break
		}
	}
	return errors.Join(errs...)
}

// FullyLoaded reports whether the load queue is empty. Callers poll it to
// know when to leave the loading phase.
func (r *Registry) FullyLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queue) == 0
}

// QueueLen returns the number of assets still pending decode.
func (r *Registry) QueueLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queue)
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrar)
}

// Keys returns all registered keys in lexicographic order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.registrar))
	for k := range r.registrar {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// distribute routes a decoded payload to the sub-manager for its kind.
// Caller holds the lock.
func (r *Registry) distribute(a *Asset) error {
	store, ok := r.stores[a.kind]
	if !ok {
		return &UnknownKindError{Name: a.kind.String()}
	}
	return store.Add(a.key, a.data)
}

// Remove erases the asset under (kind, name) from the registrar, releases
// its sub-manager copy, and drops any pending queue entry. A missing key
// fails with KeyNotFoundError and changes nothing.
func (r *Registry) Remove(kind Kind, name string) error {
	key := Key(kind, name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registrar[key]; !ok {
		err := &KeyNotFoundError{Key: key, Registry: r.name}
		r.logger.Printf("%s: remove rejected: %v", r.name, err)
		return err
	}

	if store, ok := r.stores[kind]; ok {
		store.Remove(key, true)
	}
	delete(r.registrar, key)
	r.dropQueued(key)
	r.logger.Printf("%s: removed %q", r.name, key)
	return nil
}

// RemoveAsset removes by the asset's own declared kind and name.
func (r *Registry) RemoveAsset(a *Asset) error {
	return r.Remove(a.kind, a.name)
}

// dropQueued removes a pending queue entry so a removed asset can never
// be decoded and re-dispatched afterward. Caller holds the lock.
func (r *Registry) dropQueued(key string) {
	for i, queued := range r.queue {
		if queued.key == key {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return
		}
	}
}

// Image returns the decoded sheet registered under name.
func (r *Registry) Image(name string) (*sprite.Sheet, error) {
	payload, err := r.payload(KindImage, name)
	if err != nil {
		return nil, err
	}
	return assertPayload[*sprite.Sheet](Key(KindImage, name), payload)
}

// Audio returns the decoded clip registered under name.
func (r *Registry) Audio(name string) (*audio.Clip, error) {
	payload, err := r.payload(KindAudio, name)
	if err != nil {
		return nil, err
	}
	return assertPayload[*audio.Clip](Key(KindAudio, name), payload)
}

// Font returns the decoded face registered under name.
func (r *Registry) Font(name string) (*font.Face, error) {
	payload, err := r.payload(KindFont, name)
	if err != nil {
		return nil, err
	}
	return assertPayload[*font.Face](Key(KindFont, name), payload)
}

// DefaultFont returns the face registered under the reserved default name.
func (r *Registry) DefaultFont() (*font.Face, error) {
	return r.Font(font.DefaultName)
}

// payload looks up a loaded asset's payload by kind and name.
func (r *Registry) payload(kind Kind, name string) (any, error) {
	key := Key(kind, name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.registrar[key]
	if !ok || !a.loaded {
		return nil, &MissingAssetError{Key: key}
	}
	return a.data, nil
}

// assertPayload narrows a stored payload to the getter's concrete type.
func assertPayload[T any](key string, payload any) (T, error) {
	v, ok := payload.(T)
	if !ok {
		var zero T
		return zero, &MissingAssetError{Key: key}
	}
	return v, nil
}

// CleanUp unconditionally empties the registrar and the queue, then tells
// every sub-manager to clear its own store. Idempotent; used on shutdown
// or whole-bundle teardown.
func (r *Registry) CleanUp() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrar = make(map[string]*Asset)
	r.queue = nil
	for _, store := range r.stores {
		store.CleanUp()
	}
	r.logger.Printf("%s: cleaned up", r.name)
}
