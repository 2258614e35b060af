package asset

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoLoader = errors.New("asset has no loader")
)

// DuplicateKeyError reports a Register call whose key is already present.
// The existing entry is left untouched.
type DuplicateKeyError struct {
	Key      string
	Registry string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: key %q already registered", e.Registry, e.Key)
}

// KeyNotFoundError reports a Remove call for a key that is not registered.
type KeyNotFoundError struct {
	Key      string
	Registry string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: key %q not found", e.Registry, e.Key)
}

// MissingAssetError reports a typed getter call for a key that is either
// unregistered or not yet drained from the load queue.
type MissingAssetError struct {
	Key string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("asset %q is not loaded", e.Key)
}

// DecodeError wraps a failure from an asset's decode collaborator.
// The asset stays registered but will never become available; retries
// are caller-initiated.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownKindError reports a kind with no registered sub-manager, or a
// manifest kind name outside the closed set.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown asset kind %q", e.Name)
}
