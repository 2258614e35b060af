// Package asset is the functional registrar of all resources used in the
// program. Declarations are cheap: an Asset names a resource and carries
// its decode collaborator, while the bytes are materialized later, during
// a controlled loading phase, one queue entry at a time. Loaded payloads
// are dispatched to kind-specific stores (sprite, audio, font managers)
// for fast steady-state lookup.
//
// Loading every asset on the declaring goroutine causes startup latency;
// large assets (background music, big sheets) take noticeable time. With
// deferred loading the program launches responsively and drains the queue
// behind a progress screen instead of blocking at startup.
package asset
