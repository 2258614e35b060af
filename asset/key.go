package asset

import "strings"

// Key builds the canonical identifier for an asset: lowercase "kind:name".
// Registration, lookup and removal all go through this function so that
// case differences in caller-supplied names never cause spurious misses.
func Key(kind Kind, name string) string {
	return lower(kind.String() + ":" + name)
}

func lower(s string) string {
	return strings.ToLower(s)
}
