package asset

import "fmt"

// Kind identifies which sub-manager a loaded asset is dispatched to.
// The set is closed: adding a kind means adding a payload package and a
// Store for it, so the dispatch table stays exhaustive.
type Kind uint8

const (
	KindImage Kind = iota
	KindAudio
	KindFont
)

// String returns the lowercase wire name used in canonical keys.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindFont:
		return "font"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a manifest kind name to its Kind tag.
// Matching is case-insensitive like the key function.
func ParseKind(s string) (Kind, error) {
	switch lower(s) {
	case "image":
		return KindImage, nil
	case "audio":
		return KindAudio, nil
	case "font":
		return KindFont, nil
	default:
		return 0, &UnknownKindError{Name: s}
	}
}
