package assets

import "errors"

var (
	// ErrStyleNotFound is returned for a style name with no stylesheet behind it.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName is returned for names that could escape the
	// styles directory, such as "../x" or "a/b".
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// AssetLoader resolves a style name such as "print" or "preview" to CSS.
// Implementations return ErrInvalidAssetName before any lookup when the
// name is unsafe, and ErrStyleNotFound when no stylesheet matches.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}
