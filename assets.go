package mdeditor

import "github.com/ashishkumardw/markdown-editor/internal/assets"

// DefaultStyle is the stylesheet of print documents when WithStyle is not used.
const DefaultStyle = assets.DefaultStyle

// AssetLoader defines the contract for loading CSS styles.
// Implementations may load from the filesystem, embedded assets, a database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader returns a loader serving the built-in styles.
func NewAssetLoader() AssetLoader {
	return assets.NewEmbeddedLoader()
}

// Styles lists the built-in style names.
func Styles() []string {
	return assets.Styles()
}
