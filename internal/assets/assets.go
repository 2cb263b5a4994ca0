package assets

// DefaultStyle is the style applied to print documents when none is chosen.
const DefaultStyle = "print"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded CSS style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// Styles lists the embedded style names.
func Styles() []string {
	return defaultLoader.Styles()
}
