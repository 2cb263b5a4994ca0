// Package assets provides the CSS styles embedded in the binary.
//
// Styles are looked up by name (without the .css extension) through the
// AssetLoader interface, so callers can substitute their own source:
//
//	styles/
//	├── print.css     # light print/PDF stylesheet
//	└── preview.css   # dark on-screen preview stylesheet
//
// Names are validated before lookup to prevent path traversal.
package assets
