// Package process cleans up the headless browser started for PDF export.
package process
