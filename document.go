package cssplay

import (
	_ "embed"
	"strings"
)

// Placeholder marks where a bundle export injects the generated stylesheet.
// It appears exactly once in the showcase document.
const Placeholder = "/* CSS will be inserted here from generateCSS() */"

//go:embed templates/showcase.html
var showcaseHTML string

// GenerateHTML returns the fixed showcase document. Its <style> element holds
// only Placeholder; nothing from the session is interpolated.
func GenerateHTML() string {
	return showcaseHTML
}

// MergeBundle replaces the first Placeholder in document with css. A document
// without the marker is returned unchanged.
func MergeBundle(document, css string) string {
	return strings.Replace(document, Placeholder, css, 1)
}
