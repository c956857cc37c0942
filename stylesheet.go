package cssplay

import (
	_ "embed"
	"strings"
)

// Static stylesheet sections. They hold no dynamic behavior and are emitted
// byte for byte.
var (
	//go:embed templates/dark.css
	darkModeCSS string

	//go:embed templates/components.css
	componentsCSS string

	//go:embed templates/themes.css
	themesCSS string
)

// derivedProperties closes every :root block. They do not depend on input.
const derivedProperties = `  --css-transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
  --css-shadow: 0 4px 15px -3px rgba(0, 0, 0, 0.1), 0 2px 6px -4px rgba(0, 0, 0, 0.1);
  --css-backdrop-filter: blur(10px);
  --css-border: 1px solid rgba(0, 0, 0, 0.1);
`

// GenerateStylesheet serializes vars into a standalone stylesheet:
//
//  1. a :root block with one declaration per variable, in list order,
//     followed by the derived properties
//  2. the prefers-color-scheme dark override
//  3. component classes, keyframes and animation classes
//  4. one override block per theme preset
//
// Values are emitted verbatim (numeric variables get their unit appended) and
// never validated. The output depends only on vars.
func GenerateStylesheet(vars []StyleVariable) string {
	var b strings.Builder
	b.Grow(len(darkModeCSS) + len(componentsCSS) + len(themesCSS) + 64*len(vars) + 512)

	b.WriteString(":root {\n")
	for _, v := range vars {
		b.WriteString("  ")
		b.WriteString(v.Declaration())
		b.WriteString("\n")
	}
	b.WriteString(derivedProperties)
	b.WriteString("}\n\n")

	b.WriteString(darkModeCSS)
	b.WriteString("\n")
	b.WriteString(componentsCSS)
	b.WriteString("\n")
	b.WriteString(themesCSS)

	return b.String()
}
